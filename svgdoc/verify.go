package svgdoc

import (
	"fmt"

	rsvg "github.com/rustyoz/svg"
)

// Verify checks that content parses both as a document and as an SVG drawing
func Verify(content string) error {
	doc, err := Parse(content)
	if err != nil {
		return err
	}
	if doc.Synthetic {
		return fmt.Errorf("%w: no <svg> root element", ErrMalformed)
	}
	if _, err := rsvg.ParseSvg(content, "symbol", 1.0); err != nil {
		return fmt.Errorf("failed to parse SVG: %w", err)
	}
	return nil
}
