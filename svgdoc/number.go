package svgdoc

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// IsSeparator matches whitespace and commas between list values
func IsSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// ScanNumber reads a number at the start of b, returning it and the bytes consumed.
// Zero bytes consumed means no number.
func ScanNumber(b []byte) (float64, int) {
	return strconv.ParseFloat(b)
}

// ParseNumbers parses a whitespace or comma separated list of numbers
func ParseNumbers(s string) ([]float64, error) {
	b := []byte(s)
	var out []float64
	for i := 0; i < len(b); {
		if IsSeparator(b[i]) {
			i++
			continue
		}
		f, n := ScanNumber(b[i:])
		if n == 0 {
			return out, fmt.Errorf("invalid number at %q", s[i:])
		}
		out = append(out, f)
		i += n
	}
	return out, nil
}

// ParseLength parses a length, ignoring absolute units. Percentages are rejected.
func ParseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0, false
	}
	f, n := ScanNumber([]byte(s))
	if n == 0 {
		return 0, false
	}
	switch strings.TrimSpace(s[n:]) {
	case "", "px":
		return f, true
	case "pt":
		return f * 4 / 3, true
	case "pc":
		return f * 16, true
	case "mm":
		return f * 96 / 25.4, true
	case "cm":
		return f * 96 / 2.54, true
	case "in":
		return f * 96, true
	case "em":
		return f * 16, true
	}
	return 0, false
}
