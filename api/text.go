package api

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Text is a fragment of styled terminal output. Style is a space separated list of
// decorations (bold, faint, italic, underline) and colors, where a color is either a
// theme role (primary, success, warning, error, info, muted) or a #hex value.
type Text struct {
	Content  string
	Style    string
	Children []Text
}

func (t Text) Add(child Text) Text {
	t.Children = append(t.Children, child)
	return t
}

func (t Text) Append(text string, styles ...string) Text {
	t.Children = append(t.Children, Text{Content: text, Style: strings.Join(styles, " ")})
	return t
}

// Printf appends a formatted child, printing floats to 2 decimal places
func (t Text) Printf(format string, args ...interface{}) Text {
	for i := range args {
		if v, ok := args[i].(float64); ok {
			args[i] = fmt.Sprintf("%.2f", v)
		}
	}
	t.Children = append(t.Children, Text{Content: fmt.Sprintf(format, args...)})
	return t
}

func (t Text) NewLine() Text {
	return t.Append("\n")
}

func (t Text) IsEmpty() bool {
	if t.Content != "" {
		return false
	}
	for _, child := range t.Children {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

func (t Text) String() string {
	content := t.Content
	for _, child := range t.Children {
		content += child.String()
	}
	return content
}

// ANSI renders the text with escape codes using the given theme
func (t Text) ANSI(theme Theme) string {
	content := formatANSI(t.Content, t.Style, theme)
	for _, child := range t.Children {
		content += child.ANSI(theme)
	}
	return content
}

func formatANSI(text, style string, theme Theme) string {
	if text == "" || style == "" {
		return text
	}

	output := termenv.NewOutput(termenv.DefaultOutput().Writer(), termenv.WithProfile(termenv.ANSI))
	s := output.String(text)
	for _, token := range strings.Fields(style) {
		switch token {
		case "bold":
			s = s.Bold()
		case "faint":
			s = s.Faint()
		case "italic":
			s = s.Italic()
		case "underline":
			s = s.Underline()
		default:
			if hex := theme.Resolve(token); hex != "" {
				s = s.Foreground(termenv.RGBColor(hex))
			}
		}
	}
	return s.String()
}
