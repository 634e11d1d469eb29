package formatters

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/flanksource/symbols/api"
)

// PrettyFormatter renders api.Pretty values for the terminal
type PrettyFormatter struct {
	Theme   api.Theme
	NoColor bool
}

func NewPrettyFormatter() *PrettyFormatter {
	theme := api.DefaultTheme()
	if lipgloss.HasDarkBackground() {
		theme = api.DarkTheme()
	}
	return &PrettyFormatter{Theme: theme}
}

// Format renders data that implements api.Pretty, falling back to YAML for
// anything else
func (f *PrettyFormatter) Format(data interface{}) (string, error) {
	var text api.Text
	switch v := data.(type) {
	case api.Pretty:
		text = v.Pretty()
	case api.Text:
		text = v
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return NewYAMLFormatter().Format(data)
	}
	if f.NoColor || termenv.EnvNoColor() {
		return strings.TrimRight(text.String(), "\n"), nil
	}
	return strings.TrimRight(text.ANSI(f.Theme), "\n"), nil
}
