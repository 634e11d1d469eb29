package formatters

import (
	"fmt"
	"os"
	"path/filepath"
)

type FormatManager struct {
	jsonFormatter   *JSONFormatter
	yamlFormatter   *YAMLFormatter
	prettyFormatter *PrettyFormatter
}

// NewFormatManager creates a new format manager with all formatters initialized
func NewFormatManager() *FormatManager {
	return &FormatManager{
		jsonFormatter:   NewJSONFormatter(),
		yamlFormatter:   NewYAMLFormatter(),
		prettyFormatter: NewPrettyFormatter(),
	}
}

func (f *FormatManager) Pretty(data interface{}) (string, error) {
	if f.prettyFormatter == nil {
		f.prettyFormatter = NewPrettyFormatter()
	}
	return f.prettyFormatter.Format(data)
}

func (f *FormatManager) JSON(data interface{}) (string, error) {
	if f.jsonFormatter == nil {
		f.jsonFormatter = NewJSONFormatter()
	}
	return f.jsonFormatter.Format(data)
}

func (f *FormatManager) YAML(data interface{}) (string, error) {
	if f.yamlFormatter == nil {
		f.yamlFormatter = NewYAMLFormatter()
	}
	return f.yamlFormatter.Format(data)
}

// Format implements a generic format method that delegates to specific formatters
func (f *FormatManager) Format(format string, data interface{}) (string, error) {
	switch format {
	case "json":
		return f.JSON(data)
	case "yaml", "yml":
		return f.YAML(data)
	case "pretty", "":
		return f.Pretty(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatWithOptions formats data, disabling colors when asked to
func (f *FormatManager) FormatWithOptions(options FormatOptions, data interface{}) (string, error) {
	if err := options.ResolveFormat(); err != nil {
		return "", err
	}
	if options.NoColor {
		pretty := *f.prettyOrDefault()
		pretty.NoColor = true
		if options.Format == "pretty" {
			return pretty.Format(data)
		}
	}
	return f.Format(options.Format, data)
}

func (f *FormatManager) prettyOrDefault() *PrettyFormatter {
	if f.prettyFormatter == nil {
		f.prettyFormatter = NewPrettyFormatter()
	}
	return f.prettyFormatter
}

// FormatToFile writes formatted data to filename, creating its directory
func (f *FormatManager) FormatToFile(options FormatOptions, data interface{}, filename string) error {
	options.NoColor = true
	out, err := f.FormatWithOptions(options, data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

var DefaultManager = NewFormatManager()
