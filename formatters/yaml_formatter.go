package formatters

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter handles YAML formatting
type YAMLFormatter struct {
	// Indent is the number of spaces per nesting level
	Indent int
}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{Indent: 2}
}

func (f *YAMLFormatter) Format(data interface{}) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if f.Indent > 0 {
		enc.SetIndent(f.Indent)
	}
	if err := enc.Encode(data); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
