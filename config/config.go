// Package config loads editor settings from YAML or TOML files.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols/editor"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads settings from path. Keys missing from the file keep their
// defaults. An empty path returns the defaults.
func Load(path string) (editor.Settings, error) {
	settings := editor.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(filepath.Ext(path), data, &settings); err != nil {
		return editor.DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return editor.DefaultSettings(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debugf("Loaded settings from %s", path)
	return settings, nil
}

// Decode overlays data, in the format named by ext, onto settings
func Decode(ext string, data []byte, settings *editor.Settings) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(settings)
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(settings)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}
