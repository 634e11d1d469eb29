package formatters

import (
	"fmt"

	"github.com/spf13/pflag"
)

// FormatOptions contains options for formatting operations
type FormatOptions struct {
	Format  string
	NoColor bool
	Output  string
	Verbose bool

	// Format-specific boolean flags (mutually exclusive)
	JSON   bool
	YAML   bool
	Pretty bool
}

func MergeOptions(opts ...FormatOptions) FormatOptions {
	merged := FormatOptions{}
	for _, opt := range opts {
		if opt.Format != "" {
			merged.Format = opt.Format
		}
		if opt.NoColor {
			merged.NoColor = true
		}
		if opt.Output != "" {
			merged.Output = opt.Output
		}
		if opt.Verbose {
			merged.Verbose = true
		}
		switch {
		case opt.JSON:
			merged.JSON = true
		case opt.YAML:
			merged.YAML = true
		case opt.Pretty:
			merged.Pretty = true
		}
	}
	return merged
}

// BindPFlags adds formatting flags to the provided pflag set (for cobra)
func BindPFlags(flags *pflag.FlagSet, options *FormatOptions) {
	flags.StringVar(&options.Format, "format", "pretty", "Output format: pretty, json, yaml")
	flags.StringVar(&options.Output, "output", "", "Output file (optional, uses stdout if not specified)")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&options.Verbose, "verbose", false, "Enable verbose output")

	flags.BoolVar(&options.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&options.YAML, "yaml", false, "Output in YAML format")
	flags.BoolVar(&options.Pretty, "pretty", false, "Output in pretty format (default)")
}

// ResolveFormat resolves the output format from format-specific flags
func (options *FormatOptions) ResolveFormat() error {
	formatCount := 0
	selectedFormat := ""
	for format, set := range map[string]bool{"json": options.JSON, "yaml": options.YAML, "pretty": options.Pretty} {
		if set {
			formatCount++
			selectedFormat = format
		}
	}

	if formatCount > 1 {
		return fmt.Errorf("multiple format flags specified; please use only one format flag")
	}
	if formatCount == 1 {
		options.Format = selectedFormat
	}
	if options.Format == "" {
		options.Format = "pretty"
	}
	return nil
}
