package symbols

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
)

// MeasureOptions select how element boxes are measured
type MeasureOptions struct {
	Measure string // geometry or browser
	// InstallBrowser downloads the browser driver when it is missing
	InstallBrowser bool
	Width          float64
	Height         float64
}

type AllFlags struct {
	FormatOptions
	MeasureOptions
	logger.Flags
	Config string
}

var Flags AllFlags = AllFlags{
	FormatOptions:  FormatOptions{},
	MeasureOptions: MeasureOptions{Measure: "geometry"},
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindAllFlags adds the global flags to a pflag set (for Cobra)
func BindAllFlags(flags *pflag.FlagSet) AllFlags {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")
	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.StringVarP(&Flags.Config, "config", "c", "", "Editor settings file (yaml or toml)")

	flags.StringVar(&Flags.MeasureOptions.Measure, "measure", "geometry", "Element measurer: geometry, browser")
	flags.BoolVar(&Flags.MeasureOptions.InstallBrowser, "install-browser", false, "Install the browser driver used by --measure=browser")
	flags.Float64Var(&Flags.MeasureOptions.Width, "width", 0, "Container width in pixels (0 uses the configured size)")
	flags.Float64Var(&Flags.MeasureOptions.Height, "height", 0, "Container height in pixels (0 uses the configured size)")

	BindFormatFlags(flags)
	return Flags
}

func (a AllFlags) String() string {
	s, _ := Format(a, FormatOptions{YAML: true})
	return s
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
	logger.Debugf("Using flags: %s", a)
	UseFormatter(a.FormatOptions)
}
