package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/flanksource/symbols"
	"github.com/spf13/cobra"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "symbols",
		Short: "Inspect and tag SCADA symbols headlessly",
		Long: `symbols loads an SVG symbol into the editing core used by the symbol editor,
measures its elements, lays out tag tooltips and writes the tagged symbol back.`,
		Example: `  symbols inspect pump.svg
  symbols tag pump.svg '#impeller' pump1 -o pump.svg
  symbols preview pump.svg -o pump.preview.svg`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			symbols.Flags.UseFlags()
			return nil
		},
	}

	symbols.BindAllFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newTagsCommand())
	rootCmd.AddCommand(newTagCommand())
	rootCmd.AddCommand(newUntagCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newZoomCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("symbols %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			fmt.Printf("  go:     %s\n", runtime.Version())
			fmt.Printf("  os:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
