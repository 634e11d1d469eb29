package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols"
	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
	"github.com/flanksource/symbols/task"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var showHidden bool
	cmd := &cobra.Command{
		Use:   "inspect <symbol.svg>",
		Short: "Show the elements, tags and tooltip overlap groups of a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			if showHidden {
				ed.ShowInvisible()
			}
			return symbols.FormatToFile(ed.Report(), symbols.Flags.FormatOptions, symbols.Flags.FormatOptions.Output)
		},
	}
	cmd.Flags().BoolVar(&showHidden, "show-hidden", false, "Reveal hidden elements")
	return cmd
}

// TagList is the output of the tags command
type TagList struct {
	Tags     []string         `json:"tags" yaml:"tags"`
	Elements map[string][]int `json:"elements" yaml:"elements"`
}

func (l TagList) Pretty() api.Text {
	t := api.Text{}
	for _, tag := range l.Tags {
		t = t.Append(tag, "bold", "success").
			Append(fmt.Sprintf(" %v", l.Elements[tag]), "muted").
			NewLine()
	}
	if len(l.Tags) == 0 {
		t = t.Append("no tags", "muted")
	}
	return t
}

func newTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags <symbol.svg>",
		Short: "List the tags assigned in a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			list := TagList{Tags: ed.Tags(), Elements: map[string][]int{}}
			for _, tag := range list.Tags {
				for _, e := range ed.ElementsWithTag(tag) {
					list.Elements[tag] = append(list.Elements[tag], e.Index)
				}
			}
			return symbols.FormatToFile(list, symbols.Flags.FormatOptions, symbols.Flags.FormatOptions.Output)
		},
	}
}

func newTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <symbol.svg> <element> <tag>",
		Short: "Assign a tag to an element, selected by index or #id",
		Example: `  symbols tag pump.svg 3 pump1
  symbols tag pump.svg '#impeller' pump1 --output pump.svg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			e, err := selectElement(ed, args[1])
			if err != nil {
				return err
			}
			session, ok := ed.BeginTagEdit(e.Index, nil)
			if !ok {
				return fmt.Errorf("element %d cannot be edited", e.Index)
			}
			logger.Debugf("tag edit session %s", session.ID)
			if err := ed.CommitTagEdit(e.Index, args[2]); err != nil {
				ed.CancelTagEdit(e.Index)
				return err
			}
			return writeOutput([]byte(ed.Content()), symbols.Flags.FormatOptions.Output)
		},
	}
}

func newUntagCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "untag <symbol.svg> <element|tag>",
		Short: "Remove the tag of an element, or with --all every use of a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			if all {
				for _, e := range ed.ElementsWithTag(args[1]) {
					if err := ed.ClearTag(e.Index); err != nil {
						return err
					}
				}
			} else {
				e, err := selectElement(ed, args[1])
				if err != nil {
					return err
				}
				if err := ed.ClearTag(e.Index); err != nil {
					return err
				}
			}
			return writeOutput([]byte(ed.Content()), symbols.Flags.FormatOptions.Output)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Treat the argument as a tag and remove it from every element")
	return cmd
}

// exportSymbol loads path and returns it as the editor would save it
func exportSymbol(path string, verify bool) (string, error) {
	ed, err := open(path)
	if err != nil {
		return "", err
	}
	defer ed.Destroy()
	content := ed.Content()
	if verify {
		if err := svgdoc.Verify(content); err != nil {
			return "", fmt.Errorf("exported symbol does not parse: %w", err)
		}
	}
	return content, nil
}

func newExportCommand() *cobra.Command {
	var verify bool
	var outDir string
	var jobs int
	cmd := &cobra.Command{
		Use:   "export <symbol.svg> [symbol.svg...]",
		Short: "Load and write back symbols, normalizing them the way the editor saves them",
		Example: `  symbols export pump.svg --verify --output pump.clean.svg
  symbols export symbols/*.svg --out-dir clean/ --jobs 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && outDir == "" {
				content, err := exportSymbol(args[0], verify)
				if err != nil {
					return err
				}
				return writeOutput([]byte(content), symbols.Flags.FormatOptions.Output)
			}
			if outDir == "" {
				return fmt.Errorf("--out-dir is required to export more than one symbol")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			group := task.Group{MaxConcurrent: jobs}
			for _, path := range args {
				group.Add(path, func(ctx context.Context) error {
					content, err := exportSymbol(path, verify)
					if err != nil {
						return err
					}
					return os.WriteFile(filepath.Join(outDir, filepath.Base(path)), []byte(content), 0o644)
				})
			}
			err := group.Run(cmd.Context())
			if summary, ferr := symbols.Formatter.Pretty(group.Pretty()); ferr == nil {
				fmt.Fprint(os.Stderr, summary)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "Check that the exported symbol parses as SVG")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory to write exported symbols to")
	cmd.Flags().IntVar(&jobs, "jobs", 4, "Number of symbols exported at the same time")
	return cmd
}

// ViewState is the output of the zoom command
type ViewState struct {
	Zoom    float64 `json:"zoom" yaml:"zoom"`
	Scale   float64 `json:"scale" yaml:"scale"`
	Content api.Box `json:"content" yaml:"content"`
	Visible api.Box `json:"visible" yaml:"visible"`
}

func (v ViewState) Pretty() api.Text {
	return api.Text{}.
		Append("zoom ", "bold").Append(fmt.Sprintf("%.3f", v.Zoom)).
		Append("  scale ", "bold").Append(fmt.Sprintf("%.3f", v.Scale)).
		NewLine().
		Append("content ", "bold").Append(v.Content.String(), "muted").
		NewLine().
		Append("visible ", "bold").Append(v.Visible.String(), "info")
}

func parsePoint(s string) (api.Point, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return api.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return api.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return api.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return api.Point{X: px, Y: py}, nil
}

func newZoomCommand() *cobra.Command {
	var in, out int
	var pan, wheel string
	var level float64
	cmd := &cobra.Command{
		Use:   "zoom <symbol.svg>",
		Short: "Apply zoom and pan steps and show the resulting visible area",
		Example: `  symbols zoom pump.svg --in 2 --pan 40,0
  symbols zoom pump.svg --wheel 200,150 --level 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			v := ed.Viewport()
			for i := 0; i < in; i++ {
				ed.ZoomIn()
				v.Finish()
			}
			for i := 0; i < out; i++ {
				ed.ZoomOut()
				v.Finish()
			}
			if wheel != "" {
				focus, err := parsePoint(wheel)
				if err != nil {
					return err
				}
				ed.WheelZoom(level, focus)
			}
			if pan != "" {
				d, err := parsePoint(pan)
				if err != nil {
					return err
				}
				ed.Pan(d.X, d.Y)
			}
			state := ViewState{Zoom: v.Zoom(), Scale: v.Scale(), Content: v.Content(), Visible: v.Box()}
			return symbols.FormatToFile(state, symbols.Flags.FormatOptions, symbols.Flags.FormatOptions.Output)
		},
	}
	cmd.Flags().IntVar(&in, "in", 0, "Number of zoom in steps")
	cmd.Flags().IntVar(&out, "out", 0, "Number of zoom out steps")
	cmd.Flags().StringVar(&pan, "pan", "", "Pan by dx,dy container pixels")
	cmd.Flags().StringVar(&wheel, "wheel", "", "Wheel zoom focused on x,y container pixels")
	cmd.Flags().Float64Var(&level, "level", 2, "Zoom level for --wheel")
	return cmd
}
