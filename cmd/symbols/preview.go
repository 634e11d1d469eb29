package main

import (
	"bytes"
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/flanksource/symbols"
	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/editor"
	"github.com/flanksource/symbols/measure"
	"github.com/flanksource/symbols/popup"
	"github.com/flanksource/symbols/svgdoc"
	"github.com/spf13/cobra"
)

const (
	tooltipStyle = "fill:#fffbe6;stroke:#d4b106;stroke-width:1"
	activeStyle  = "fill:#ffffff;stroke:#ff4d4f;stroke-width:1"
	labelStyle   = "font-family:sans-serif;font-size:11px;fill:#333;text-anchor:middle"
)

var groupColors = []string{"#1677ff", "#52c41a", "#fa8c16", "#eb2f96", "#13c2c2", "#722ed1"}

func round(f float64) int { return int(math.Round(f)) }

// Preview draws the symbol as laid out in the container, with element boxes,
// overlap groups and tag tooltips on top.
func Preview(ed *editor.Editor) ([]byte, error) {
	s := ed.Settings()
	v := ed.Viewport()
	width, height := round(s.ContainerWidth), round(s.ContainerHeight)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#fafafa")

	doc := ed.Document()
	visible := v.Box()
	k := v.Zoom() * v.Scale()
	fmt.Fprintf(canvas.Writer, `<svg %s="%s" x="0" y="0" width="%g" height="%g" viewBox="%s" preserveAspectRatio="xMinYMin meet">%s</svg>`+"\n",
		svgdoc.NamespaceAttr, svgdoc.Namespace, visible.Width*k, visible.Height*k, visible, doc.Inner())

	canvas.Gstyle("fill:none")
	for _, e := range ed.Elements() {
		b := e.ScreenBox()
		style := "stroke:#999;stroke-width:0.5;stroke-dasharray:2,2"
		if e.Group >= 0 {
			style = fmt.Sprintf("stroke:%s;stroke-width:1", groupColors[e.Group%len(groupColors)])
		}
		if e.Invisible {
			style += ";opacity:0.5"
		}
		canvas.Rect(round(b.X), round(b.Y), round(b.Width), round(b.Height), style)
	}
	canvas.Gend()

	if board, ok := ed.Popups().(*popup.Board); ok {
		drawTooltips(canvas, ed, board)
	}
	canvas.End()
	return buf.Bytes(), nil
}

func drawTooltips(canvas *svg.SVG, ed *editor.Editor, board *popup.Board) {
	s := ed.Settings()
	w, h := round(s.TooltipWidth), round(s.TooltipHeight)
	for _, p := range board.Popups() {
		if !p.Placement.Visible || p.Spec.Kind != api.PopupTag {
			continue
		}
		x, y := tooltipOrigin(p.Placement, s.TooltipWidth, s.TooltipHeight)
		style := tooltipStyle
		if p.Spec.Active {
			style = activeStyle
		}
		canvas.Roundrect(round(x), round(y), w, h, 4, 4, style)
		canvas.Text(round(x)+w/2, round(y)+h/2+4, p.Spec.Tag, labelStyle)
		canvas.Circle(round(p.Placement.Anchor.X), round(p.Placement.Anchor.Y), 2, "fill:#d4b106")
	}
}

// tooltipOrigin is the top left corner of a tooltip attached to anchor on side
func tooltipOrigin(p api.Placement, w, h float64) (float64, float64) {
	a := p.Anchor
	switch p.Side {
	case api.SideLeft:
		return a.X - w, a.Y - h/2
	case api.SideRight:
		return a.X, a.Y - h/2
	case api.SideBottom:
		return a.X - w/2, a.Y
	default:
		return a.X - w/2, a.Y - h
	}
}

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <symbol.svg>",
		Short: "Write an SVG showing element boxes, overlap groups and tag tooltips",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			out, err := Preview(ed)
			if err != nil {
				return err
			}
			return writeOutput(out, symbols.Flags.FormatOptions.Output)
		},
	}
}

func newRenderCommand() *cobra.Command {
	var resolution int
	cmd := &cobra.Command{
		Use:   "render <symbol.svg>",
		Short: "Render the exported symbol to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := open(args[0])
			if err != nil {
				return err
			}
			defer ed.Destroy()
			if symbols.Flags.FormatOptions.Output == "" {
				return fmt.Errorf("--output is required to render a PNG")
			}
			f, err := os.Create(symbols.Flags.FormatOptions.Output)
			if err != nil {
				return err
			}
			defer f.Close() // nolint:errcheck
			r := measure.NewRaster()
			r.Resolution = resolution
			return r.RenderPNG(f, ed.Content(), ed.Viewport().Content(), 0, 0)
		},
	}
	cmd.Flags().IntVar(&resolution, "resolution", 512, "Size of the longer PNG side in pixels")
	return cmd
}
