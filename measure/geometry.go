package measure

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

var log = logger.GetLogger("measure")

const (
	DefaultFontSize = 16.0
	// average glyph advance and ascent as a fraction of the font size
	charWidth = 0.6
	ascent    = 0.8
	// maxUseDepth bounds <use> indirection
	maxUseDepth = 8
)

// Geometry measures elements analytically from their attributes. Boxes are
// returned in the user space of the document root, with every transform applied.
// Text is estimated from its character count and font size.
type Geometry struct {
	ids map[string]*svgdoc.Node
}

func NewGeometry() *Geometry {
	return &Geometry{}
}

// Prepare indexes element ids for <use> references
func (g *Geometry) Prepare(doc *svgdoc.Document) error {
	g.ids = map[string]*svgdoc.Node{}
	doc.Root.Walk(func(n *svgdoc.Node) bool {
		if !n.IsElement() {
			return false
		}
		if id, ok := n.Attr("id"); ok {
			if _, dup := g.ids[id]; !dup {
				g.ids[id] = n
			}
		}
		return true
	})
	return nil
}

// BBox returns the bounds of n in document space. Nodes that are not rendered
// measure as an empty box.
func (g *Geometry) BBox(n *svgdoc.Node) (api.Box, error) {
	if !n.IsElement() {
		return api.Box{}, fmt.Errorf("cannot measure a non element node")
	}
	if !n.Rendered() {
		return api.Box{}, nil
	}
	return g.content(n, CTM(n), 0)
}

// CTM returns the transform from n's user space to the root's user space,
// including n's own transform.
func CTM(n *svgdoc.Node) Matrix {
	var chain []*svgdoc.Node
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		chain = append(chain, p)
	}
	m := Identity
	for i := len(chain) - 1; i >= 0; i-- {
		m = m.Mul(localTransform(chain[i]))
	}
	return m
}

// localTransform is the node's transform attribute, plus the x/y offset that
// nested <svg> elements establish.
func localTransform(n *svgdoc.Node) Matrix {
	m := NodeTransform(n)
	if n.LocalName() == "svg" {
		m = m.Mul(Translate(length(n, "x"), length(n, "y")))
	}
	return m
}

func length(n *svgdoc.Node, attr string) float64 {
	f, _ := svgdoc.ParseLength(n.AttrOr(attr, ""))
	return f
}

// content measures n in the coordinate system m maps n's user space into
func (g *Geometry) content(n *svgdoc.Node, m Matrix, depth int) (api.Box, error) {
	switch n.LocalName() {
	case "g", "a", "switch", "svg", "symbol":
		var box api.Box
		for _, c := range n.Elements() {
			if c.IsInner() || !rendered(c) || !measurable(c) {
				continue
			}
			cb, err := g.content(c, m.Mul(localTransform(c)), depth)
			if err != nil {
				log.Debugf("skipping <%s> in group bounds: %v", c.Name, err)
				continue
			}
			box = box.Union(cb)
		}
		return box, nil
	case "rect", "image", "foreignObject":
		return m.ApplyBox(api.NewBox(length(n, "x"), length(n, "y"), length(n, "width"), length(n, "height"))), nil
	case "circle":
		r := length(n, "r")
		return m.ApplyBox(api.NewBox(length(n, "cx")-r, length(n, "cy")-r, 2*r, 2*r)), nil
	case "ellipse":
		rx, ry := length(n, "rx"), length(n, "ry")
		return m.ApplyBox(api.NewBox(length(n, "cx")-rx, length(n, "cy")-ry, 2*rx, 2*ry)), nil
	case "line":
		return m.ApplyBox(api.BoxFromPoints(
			api.Point{X: length(n, "x1"), Y: length(n, "y1")},
			api.Point{X: length(n, "x2"), Y: length(n, "y2")},
		)), nil
	case "polyline", "polygon":
		nums, err := svgdoc.ParseNumbers(n.AttrOr("points", ""))
		if err != nil {
			return api.Box{}, fmt.Errorf("invalid points: %w", err)
		}
		var pts []api.Point
		for i := 0; i+1 < len(nums); i += 2 {
			pts = append(pts, api.Point{X: nums[i], Y: nums[i+1]})
		}
		return m.ApplyBox(api.BoxFromPoints(pts...)), nil
	case "path":
		box, err := PathBounds(n.AttrOr("d", ""))
		if err != nil {
			return api.Box{}, fmt.Errorf("invalid path data: %w", err)
		}
		return m.ApplyBox(box), nil
	case "text":
		return m.ApplyBox(textBox(n)), nil
	case "use":
		return g.use(n, m, depth)
	}
	return api.Box{}, fmt.Errorf("<%s> has no geometry", n.Name)
}

func (g *Geometry) use(n *svgdoc.Node, m Matrix, depth int) (api.Box, error) {
	if depth >= maxUseDepth {
		return api.Box{}, fmt.Errorf("<use> nesting deeper than %d", maxUseDepth)
	}
	href, ok := n.Attr("href")
	if !ok {
		href = n.AttrOr("xlink:href", "")
	}
	ref := g.ids[strings.TrimPrefix(href, "#")]
	if !strings.HasPrefix(href, "#") || ref == nil {
		return api.Box{}, fmt.Errorf("unresolved reference %q", href)
	}
	m = m.Mul(Translate(length(n, "x"), length(n, "y")))
	if ref.LocalName() != "symbol" {
		m = m.Mul(NodeTransform(ref))
	}
	return g.content(ref, m, depth+1)
}

// textBox estimates the extent of a text run from its anchor position
func textBox(n *svgdoc.Node) api.Box {
	fs := fontSize(n)
	x := firstNumber(n.AttrOr("x", ""))
	y := firstNumber(n.AttrOr("y", ""))
	w := float64(utf8.RuneCountInString(strings.TrimSpace(n.TextContent()))) * fs * charWidth
	switch anchor, _ := inherited(n, "text-anchor"); anchor {
	case "middle":
		x -= w / 2
	case "end":
		x -= w
	}
	return api.NewBox(x, y-fs*ascent, w, fs)
}

func fontSize(n *svgdoc.Node) float64 {
	if v, ok := inherited(n, "font-size"); ok {
		if f, ok := svgdoc.ParseLength(v); ok && f > 0 {
			return f
		}
	}
	return DefaultFontSize
}

// inherited resolves a presentation property from the node or its ancestors
func inherited(n *svgdoc.Node, property string) (string, bool) {
	for p := n; p != nil; p = p.Parent {
		if v, ok := p.Presentation(property); ok && v != "inherit" {
			return v, true
		}
	}
	return "", false
}

func firstNumber(s string) float64 {
	nums, _ := svgdoc.ParseNumbers(s)
	if len(nums) == 0 {
		return 0
	}
	return nums[0]
}

func rendered(n *svgdoc.Node) bool {
	v, _ := n.Presentation("display")
	return v != "none" || n.Revealed()
}

func measurable(n *svgdoc.Node) bool {
	switch n.LocalName() {
	case "defs", "symbol", "clipPath", "mask", "marker", "pattern", "linearGradient",
		"radialGradient", "filter", "style", "script", "title", "desc", "metadata":
		return false
	}
	return true
}
