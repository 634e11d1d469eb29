package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/measure"
	"github.com/flanksource/symbols/svgdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoCircles = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
  <circle cx="50" cy="50" r="5"/>
  <circle cx="70" cy="50" r="5"/>
</svg>`

func TestTwoCirclesTaggedTwice(t *testing.T) {
	f := load(t, twoCircles, 200, 100)

	require.Len(t, f.ed.Elements(), 2)
	groups := f.ed.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 1}, groups[0].Members)
	assert.Equal(t, -1, groups[0].Anchor)
	assert.Equal(t, []float64{-18, 18}, groups[0].Offsets)

	require.NoError(t, f.ed.SetTag(0, "pump1"))
	require.NoError(t, f.ed.SetTag(1, "pump1"))
	assert.Equal(t, []string{"pump1"}, f.ed.Tags())
	assert.Equal(t, []string{"pump1"}, f.host.lastTags())
	assert.Equal(t, []bool{true}, f.host.dirty)

	out := f.ed.Content()
	assert.Equal(t, 2, strings.Count(out, `tb:tag="pump1"`))
	assert.Contains(t, out, `xmlns:tb="https://thingsboard.io/svg"`)
	assert.NotContains(t, out, "tb-")
	assert.NoError(t, svgdoc.Verify(out))
}

func TestContent_RoundTrip(t *testing.T) {
	symbol := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><!-- valve -->
  <g id="valve" class="part"><rect x="10" y="10" width="20" height="20" style="fill:#eee"/>
  <path d="M10 10 L30 30"/></g>
  <rect id="ghost" x="50" y="50" width="10" height="10" style="display: none"/>
  <text x="60" y="20">V-101</text>
</svg>`
	f := load(t, "<?xml version=\"1.0\"?>\n"+symbol+"\n", 300, 300)
	assert.Equal(t, symbol, f.ed.Content())

	assert.True(t, f.ed.PointerEnter(0, api.Point{}))
	f.ed.ShowInvisible()
	f.ed.ZoomIn()
	f.ed.Viewport().Finish()
	assert.Equal(t, symbol, f.ed.Content())

	ghost, ok := f.ed.FindByID("ghost")
	require.True(t, ok)
	assert.True(t, ghost.Invisible)
	assert.False(t, ghost.OrigVisible)
	assert.True(t, ghost.Node.Revealed())
	assert.Equal(t, []bool{true}, f.host.hidden)

	require.NoError(t, f.ed.SetTag(ghost.Index, "hidden1"))
	assert.Contains(t, f.ed.Content(), `<rect id="ghost" x="50" y="50" width="10" height="10" style="display: none" tb:tag="hidden1"/>`)
	f.ed.HideInvisible()
	assert.False(t, ghost.Node.Revealed())
}

func TestRegistry(t *testing.T) {
	f := load(t, `<svg viewBox="0 0 100 100">
  <defs><circle id="c" r="3"/></defs>
  <g id="outer"><rect id="r" width="10" height="10"/><g id="empty"/></g>
  <text id="t" x="10" y="50">A<tspan>B</tspan></text>
  <path id="broken" d="M0"/>
  <g id="off" style="display:none"><circle id="inner" cx="50" cy="50" r="5"/></g>
  <use id="u" href="#c" x="80" y="80"/>
</svg>`, 100, 100)

	ids := []string{}
	for _, e := range f.ed.Elements() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []string{"outer", "r", "t", "off", "inner", "u"}, ids)

	outer, _ := f.ed.FindByID("outer")
	r, _ := f.ed.FindByID("r")
	assert.Equal(t, KindGroup, outer.Kind)
	assert.Equal(t, []int{r.Index}, outer.Children)
	assert.Equal(t, outer.Index, r.Parent)

	off, _ := f.ed.FindByID("off")
	inner, _ := f.ed.FindByID("inner")
	assert.True(t, off.Invisible)
	assert.False(t, inner.Invisible)
	assert.Equal(t, api.NewBox(45, 45, 10, 10), inner.Box)
	assert.False(t, off.Node.Revealed())

	text, _ := f.ed.FindByID("t")
	assert.Equal(t, KindText, text.Kind)
}

func TestSetContent(t *testing.T) {
	ed := New()
	assert.ErrorIs(t, ed.SetContent(`<svg><g></svg>`), svgdoc.ErrMalformed)
	assert.Equal(t, "", ed.Content())

	require.NoError(t, ed.SetContent(`<svg><rect x="10" y="20" width="30" height="40"/></svg>`))
	assert.False(t, ed.Ready())
	_, err := ed.Element(0)
	assert.ErrorIs(t, err, ErrNotSetup)
	assert.Equal(t, api.NewBox(10, 20, 30, 40), ed.Viewport().Content())
	assert.Equal(t, 0.75, ed.Viewport().Zoom())
	assert.Equal(t, 1.0, ed.Viewport().Scale())

	ed.Resize(0, 0)
	assert.False(t, ed.Ready())
	ed.Resize(60, 40)
	assert.True(t, ed.Ready())
	assert.Equal(t, 1.0, ed.Viewport().Scale())
	_, err = ed.Element(1)
	assert.ErrorIs(t, err, ErrNoElement)

	require.NoError(t, ed.SetContent(`<circle r="5"/>`))
	assert.True(t, ed.Ready(), "a sized editor sets up new content immediately")
	assert.Len(t, ed.Elements(), 1)
	assert.Equal(t, api.NewBox(-5, -5, 10, 10), ed.Viewport().Content())
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><circle r="5"/></svg>`, ed.Content())
}

// failingMeasurer measures analytically until told to reject the next document
type failingMeasurer struct {
	*measure.Geometry
	fail bool
}

func (m *failingMeasurer) Prepare(doc *svgdoc.Document) error {
	if m.fail {
		return errors.New("browser crashed")
	}
	return m.Geometry.Prepare(doc)
}

func TestSetContent_PrepareFailureKeepsContent(t *testing.T) {
	m := &failingMeasurer{Geometry: measure.NewGeometry()}
	f := load(t, twoCircles, 200, 100, WithMeasurer(m))
	require.NoError(t, f.ed.SetTag(0, "pump1"))
	before := f.ed.Content()
	box := f.ed.Viewport().Content()

	m.fail = true
	err := f.ed.SetContent(`<svg viewBox="0 0 1000 50"><rect width="10" height="10"/></svg>`)
	assert.ErrorContains(t, err, "browser crashed")

	assert.True(t, f.ed.Ready())
	assert.Len(t, f.ed.Elements(), 2)
	assert.Equal(t, box, f.ed.Viewport().Content())
	assert.Equal(t, before, f.ed.Content())
	assert.Equal(t, []string{"pump1"}, f.ed.Tags())
}

func TestSetContent_EmptyDrawing(t *testing.T) {
	ed := New()
	require.NoError(t, ed.SetContent(`<svg width="40" height="20"></svg>`))
	assert.Equal(t, api.NewBox(0, 0, 40, 20), ed.Viewport().Content())
}

func TestResize(t *testing.T) {
	f := load(t, twoCircles, 400, 100)
	assert.Equal(t, 1.0, f.ed.Viewport().Scale())

	f.ed.Resize(100, 100)
	assert.Equal(t, 0.5, f.ed.Viewport().Scale())
	f.ed.Resize(400, 400)
	assert.Equal(t, 2.0, f.ed.Viewport().Scale())
}

func TestDestroy(t *testing.T) {
	f := load(t, twoCircles, 200, 100)
	require.NoError(t, f.ed.SetTag(0, "a"))
	require.NoError(t, f.ed.SetTag(1, "b"))
	assert.Equal(t, 2, f.board.Len())

	f.ed.Destroy()
	assert.Equal(t, 0, f.board.Len())
	assert.Empty(t, f.ed.Elements())
	assert.Contains(t, f.ed.Content(), `tb:tag="b"`)

	require.NoError(t, f.ed.SetContent(twoCircles))
	assert.Len(t, f.ed.Elements(), 2)
	assert.Empty(t, f.ed.Tags())
}

func TestReport(t *testing.T) {
	f := load(t, twoCircles, 200, 100)
	require.NoError(t, f.ed.SetTag(1, "pump1"))
	r := f.ed.Report()
	assert.Equal(t, []string{"pump1"}, r.Tags)
	assert.Len(t, r.Elements, 2)
	assert.Equal(t, "circle", r.Elements[0].Name)
	assert.Equal(t, 0, r.Elements[1].Group)
	assert.True(t, r.Dirty)
	assert.Contains(t, r.Pretty().String(), "tag=pump1")
}
