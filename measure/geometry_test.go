package measure

import (
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plant = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 200 100">
  <defs><circle id="dot" r="2"/></defs>
  <g id="tank" transform="translate(100 50)">
    <rect id="shell" x="-10" y="-20" width="20" height="40"/>
    <circle id="valve" cx="0" cy="30" r="5"/>
  </g>
  <ellipse id="lamp" cx="10" cy="10" rx="4" ry="2"/>
  <line id="pipe" x1="0" y1="90" x2="50" y2="80"/>
  <polygon id="arrow" points="0,0 10,5 0,10"/>
  <text id="label" x="20" y="60" font-size="10">PUMP</text>
  <text id="centered" x="100" y="10" style="text-anchor: middle">ab</text>
  <use id="ref" xlink:href="#dot" x="50" y="50"/>
  <g id="hidden" style="display:none"><rect id="inside" width="10" height="10"/></g>
  <svg id="nested" x="150" y="0"><rect id="nestedRect" width="5" height="5"/></svg>
</svg>`

func measureAll(t *testing.T) (*Geometry, map[string]*svgdoc.Node) {
	t.Helper()
	doc, err := svgdoc.Parse(plant)
	require.NoError(t, err)
	g := NewGeometry()
	require.NoError(t, g.Prepare(doc))
	byID := map[string]*svgdoc.Node{}
	doc.Root.Walk(func(n *svgdoc.Node) bool {
		if id, ok := n.Attr("id"); ok {
			byID[id] = n
		}
		return true
	})
	return g, byID
}

func TestGeometry_BBox(t *testing.T) {
	g, byID := measureAll(t)
	tests := []struct {
		id   string
		want api.Box
	}{
		{"shell", api.NewBox(90, 30, 20, 40)},
		{"valve", api.NewBox(95, 75, 10, 10)},
		{"tank", api.NewBox(90, 30, 20, 55)},
		{"lamp", api.NewBox(6, 8, 8, 4)},
		{"pipe", api.NewBox(0, 80, 50, 10)},
		{"arrow", api.NewBox(0, 0, 10, 10)},
		{"label", api.NewBox(20, 52, 24, 10)},
		{"centered", api.NewBox(90.4, -2.8, 19.2, 16)},
		{"ref", api.NewBox(48, 48, 4, 4)},
		{"nestedRect", api.NewBox(150, 0, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			box, err := g.BBox(byID[tt.id])
			require.NoError(t, err)
			assertBox(t, tt.want, box, 1e-9)
		})
	}
}

func TestGeometry_NotRendered(t *testing.T) {
	g, byID := measureAll(t)

	box, err := g.BBox(byID["inside"])
	require.NoError(t, err)
	assert.True(t, box.Empty())

	byID["hidden"].SetRevealed(true)
	box, err = g.BBox(byID["inside"])
	require.NoError(t, err)
	assertBox(t, api.NewBox(0, 0, 10, 10), box, 1e-9)
}

func TestGeometry_Errors(t *testing.T) {
	doc, err := svgdoc.Parse(`<svg><path id="bad" d="M0"/><use href="#missing"/><foo/></svg>`)
	require.NoError(t, err)
	g := NewGeometry()
	require.NoError(t, g.Prepare(doc))
	for _, n := range doc.Elements() {
		_, err := g.BBox(n)
		assert.Error(t, err, n.Name)
	}

	root, err := g.BBox(doc.Root)
	require.NoError(t, err)
	assert.True(t, root.Empty())
}

func TestGeometry_Root(t *testing.T) {
	g := NewGeometry()
	doc, err := svgdoc.Parse(plant)
	require.NoError(t, err)
	require.NoError(t, g.Prepare(doc))
	box, err := g.BBox(doc.Root)
	require.NoError(t, err)
	assert.InDelta(t, 0, box.X, 1e-9)
	assert.InDelta(t, -2.8, box.Y, 1e-9)
	assert.InDelta(t, 155, box.Width, 1e-9)
	assert.InDelta(t, 92.8, box.Height, 1e-9)
}
