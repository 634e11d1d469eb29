package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pumpSymbol = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width='200' height="100" viewBox="0 0 200 100">
  <!-- pump body -->
  <g id="pump" transform="translate(10, 10)">
    <circle cx="40" cy="40" r="30" style="fill: #ccc"/>
    <rect x="80" y="20" width="60" height="40" class="body  outline"></rect>
  </g>
  <text x="100" y="90">flow &amp; pressure<tspan dx="2">bar</tspan></text>
  <style><![CDATA[ .body { fill: red } ]]></style>
  <path d="M0,0 L10,10z" />
</svg>`

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "symbol", in: pumpSymbol, out: pumpSymbol},
		{name: "self closing root", in: `<svg viewBox="0 0 1 1"/>`, out: `<svg viewBox="0 0 1 1"></svg>`},
		{name: "prolog dropped", in: "<?xml version=\"1.0\"?>\n<!DOCTYPE svg>\n<svg><g/></svg>\n", out: "<svg><g/></svg>"},
		{name: "entities and unquoted spacing", in: `<svg ><text   x = "1" >&lt;a&gt;</text ></svg>`, out: `<svg ><text   x = "1" >&lt;a&gt;</text ></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.out, doc.String())
		})
	}
}

func TestParse_HeaderAndInner(t *testing.T) {
	doc, err := Parse(`<svg width="10"><rect/></svg>`)
	require.NoError(t, err)
	assert.Equal(t, `<svg width="10">`, doc.Header())
	assert.Equal(t, `<rect/>`, doc.Inner())
	assert.False(t, doc.Synthetic)
}

func TestParse_SyntheticRoot(t *testing.T) {
	doc, err := Parse(`<g><circle r="2"/></g>`)
	require.NoError(t, err)
	assert.True(t, doc.Synthetic)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><g><circle r="2"/></g></svg>`, doc.String())
	_, ok := doc.ViewBox()
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{`<svg><g></svg>`, `<svg>`, `</g>`} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrMalformed, in)
	}
}

func TestExport_StripsEditorArtifacts(t *testing.T) {
	doc, err := Parse(pumpSymbol)
	require.NoError(t, err)

	for _, n := range doc.Elements() {
		n.AddClass(ClassElement)
		n.SetRevealed(true)
	}
	doc.Root.InsertChild(0, &Node{Kind: ElementNode, Name: "style", Inner: true})
	highlight := NewElement("rect", Attr{Name: InnerAttr, Value: "true"}, Attr{Name: "class", Value: ClassHighlight})
	doc.Root.AppendChild(highlight)

	assert.Equal(t, pumpSymbol, doc.String())
}

func TestExport_RewritesOnlyChangedTags(t *testing.T) {
	doc, err := Parse(pumpSymbol)
	require.NoError(t, err)

	var circle *Node
	for _, n := range doc.Elements() {
		if n.LocalName() == "circle" {
			circle = n
		}
	}
	require.NotNil(t, circle)
	circle.SetAttr(TagAttr, "pump1")

	out := doc.String()
	assert.Contains(t, out, `<circle cx="40" cy="40" r="30" style="fill: #ccc" tb:tag="pump1"/>`)
	assert.Contains(t, out, `<rect x="80" y="20" width="60" height="40" class="body  outline"></rect>`)
	assert.Contains(t, out, `width='200'`)

	circle.RemoveAttr(TagAttr)
	assert.Equal(t, pumpSymbol, doc.String())
}

func TestExport_CollapsesEmptyClass(t *testing.T) {
	doc, err := Parse(`<svg><rect class="tb-hovered"/><rect class="a tb-element"/></svg>`)
	require.NoError(t, err)
	assert.Equal(t, `<svg><rect/><rect class="a"/></svg>`, doc.String())
}

func TestExport_KeepsUntouchedEmptyClass(t *testing.T) {
	for _, in := range []string{
		`<svg><rect width="10" height="10" class=""/></svg>`,
		`<svg><rect width="10" height="10" class="  "/></svg>`,
		`<svg><g class=' a '><rect/></g></svg>`,
	} {
		doc, err := Parse(in)
		require.NoError(t, err)
		for _, n := range doc.Elements() {
			n.AddClass(ClassElement)
		}
		assert.Equal(t, in, doc.String())
	}
}

func TestExport_SelfClosedRoot(t *testing.T) {
	doc, err := Parse(`<svg viewBox="0 0 1 1"/>`)
	require.NoError(t, err)
	assert.Equal(t, `<svg viewBox="0 0 1 1">`, doc.Header())
	assert.Equal(t, "", doc.Inner())
	assert.Equal(t, `<svg viewBox="0 0 1 1"></svg>`, doc.String())

	again, err := Parse(doc.String())
	require.NoError(t, err)
	assert.Equal(t, doc.String(), again.String())
}

func TestEnsureNamespace(t *testing.T) {
	doc, err := Parse(`<svg width="1"></svg>`)
	require.NoError(t, err)
	assert.True(t, doc.EnsureNamespace())
	assert.False(t, doc.EnsureNamespace())
	assert.Equal(t, `<svg width="1" xmlns:tb="https://thingsboard.io/svg">`, doc.Header())
}

func TestViewBox(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{`<svg viewBox="0 0 200 100"/>`, true},
		{`<svg viewBox="-10,-5,20,10"/>`, true},
		{`<svg viewBox="0 0 0 100"/>`, false},
		{`<svg viewBox="0 0 abc"/>`, false},
		{`<svg/>`, false},
	}
	for _, tt := range tests {
		doc, err := Parse(tt.in)
		require.NoError(t, err)
		_, ok := doc.ViewBox()
		assert.Equal(t, tt.ok, ok, tt.in)
	}

	doc, _ := Parse(`<svg viewBox="-10,-5,20,10"/>`)
	box, _ := doc.ViewBox()
	assert.Equal(t, -10.0, box.X)
	assert.Equal(t, -5.0, box.Y)
	assert.Equal(t, 20.0, box.Width)
	assert.Equal(t, 10.0, box.Height)
}

func TestMarked(t *testing.T) {
	doc, err := Parse(`<svg><g><rect/></g></svg>`)
	require.NoError(t, err)
	out, nodes := doc.Marked("data-node")
	assert.Len(t, nodes, 3)
	assert.Equal(t, `<svg data-node="0"><g data-node="1"><rect data-node="2"/></g></svg>`, out)
	assert.Equal(t, "rect", nodes[2].Name)
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify(`<svg width="100" height="100" xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="50" r="20"/></svg>`))
	assert.Error(t, Verify(`<g/>`))
}
