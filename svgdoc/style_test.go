package svgdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility(t *testing.T) {
	doc, err := Parse(`<svg>
<g id="a" style="display: none"><rect id="a1"/></g>
<rect id="b" visibility="hidden"/>
<rect id="c" style="fill:red; visibility: collapse"/>
<rect id="d" display="inline" style="display:none"/>
<rect id="e"/>
</svg>`)
	require.NoError(t, err)

	byID := map[string]*Node{}
	for _, n := range doc.Elements() {
		byID[n.AttrOr("id", "")] = n
	}

	assert.True(t, byID["a"].Hidden())
	assert.False(t, byID["a1"].Hidden())
	assert.False(t, byID["a1"].Rendered())
	assert.True(t, byID["b"].Hidden())
	assert.True(t, byID["b"].Rendered())
	assert.True(t, byID["c"].Hidden())
	assert.True(t, byID["d"].Hidden())
	assert.False(t, byID["e"].Hidden())

	byID["a"].SetRevealed(true)
	assert.True(t, byID["a1"].Rendered())
	assert.True(t, byID["a"].Hidden(), "reveal does not change the document's own visibility")
	byID["a"].SetRevealed(false)
	assert.False(t, byID["a1"].Rendered())
	_, hasClass := byID["a"].Attr("class")
	assert.False(t, hasClass)
}

func TestPresentation(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"text-anchor: middle", "middle"},
		{"text-anchor:end;", "end"},
		{"fill:red; text-anchor: start ; ", "start"},
		{"text-anchor: start; text-anchor: end", "end"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			n := NewElement("text", Attr{Name: "style", Value: tt.style}, Attr{Name: "text-anchor", Value: "inherit"})
			v, ok := n.Presentation("text-anchor")
			assert.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}

	v, ok := NewElement("text", Attr{Name: "text-anchor", Value: " middle"}).Presentation("text-anchor")
	assert.True(t, ok)
	assert.Equal(t, "middle", v)
}

func TestEditorStylesheet(t *testing.T) {
	css := EditorStylesheet("tb-glow")
	assert.Contains(t, css, ".tb-element")
	assert.Contains(t, css, "url(#tb-glow)")
	assert.Contains(t, css, "!important")
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{" 12.5px", 12.5, true},
		{"1in", 96, true},
		{"50%", 0, false},
		{"", 0, false},
		{"auto", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseLength(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestParseNumbers(t *testing.T) {
	nums, err := ParseNumbers("1,2 -3.5e1\t.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, -35, 0.5}, nums)

	_, err = ParseNumbers("1 x")
	assert.Error(t, err)
}
