package popup

import (
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	b := NewBoard()
	first := b.Create(api.PopupSpec{Kind: api.PopupAddTag, Element: 1})
	second := b.Create(api.PopupSpec{Kind: api.PopupTag, Element: 2, Tag: "pump1"})
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, b.Len())

	placement := api.Placement{Anchor: api.Point{X: 10, Y: 20}, Side: api.SideLeft, Visible: true}
	b.Reposition(second, placement)
	b.Update(second, api.PopupSpec{Kind: api.PopupTag, Element: 2, Tag: "pump1", Active: true})

	p, ok := b.Get(second)
	require.True(t, ok)
	assert.Equal(t, placement, p.Placement)
	assert.True(t, p.Spec.Active)

	b.Destroy(first)
	b.Destroy(first)
	b.Reposition(first, placement)
	_, ok = b.Get(first)
	assert.False(t, ok)
	assert.Empty(t, b.ForElement(1))
	assert.Len(t, b.ForElement(2), 1)

	assert.Equal(t, []Event{
		{OpCreate, first}, {OpCreate, second}, {OpReposition, second}, {OpUpdate, second}, {OpDestroy, first},
	}, b.Events)
	assert.Contains(t, b.Pretty().String(), "tag pump1")
}

func TestBoard_ZeroValue(t *testing.T) {
	var b Board
	id := b.Create(api.PopupSpec{Kind: api.PopupTag})
	assert.Equal(t, api.PopupID(1), id)
	assert.Equal(t, []Popup{{ID: 1, Spec: api.PopupSpec{Kind: api.PopupTag}}}, b.Popups())
}
