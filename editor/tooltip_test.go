package editor

import (
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/stretchr/testify/assert"
)

func TestPopupSide(t *testing.T) {
	wide := api.NewBox(100, 100, 80, 20)
	tall := api.NewBox(100, 100, 20, 80)
	tests := []struct {
		name string
		rect api.Box
		p    api.Point
		want api.Side
	}{
		{"wide left end", wide, api.Point{X: 110, Y: 115}, api.SideLeft},
		{"wide right end", wide, api.Point{X: 170, Y: 105}, api.SideRight},
		{"wide middle top", wide, api.Point{X: 140, Y: 105}, api.SideTop},
		{"wide middle bottom", wide, api.Point{X: 140, Y: 115}, api.SideBottom},
		{"tall top end", tall, api.Point{X: 115, Y: 110}, api.SideTop},
		{"tall bottom end", tall, api.Point{X: 105, Y: 175}, api.SideBottom},
		{"tall middle left", tall, api.Point{X: 105, Y: 140}, api.SideLeft},
		{"tall middle right", tall, api.Point{X: 115, Y: 140}, api.SideRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PopupSide(tt.rect, tt.p))
		})
	}
}

func TestEdgeAnchor(t *testing.T) {
	r := api.NewBox(10, 20, 40, 60)
	assert.Equal(t, api.Point{X: 30, Y: 20}, EdgeAnchor(r, api.SideTop))
	assert.Equal(t, api.Point{X: 30, Y: 80}, EdgeAnchor(r, api.SideBottom))
	assert.Equal(t, api.Point{X: 10, Y: 50}, EdgeAnchor(r, api.SideLeft))
	assert.Equal(t, api.Point{X: 50, Y: 50}, EdgeAnchor(r, api.SideRight))
}

func TestPlacementVisibility(t *testing.T) {
	f := load(t, singleCircle, 400, 200)
	is := assert.New(t)
	is.NoError(f.ed.SetTag(1, "tank"))
	e, _ := f.ed.Element(1)
	p, _ := f.board.Get(e.Popup())
	is.True(p.Placement.Visible)

	f.ed.WheelZoom(4, api.Point{})
	p, _ = f.board.Get(e.Popup())
	is.False(p.Placement.Visible)
}
