package editor

import (
	"github.com/flanksource/symbols/api"
)

// PopupSide picks the edge of rect closest to where the pointer entered it.
// Wide elements favour the left and right edges only near their ends, tall
// elements favour top and bottom only near theirs.
func PopupSide(rect api.Box, pointer api.Point) api.Side {
	x, y := pointer.X-rect.X, pointer.Y-rect.Y
	w, h := rect.Width, rect.Height
	if w > h {
		switch {
		case x < w/4:
			return api.SideLeft
		case x > w*3/4:
			return api.SideRight
		case y < h/2:
			return api.SideTop
		default:
			return api.SideBottom
		}
	}
	switch {
	case y < h/4:
		return api.SideTop
	case y > h*3/4:
		return api.SideBottom
	case x < w/2:
		return api.SideLeft
	default:
		return api.SideRight
	}
}

// EdgeAnchor is the midpoint of the given edge of rect
func EdgeAnchor(rect api.Box, side api.Side) api.Point {
	switch side {
	case api.SideTop:
		return api.Point{X: rect.CX(), Y: rect.Y}
	case api.SideBottom:
		return api.Point{X: rect.CX(), Y: rect.Bottom()}
	case api.SideLeft:
		return api.Point{X: rect.X, Y: rect.CY()}
	default:
		return api.Point{X: rect.Right(), Y: rect.CY()}
	}
}

// placement positions the element's popup: add-tag popups hang off the edge the
// pointer came from, tag tooltips sit at the element center shifted by the
// overlap ladder, and group tooltips sit above the highlight rectangle.
func (ed *Editor) placement(e *Element) api.Placement {
	var p api.Placement
	switch {
	case !e.Tagged():
		p = api.Placement{Anchor: EdgeAnchor(e.ScreenBox(), e.popupSide), Side: e.popupSide}
	case e.Kind == KindGroup:
		hb := e.highlightBox(ed.settings.HighlightPadding)
		p = api.Placement{Anchor: ed.viewport.ToScreen(api.Point{X: hb.CX(), Y: hb.Y}), Side: api.SideTop}
	default:
		p = api.Placement{
			Anchor: ed.viewport.ToScreen(api.Point{X: e.Box.CX(), Y: e.Box.CY() + e.TooltipOffset}),
			Side:   api.SideTop,
		}
	}
	p.Visible = ed.inContainer(p.Anchor)
	return p
}

func (ed *Editor) inContainer(p api.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= ed.width && p.Y <= ed.height
}

// reposition moves every popup and highlight to the current view
func (ed *Editor) reposition() {
	for _, e := range ed.elements {
		if e.highlight != nil {
			setBoxAttrs(e.highlight, e.highlightBox(ed.settings.HighlightPadding))
		}
		if e.popup != 0 {
			ed.popups.Reposition(e.popup, ed.placement(e))
		}
	}
}

// showPopup replaces the element's popup with one matching its current state
func (ed *Editor) showPopup(e *Element) {
	ed.hidePopup(e)
	e.popup = ed.popups.Create(e.popupSpec())
	ed.popups.Reposition(e.popup, ed.placement(e))
}

func (ed *Editor) hidePopup(e *Element) {
	if e.popup != 0 {
		ed.popups.Destroy(e.popup)
		e.popup = 0
	}
}

func (ed *Editor) updatePopup(e *Element) {
	if e.popup != 0 {
		ed.popups.Update(e.popup, e.popupSpec())
	}
}
