// Package popup provides an in-memory popup host for headless editing sessions.
package popup

import (
	"fmt"
	"sort"

	"github.com/flanksource/symbols/api"
)

// Popup is a popup as last created, updated and positioned.
type Popup struct {
	ID        api.PopupID   `json:"id" yaml:"id"`
	Spec      api.PopupSpec `json:"spec" yaml:"spec"`
	Placement api.Placement `json:"placement" yaml:"placement"`
}

type Op string

const (
	OpCreate     Op = "create"
	OpDestroy    Op = "destroy"
	OpReposition Op = "reposition"
	OpUpdate     Op = "update"
)

// Event is one call made on the board
type Event struct {
	Op Op
	ID api.PopupID
}

// Board records popups instead of displaying them. It is not safe for concurrent use.
type Board struct {
	next   api.PopupID
	popups map[api.PopupID]*Popup
	// Events holds every call in order
	Events []Event
}

func NewBoard() *Board {
	return &Board{popups: map[api.PopupID]*Popup{}}
}

func (b *Board) record(op Op, id api.PopupID) {
	b.Events = append(b.Events, Event{Op: op, ID: id})
}

func (b *Board) Create(spec api.PopupSpec) api.PopupID {
	if b.popups == nil {
		b.popups = map[api.PopupID]*Popup{}
	}
	b.next++
	b.popups[b.next] = &Popup{ID: b.next, Spec: spec}
	b.record(OpCreate, b.next)
	return b.next
}

// Destroy removes a popup; unknown ids are ignored
func (b *Board) Destroy(id api.PopupID) {
	if _, ok := b.popups[id]; !ok {
		return
	}
	delete(b.popups, id)
	b.record(OpDestroy, id)
}

func (b *Board) Reposition(id api.PopupID, placement api.Placement) {
	if p, ok := b.popups[id]; ok {
		p.Placement = placement
		b.record(OpReposition, id)
	}
}

func (b *Board) Update(id api.PopupID, spec api.PopupSpec) {
	if p, ok := b.popups[id]; ok {
		p.Spec = spec
		b.record(OpUpdate, id)
	}
}

func (b *Board) Get(id api.PopupID) (Popup, bool) {
	p, ok := b.popups[id]
	if !ok {
		return Popup{}, false
	}
	return *p, true
}

func (b *Board) Len() int {
	return len(b.popups)
}

// Popups returns the live popups in creation order
func (b *Board) Popups() []Popup {
	out := make([]Popup, 0, len(b.popups))
	for _, p := range b.popups {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ForElement returns the live popups attached to an element
func (b *Board) ForElement(element int) []Popup {
	var out []Popup
	for _, p := range b.Popups() {
		if p.Spec.Element == element {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) Pretty() api.Text {
	t := api.Text{}
	for _, p := range b.Popups() {
		style := "muted"
		if p.Placement.Visible {
			style = "info"
		}
		label := string(p.Spec.Kind)
		if p.Spec.Tag != "" {
			label = fmt.Sprintf("%s %s", p.Spec.Kind, p.Spec.Tag)
		}
		t = t.Append(fmt.Sprintf("#%d ", p.ID), "faint").
			Append(label, "bold", style).
			Append(fmt.Sprintf(" element %d %s of (%.1f, %.1f)", p.Spec.Element, p.Placement.Side, p.Placement.Anchor.X, p.Placement.Anchor.Y)).
			NewLine()
	}
	return t
}
