package editor

import (
	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindText:
		return "text"
	}
	return "leaf"
}

// State is the pointer and editing state of an element.
type State int

const (
	StateIdle State = iota
	StateHovered
	StatePressed
	StateEditing
)

func (s State) String() string {
	return [...]string{"idle", "hovered", "pressed", "editing"}[s]
}

// Element is a measurable node of the document that can carry a tag.
type Element struct {
	Index int
	Node  *svgdoc.Node
	Kind  Kind
	// Box is in document units
	Box api.Box
	Tag string
	// Invisible is the node's own hidden state when it was loaded
	Invisible bool
	// OrigVisible is restored before export and never changes
	OrigVisible bool
	// TooltipOffset shifts the tag tooltip vertically, in document units
	TooltipOffset float64
	// Parent is the index of the enclosing group element, -1 at the top
	Parent   int
	Children []int
	// Group is the index of the overlap group, -1 when the tooltip stands alone
	Group int

	view      View
	state     State
	popup     api.PopupID
	popupSide api.Side
	highlight *svgdoc.Node
	onCancel  func()
	session   *EditSession

	hasStateRender bool
	hasClickAction bool
}

func (e *Element) State() State { return e.state }

func (e *Element) Tagged() bool { return e.Tag != "" }

func (e *Element) Popup() api.PopupID { return e.popup }

func (e *Element) Session() *EditSession { return e.session }

// ID returns the node's id attribute
func (e *Element) ID() string {
	return e.Node.AttrOr("id", "")
}

// enter: Idle -> Hovered
func (e *Element) enter() bool {
	if e.state != StateIdle {
		return false
	}
	e.state = StateHovered
	return true
}

// leave: Hovered, Pressed -> Idle
func (e *Element) leave() bool {
	if e.state != StateHovered && e.state != StatePressed {
		return false
	}
	e.state = StateIdle
	return true
}

// press: Hovered -> Pressed
func (e *Element) press() bool {
	if e.state != StateHovered {
		return false
	}
	e.state = StatePressed
	return true
}

// release: Pressed -> Hovered
func (e *Element) release() bool {
	if e.state != StatePressed {
		return false
	}
	e.state = StateHovered
	return true
}

// beginEdit: Idle, Hovered, Pressed -> Editing
func (e *Element) beginEdit() bool {
	if e.state == StateEditing {
		return false
	}
	e.state = StateEditing
	return true
}

// endEdit: Editing -> Idle
func (e *Element) endEdit() bool {
	if e.state != StateEditing {
		return false
	}
	e.state = StateIdle
	return true
}

// ScreenBox is the element's box in container pixels
func (e *Element) ScreenBox() api.Box {
	s := e.view.Zoom() * e.view.Scale()
	o := e.view.ToScreen(api.Point{X: e.Box.X, Y: e.Box.Y})
	return api.NewBox(o.X, o.Y, e.Box.Width*s, e.Box.Height*s)
}

// highlightBox is the group highlight rectangle in document units
func (e *Element) highlightBox(padding float64) api.Box {
	return e.Box.Pad(padding / e.view.Scale())
}

func (e *Element) popupSpec() api.PopupSpec {
	spec := api.PopupSpec{
		Kind:    api.PopupAddTag,
		Element: e.Index,
		Active:  e.state == StateHovered || e.state == StatePressed,
		Editing: e.state == StateEditing,
	}
	if e.Tagged() {
		spec.Kind = api.PopupTag
		spec.Tag = e.Tag
		spec.HasStateRender = e.hasStateRender
		spec.HasClickAction = e.hasClickAction
	}
	return spec
}
