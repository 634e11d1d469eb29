package editor

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

// TagStore is the sorted set of tags in use.
type TagStore struct {
	tags []string
}

// Update recomputes the store from the elements
func (s *TagStore) Update(elements []*Element) {
	tags := lo.FilterMap(elements, func(e *Element, _ int) (string, bool) { return e.Tag, e.Tag != "" })
	s.tags = lo.Uniq(tags)
	slices.Sort(s.tags)
}

// Tags returns a copy of the tags
func (s *TagStore) Tags() []string {
	return slices.Clone(s.tags)
}

func (s *TagStore) Contains(tag string) bool {
	_, found := slices.BinarySearch(s.tags, tag)
	return found
}

// EditSession is an open tag edit on one element.
type EditSession struct {
	ID      uuid.UUID
	Element int
	// Tag is the element's tag when the edit began
	Tag string
}

func (ed *Editor) element(i int) (*Element, bool) {
	if i < 0 || i >= len(ed.elements) {
		return nil, false
	}
	return ed.elements[i], true
}

// PointerEnter highlights the element and shows its tooltip, or the add-tag popup
// on the side the pointer p (container pixels) came from. Legal from Idle.
func (ed *Editor) PointerEnter(i int, p api.Point) bool {
	e, ok := ed.element(i)
	if !ok || !e.enter() {
		return false
	}
	ed.highlight(e, true)
	if e.Tagged() {
		ed.updatePopup(e)
		return true
	}
	e.popupSide = PopupSide(e.ScreenBox(), p)
	ed.showPopup(e)
	return true
}

// PointerLeave undoes PointerEnter. Legal from Hovered and Pressed.
func (ed *Editor) PointerLeave(i int) bool {
	e, ok := ed.element(i)
	if !ok || !e.leave() {
		return false
	}
	ed.highlight(e, false)
	if e.Tagged() {
		ed.updatePopup(e)
	} else {
		ed.hidePopup(e)
	}
	return true
}

// PointerDown is legal from Hovered
func (ed *Editor) PointerDown(i int) bool {
	e, ok := ed.element(i)
	return ok && e.press()
}

// PointerUp is legal from Pressed
func (ed *Editor) PointerUp(i int) bool {
	e, ok := ed.element(i)
	return ok && e.release()
}

func (ed *Editor) highlight(e *Element, on bool) {
	target, class := e.Node, svgdoc.ClassHovered
	if e.Kind == KindGroup && e.highlight != nil {
		target, class = e.highlight, svgdoc.ClassActive
	}
	if on {
		target.AddClass(class)
	} else {
		target.RemoveClass(class)
	}
}

// BeginTagEdit opens the tag editor on element i. Any other open edit is
// cancelled first, running its onCancel. Legal from every state but Editing.
func (ed *Editor) BeginTagEdit(i int, onCancel func()) (*EditSession, bool) {
	e, ok := ed.element(i)
	if !ok || e.state == StateEditing {
		return nil, false
	}
	if ed.editing >= 0 {
		ed.CancelTagEdit(ed.editing)
	}
	hovered := e.state != StateIdle
	e.beginEdit()
	if hovered {
		ed.highlight(e, false)
	}
	e.onCancel = onCancel
	e.session = &EditSession{ID: uuid.New(), Element: i, Tag: e.Tag}
	ed.editing = i
	if e.popup == 0 {
		e.popupSide = api.SideTop
		ed.showPopup(e)
	} else {
		ed.updatePopup(e)
	}
	ed.host.OnValidChanged(false)
	log.Debugf("editing tag of element %d (session %s)", i, e.session.ID)
	return e.session, true
}

// CommitTagEdit closes the editor on element i and applies tag
func (ed *Editor) CommitTagEdit(i int, tag string) error {
	e, ok := ed.element(i)
	if !ok {
		return ErrNoElement
	}
	if e.state != StateEditing {
		return ErrNotEditing
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrInvalidTag
	}
	ed.closeEdit(e)
	if err := ed.SetTag(i, tag); err != nil {
		return err
	}
	ed.updatePopup(e)
	ed.host.OnValidChanged(true)
	return nil
}

// CancelTagEdit closes the editor on element i without changes
func (ed *Editor) CancelTagEdit(i int) bool {
	e, ok := ed.element(i)
	if !ok || e.state != StateEditing {
		return false
	}
	onCancel := e.onCancel
	ed.closeEdit(e)
	if onCancel != nil {
		onCancel()
	}
	if e.Tagged() {
		ed.updatePopup(e)
	} else {
		ed.hidePopup(e)
	}
	ed.host.OnValidChanged(true)
	return true
}

func (ed *Editor) closeEdit(e *Element) {
	e.endEdit()
	e.onCancel = nil
	e.session = nil
	if ed.editing == e.Index {
		ed.editing = -1
	}
}

// Editing returns the element being edited
func (ed *Editor) Editing() (*Element, bool) {
	return ed.element(ed.editing)
}

// SetTag tags element i, writing the tag to the document
func (ed *Editor) SetTag(i int, tag string) error {
	if !ed.ready {
		return ErrNotSetup
	}
	e, ok := ed.element(i)
	if !ok {
		return ErrNoElement
	}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrInvalidTag
	}
	if tag == e.Tag {
		return nil
	}
	ed.hidePopup(e)
	e.Tag = tag
	e.Node.SetAttr(svgdoc.TagAttr, tag)
	ed.doc.EnsureNamespace()
	ed.refreshActions(e)
	ed.showPopup(e)
	ed.tagsChanged()
	return nil
}

// ClearTag removes the tag of element i
func (ed *Editor) ClearTag(i int) error {
	if !ed.ready {
		return ErrNotSetup
	}
	e, ok := ed.element(i)
	if !ok {
		return ErrNoElement
	}
	if !e.Tagged() {
		return nil
	}
	ed.hidePopup(e)
	e.Tag = ""
	e.hasStateRender, e.hasClickAction = false, false
	e.Node.RemoveAttr(svgdoc.TagAttr)
	if e.state != StateIdle {
		ed.showPopup(e)
	}
	ed.tagsChanged()
	return nil
}

func (ed *Editor) tagsChanged() {
	ed.tags.Update(ed.elements)
	ed.host.TagsUpdated(ed.tags.Tags())
	ed.setDirty(true)
}

func (ed *Editor) setDirty(dirty bool) {
	if ed.dirty == dirty {
		return
	}
	ed.dirty = dirty
	ed.host.OnDirtyChanged(dirty)
}

// MarkClean records that the host has saved the content
func (ed *Editor) MarkClean() {
	ed.setDirty(false)
}

func (ed *Editor) Dirty() bool {
	return ed.dirty
}

// Tags returns the sorted tags in use
func (ed *Editor) Tags() []string {
	return ed.tags.Tags()
}

func (ed *Editor) refreshActions(e *Element) {
	e.hasStateRender = ed.host.TagHasStateRenderFunction(e.Tag)
	e.hasClickAction = ed.host.TagHasClickAction(e.Tag)
}

// RefreshTagActions asks the host again which tags have a state render function
// or click action, updating the tooltips
func (ed *Editor) RefreshTagActions() {
	for _, e := range ed.elements {
		if e.Tagged() {
			ed.refreshActions(e)
			ed.updatePopup(e)
		}
	}
}

// EditStateRenderFunction asks the host to edit the state render function of
// element i's tag
func (ed *Editor) EditStateRenderFunction(i int) error {
	e, ok := ed.element(i)
	if !ok {
		return ErrNoElement
	}
	if !e.Tagged() {
		return ErrInvalidTag
	}
	ed.host.EditTagStateRenderFunction(e.Tag)
	return nil
}

func (ed *Editor) EditClickAction(i int) error {
	e, ok := ed.element(i)
	if !ok {
		return ErrNoElement
	}
	if !e.Tagged() {
		return ErrInvalidTag
	}
	ed.host.EditTagClickAction(e.Tag)
	return nil
}

// ElementsWithTag returns the elements carrying tag
func (ed *Editor) ElementsWithTag(tag string) []*Element {
	return lo.Filter(ed.elements, func(e *Element, _ int) bool { return e.Tag == tag })
}

// FindByID returns the element whose node has the given id attribute
func (ed *Editor) FindByID(id string) (*Element, bool) {
	return lo.Find(ed.elements, func(e *Element) bool { return e.ID() == id })
}
