package editor

import (
	"errors"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

var (
	ErrInvalidTag = errors.New("tag must not be empty")
	ErrNoElement  = errors.New("no such element")
	ErrNotSetup   = errors.New("editor has not been laid out yet")
	ErrNotEditing = errors.New("element is not being edited")
)

// Host is the component embedding the editor. Callbacks are made synchronously
// on the goroutine driving the editor.
type Host interface {
	// TagsUpdated receives the sorted, de-duplicated tags after every change
	TagsUpdated(tags []string)
	HasHiddenElements(hidden bool)
	OnDirtyChanged(dirty bool)
	// OnValidChanged is false while a tag edit is open
	OnValidChanged(valid bool)
	OnZoom()
	TagHasStateRenderFunction(tag string) bool
	TagHasClickAction(tag string) bool
	EditTagStateRenderFunction(tag string)
	EditTagClickAction(tag string)
}

// NopHost ignores every callback. Embed it to implement only part of Host.
type NopHost struct{}

func (NopHost) TagsUpdated([]string)                  {}
func (NopHost) HasHiddenElements(bool)                {}
func (NopHost) OnDirtyChanged(bool)                   {}
func (NopHost) OnValidChanged(bool)                   {}
func (NopHost) OnZoom()                               {}
func (NopHost) TagHasStateRenderFunction(string) bool { return false }
func (NopHost) TagHasClickAction(string) bool         { return false }
func (NopHost) EditTagStateRenderFunction(string)     {}
func (NopHost) EditTagClickAction(string)             {}

// Measurer returns the bounds of a node in document space. A node that does not
// render measures as an empty box.
type Measurer interface {
	BBox(n *svgdoc.Node) (api.Box, error)
}

// Preparer is implemented by measurers that need the document before measuring.
type Preparer interface {
	Prepare(doc *svgdoc.Document) error
}

// Rasterizer finds the painted extent of a document, used when neither the view
// box nor measurement yields bounds.
type Rasterizer interface {
	ContentBounds(content string, viewport api.Box) (api.Box, error)
}

// Popups displays tooltips next to elements.
type Popups interface {
	Create(spec api.PopupSpec) api.PopupID
	Destroy(id api.PopupID)
	Reposition(id api.PopupID, placement api.Placement)
	Update(id api.PopupID, spec api.PopupSpec)
}

// View is the read-only projection elements use to place themselves on screen.
type View interface {
	Scale() float64
	Zoom() float64
	// ToScreen maps a document point to container pixels
	ToScreen(p api.Point) api.Point
}
