// Package editor is the headless core of the symbol editor: it loads a symbol,
// lays it out in a zoomable view, lets elements be tagged and writes the tagged
// symbol back out.
//
// An Editor is driven from a single goroutine. Host callbacks, popup calls and
// measurements happen synchronously on that goroutine.
package editor

import (
	"fmt"
	"time"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/measure"
	"github.com/flanksource/symbols/popup"
	"github.com/flanksource/symbols/svgdoc"
)

var log = logger.GetLogger("symbols")

const glowFilter = "tb-glow"

// editorDefs is injected into every loaded document and stripped on export
const editorDefs = `<defs tb:inner="true"><filter id="` + glowFilter + `" x="-50%%" y="-50%%" width="200%%" height="200%%">` +
	`<feGaussianBlur in="SourceAlpha" stdDeviation="2" result="blur"/>` +
	`<feFlood flood-color="#305680" flood-opacity="0.8"/><feComposite in2="blur" operator="in"/>` +
	`<feMerge><feMergeNode/><feMergeNode in="SourceGraphic"/></feMerge></filter>` +
	`<style>%s</style></defs>`

type Editor struct {
	settings Settings
	host     Host
	popups   Popups
	measurer Measurer
	raster   Rasterizer

	doc      *svgdoc.Document
	viewport *Viewport
	elements []*Element
	groups   []OverlapGroup
	tags     TagStore

	width, height float64
	ready         bool
	dirty         bool
	showHidden    bool
	editing       int
}

type Option func(*Editor)

func WithSettings(s Settings) Option { return func(ed *Editor) { ed.settings = s } }

func WithHost(h Host) Option { return func(ed *Editor) { ed.host = h } }

func WithPopups(p Popups) Option { return func(ed *Editor) { ed.popups = p } }

func WithMeasurer(m Measurer) Option { return func(ed *Editor) { ed.measurer = m } }

func WithRasterizer(r Rasterizer) Option { return func(ed *Editor) { ed.raster = r } }

// New creates an editor. Without options it measures analytically, keeps popups
// on an in-memory board and ignores host callbacks.
func New(opts ...Option) *Editor {
	ed := &Editor{
		settings: DefaultSettings(),
		host:     NopHost{},
		popups:   popup.NewBoard(),
		measurer: measure.NewGeometry(),
		raster:   measure.NewRaster(),
		editing:  -1,
	}
	for _, opt := range opts {
		opt(ed)
	}
	ed.viewport = NewViewport(ed.settings)
	ed.viewport.onChange = ed.reposition
	ed.viewport.onZoom = func() { ed.host.OnZoom() }
	return ed
}

func (ed *Editor) Settings() Settings { return ed.settings }

func (ed *Editor) Viewport() *Viewport { return ed.viewport }

func (ed *Editor) Document() *svgdoc.Document { return ed.doc }

func (ed *Editor) Popups() Popups { return ed.popups }

// Ready reports whether the deferred setup has run
func (ed *Editor) Ready() bool { return ed.ready }

// SetContent replaces the edited symbol. Elements are created on the first
// Resize to a nonzero size, or immediately when the editor already has one.
func (ed *Editor) SetContent(content string) error {
	doc, err := svgdoc.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to load symbol: %w", err)
	}

	defs, err := svgdoc.ParseFragment(fmt.Sprintf(editorDefs, svgdoc.EditorStylesheet(glowFilter)))
	if err != nil {
		return fmt.Errorf("failed to build editor stylesheet: %w", err)
	}
	for i, n := range defs {
		doc.Root.InsertChild(i, n)
	}

	if p, ok := ed.measurer.(Preparer); ok {
		if err := p.Prepare(doc); err != nil {
			return fmt.Errorf("failed to prepare measurer: %w", err)
		}
	}

	ed.teardown()
	ed.doc = doc
	ed.viewport.Reset(ed.contentBox())
	if ed.width > 0 && ed.height > 0 {
		ed.Resize(ed.width, ed.height)
	}
	return nil
}

// contentBox is the explicit view box, else the measured bounds of the drawing,
// else its painted bounds, else the default viewport.
func (ed *Editor) contentBox() api.Box {
	if box, ok := ed.doc.ViewBox(); ok {
		return box
	}
	if box, err := ed.measurer.BBox(ed.doc.Root); err != nil {
		log.Debugf("failed to measure symbol: %v", err)
	} else if box.Valid() {
		log.Debugf("no view box, using measured bounds %s", box)
		return box
	}

	viewport := measure.DefaultViewport
	if w, h, ok := ed.doc.Size(); ok {
		viewport = api.NewBox(0, 0, w, h)
	}
	if ed.raster != nil {
		box, err := ed.raster.ContentBounds(ed.doc.String(), viewport)
		if err != nil {
			log.Debugf("failed to rasterize symbol: %v", err)
		} else if box.Valid() {
			log.Warnf("no view box or measurable content, using painted bounds %s", box)
			return box
		}
	}
	log.Warnf("symbol has no bounds, using %s", viewport)
	return viewport
}

// Content returns the symbol with its tags and without any editor artifacts
func (ed *Editor) Content() string {
	if ed.doc == nil {
		return ""
	}
	var revealed []*Element
	for _, e := range ed.elements {
		if e.Node.Revealed() {
			e.Node.SetRevealed(false)
			revealed = append(revealed, e)
		}
	}
	out := ed.doc.String()
	for _, e := range revealed {
		e.Node.SetRevealed(true)
	}
	return out
}

// Destroy releases popups and elements; Content stays available
func (ed *Editor) Destroy() {
	ed.teardown()
}

func (ed *Editor) teardown() {
	ed.viewport.stop()
	for _, e := range ed.elements {
		ed.hidePopup(e)
		if e.highlight != nil && e.highlight.Parent != nil {
			e.highlight.Parent.RemoveChild(e.highlight)
		}
	}
	ed.elements = nil
	ed.groups = nil
	ed.tags = TagStore{}
	ed.editing = -1
	ed.ready = false
}

// Resize fits the content box into a w×h container. The first nonzero size
// after SetContent builds the elements.
func (ed *Editor) Resize(w, h float64) {
	ed.width, ed.height = w, h
	if ed.doc == nil || w <= 0 || h <= 0 {
		return
	}
	box := ed.viewport.Content()
	scale := h / box.Height
	if box.Width/box.Height > w/h {
		scale = w / box.Width
	}
	changed := ed.viewport.setScale(scale)
	if !ed.ready {
		ed.setup()
		return
	}
	if changed {
		ed.reposition()
	}
}

func (ed *Editor) setup() {
	start := time.Now()
	ed.buildRegistry()
	ed.groupOverlaps()
	ed.wire()
	ed.ready = true
	ed.reposition()
	ed.host.HasHiddenElements(ed.hasHidden())
	ed.tags.Update(ed.elements)
	ed.host.TagsUpdated(ed.tags.Tags())
	log.Debugf("setup of %d elements took %s", len(ed.elements), time.Since(start))
}

// Element returns the element at index i
func (ed *Editor) Element(i int) (*Element, error) {
	if !ed.ready {
		return nil, ErrNotSetup
	}
	e, ok := ed.element(i)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoElement, i)
	}
	return e, nil
}

func (ed *Editor) Elements() []*Element {
	return append([]*Element(nil), ed.elements...)
}

func (ed *Editor) Groups() []OverlapGroup {
	return append([]OverlapGroup(nil), ed.groups...)
}

func (ed *Editor) ZoomIn() bool { return ed.viewport.ZoomIn() }

func (ed *Editor) ZoomOut() bool { return ed.viewport.ZoomOut() }

func (ed *Editor) Tick(dt time.Duration) bool { return ed.viewport.Tick(dt) }

func (ed *Editor) Pan(dx, dy float64) { ed.viewport.Pan(dx, dy) }

func (ed *Editor) WheelZoom(level float64, focus api.Point) bool {
	return ed.viewport.WheelZoom(level, focus)
}
