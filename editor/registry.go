package editor

import (
	"strconv"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

var bboxElements = map[string]Kind{
	"g": KindGroup, "a": KindGroup, "switch": KindGroup, "svg": KindGroup,
	"text": KindText,
	"rect": KindLeaf, "circle": KindLeaf, "ellipse": KindLeaf, "line": KindLeaf,
	"polyline": KindLeaf, "polygon": KindLeaf, "path": KindLeaf, "image": KindLeaf,
	"use": KindLeaf, "foreignObject": KindLeaf,
}

// buildRegistry walks the document creating an element for every measurable
// node with a visible footprint.
func (ed *Editor) buildRegistry() {
	ed.elements = nil
	for _, c := range ed.doc.Root.Elements() {
		ed.register(c, -1)
	}
	log.Debugf("registered %d elements", len(ed.elements))
}

func (ed *Editor) register(n *svgdoc.Node, parent int) {
	if n.IsInner() {
		return
	}
	kind, ok := bboxElements[n.LocalName()]
	if !ok {
		return
	}

	invisible := n.Hidden()
	box, err := ed.measurer.BBox(n)
	if err != nil {
		log.Debugf("excluding <%s%s>: %v", n.Name, idSuffix(n), err)
		return
	}
	revealed := false
	if invisible && box.Empty() && !n.Revealed() {
		// measure hidden nodes as if shown; the subtree stays revealed while it is walked
		n.SetRevealed(true)
		revealed = true
		box, err = ed.measurer.BBox(n)
		if err != nil {
			log.Debugf("excluding hidden <%s%s>: %v", n.Name, idSuffix(n), err)
			n.SetRevealed(false)
			return
		}
	}
	if revealed {
		defer n.SetRevealed(false)
	}
	if box.Empty() {
		log.Debugf("excluding <%s%s> with an empty box", n.Name, idSuffix(n))
		return
	}

	e := &Element{
		Index:       len(ed.elements),
		Node:        n,
		Kind:        kind,
		Box:         box,
		Invisible:   invisible,
		OrigVisible: !invisible,
		Parent:      parent,
		Group:       -1,
		view:        ed.viewport,
	}
	ed.elements = append(ed.elements, e)
	if parent >= 0 {
		ed.elements[parent].Children = append(ed.elements[parent].Children, e.Index)
	}
	// text sub-spans belong to their text element
	if kind == KindGroup {
		for _, c := range n.Elements() {
			ed.register(c, e.Index)
		}
	}
}

func idSuffix(n *svgdoc.Node) string {
	if id, ok := n.Attr("id"); ok {
		return " id=" + strconv.Quote(id)
	}
	return ""
}

// wire attaches editor state to the registered elements: the element class,
// group highlights, tags read from the document and their tooltips.
func (ed *Editor) wire() {
	for _, e := range ed.elements {
		e.Node.AddClass(svgdoc.ClassElement)
		if e.Kind == KindGroup {
			e.highlight = svgdoc.NewElement("rect",
				svgdoc.Attr{Name: svgdoc.InnerAttr, Value: "true"},
				svgdoc.Attr{Name: "class", Value: svgdoc.ClassHighlight},
			)
			setBoxAttrs(e.highlight, e.highlightBox(ed.settings.HighlightPadding))
			ed.doc.Root.AppendChild(e.highlight)
		}
		if tag, ok := e.Node.Attr(svgdoc.TagAttr); ok && tag != "" {
			e.Tag = tag
			ed.refreshActions(e)
			ed.showPopup(e)
		}
		if e.Invisible && ed.showHidden {
			e.Node.SetRevealed(true)
		}
	}
}

func setBoxAttrs(n *svgdoc.Node, b api.Box) {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	n.SetAttr("x", f(b.X))
	n.SetAttr("y", f(b.Y))
	n.SetAttr("width", f(b.Width))
	n.SetAttr("height", f(b.Height))
}

// ShowInvisible reveals hidden elements for editing; the document keeps its own
// visibility on export
func (ed *Editor) ShowInvisible() {
	ed.showHidden = true
	ed.applyReveal()
}

func (ed *Editor) HideInvisible() {
	ed.showHidden = false
	ed.applyReveal()
}

func (ed *Editor) InvisibleShown() bool {
	return ed.showHidden
}

func (ed *Editor) applyReveal() {
	for _, e := range ed.elements {
		if e.Invisible {
			e.Node.SetRevealed(ed.showHidden)
		}
	}
	ed.reposition()
}

func (ed *Editor) hasHidden() bool {
	for _, e := range ed.elements {
		if e.Invisible {
			return true
		}
	}
	return false
}
