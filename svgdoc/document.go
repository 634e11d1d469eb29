package svgdoc

import (
	"bytes"

	"github.com/flanksource/symbols/api"
)

// Document is a parsed symbol. The root element's start tag is the header; its
// children are the editable inner content.
type Document struct {
	Root *Node
	// Prolog holds what preceded the root element; it is not part of the output
	Prolog []*Node
	// Synthetic is set when the input had no <svg> root
	Synthetic bool
}

// Header returns the opening tag of the root element
func (d *Document) Header() string {
	var b bytes.Buffer
	writeStartTag(&b, d.Root, false, exportOptions)
	return b.String()
}

// Inner returns the exportable inner markup of the root element
func (d *Document) Inner() string {
	var b bytes.Buffer
	for _, c := range d.Root.Children {
		writeNode(&b, c, exportOptions)
	}
	return b.String()
}

// String returns the exportable document: header, inner markup and closing tag
func (d *Document) String() string {
	return d.Header() + d.Inner() + "</" + d.Root.Name + ">"
}

// ViewBox returns the explicit, valid viewBox of the root element
func (d *Document) ViewBox() (api.Box, bool) {
	if d.Synthetic {
		return api.Box{}, false
	}
	v, ok := d.Root.Attr("viewBox")
	if !ok {
		return api.Box{}, false
	}
	nums, err := ParseNumbers(v)
	if err != nil || len(nums) != 4 {
		return api.Box{}, false
	}
	box := api.NewBox(nums[0], nums[1], nums[2], nums[3])
	return box, box.Valid()
}

// Size returns the root width and height attributes, when both are plain lengths
func (d *Document) Size() (float64, float64, bool) {
	w, wok := ParseLength(d.Root.AttrOr("width", ""))
	h, hok := ParseLength(d.Root.AttrOr("height", ""))
	return w, h, wok && hok && w > 0 && h > 0
}

// EnsureNamespace declares the editor namespace on the root element, returning
// true when the header changed
func (d *Document) EnsureNamespace() bool {
	if _, ok := d.Root.Attr(NamespaceAttr); ok {
		return false
	}
	d.Root.SetAttr(NamespaceAttr, Namespace)
	return true
}

// Elements returns every non-inner element below the root in document order
func (d *Document) Elements() []*Node {
	var out []*Node
	for _, c := range d.Root.Children {
		c.Walk(func(n *Node) bool {
			if !n.IsElement() || n.IsInner() {
				return false
			}
			out = append(out, n)
			return true
		})
	}
	return out
}

// Marked returns the whole document, editor nodes included, with every exportable
// element carrying attr=<index into the returned slice>.
func (d *Document) Marked(attr string) (string, []*Node) {
	var nodes []*Node
	opts := writeOptions{
		mark: func(n *Node) (Attr, bool) {
			if n.IsInner() {
				return Attr{}, false
			}
			nodes = append(nodes, n)
			return Attr{Name: attr, Value: itoa(len(nodes) - 1)}, true
		},
	}
	var b bytes.Buffer
	writeStartTag(&b, d.Root, false, opts)
	for _, c := range d.Root.Children {
		writeNode(&b, c, opts)
	}
	b.WriteString("</" + d.Root.Name + ">")
	return b.String(), nodes
}
