package svgdoc

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type writeOptions struct {
	// export drops editor-only nodes, classes and attributes
	export bool
	// mark adds an attribute to elements and forces their start tag to be rebuilt
	mark func(*Node) (Attr, bool)
}

var exportOptions = writeOptions{export: true}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func itoa(i int) string {
	return strconv.Itoa(i)
}

// exportAttrs removes editor markers. A class attribute is only rewritten when an
// editor class was actually removed, and dropped when nothing else remains. When
// the remaining classes are the ones the source had, the source spelling is kept.
func exportAttrs(attrs, orig []Attr) []Attr {
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name == InnerAttr {
			continue
		}
		if a.Name == "class" {
			classes := strings.Fields(a.Value)
			kept := lo.Reject(classes, func(c string, _ int) bool { return IsEditorClass(c) })
			if len(kept) != len(classes) {
				o, ok := lo.Find(orig, func(o Attr) bool { return o.Name == "class" })
				switch {
				case ok && slices.Equal(strings.Fields(o.Value), kept):
					a.Value = o.Value
				case len(kept) == 0:
					continue
				default:
					a.Value = strings.Join(kept, " ")
				}
			}
		}
		out = append(out, a)
	}
	return out
}

func startAttrs(n *Node, opts writeOptions) ([]Attr, bool) {
	attrs := n.Attrs
	if opts.export {
		attrs = exportAttrs(attrs, n.orig)
	}
	if opts.mark != nil {
		if a, ok := opts.mark(n); ok {
			return append(slices.Clone(attrs), a), true
		}
	}
	return attrs, false
}

// writeStartTag writes the original bytes when the tag would come out unchanged
func writeStartTag(b *bytes.Buffer, n *Node, closed bool, opts writeOptions) {
	attrs, marked := startAttrs(n, opts)
	if n.parsed && !marked && closed == n.closed && slices.Equal(attrs, n.orig) {
		b.Write(n.raw)
		return
	}
	writeTag(b, n.Name, attrs, closed)
}

func writeTag(b *bytes.Buffer, name string, attrs []Attr, closed bool) {
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}
	if closed {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
}

func writeNode(b *bytes.Buffer, n *Node, opts writeOptions) {
	if !n.IsElement() {
		switch {
		case n.parsed:
			b.Write(n.raw)
		case n.Kind == TextNode:
			b.WriteString(textEscaper.Replace(n.Text))
		case n.Kind == CommentNode:
			b.WriteString("<!--" + n.Text + "-->")
		}
		return
	}
	if opts.export && n.IsInner() {
		return
	}

	children := n.Children
	if opts.export {
		children = lo.Reject(children, func(c *Node, _ int) bool { return c.IsElement() && c.IsInner() })
	}
	closed := len(children) == 0 && (n.closed || !n.parsed)

	writeStartTag(b, n, closed, opts)
	if closed {
		return
	}

	for _, c := range children {
		writeNode(b, c, opts)
	}
	if n.parsed && n.end != nil {
		b.Write(n.end)
	} else {
		b.WriteString("</" + n.Name + ">")
	}
}
