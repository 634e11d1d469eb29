package svgdoc

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	SVGNamespace = "http://www.w3.org/2000/svg"

	// Namespace holds the editor's custom attributes
	Namespace     = "https://thingsboard.io/svg"
	NamespaceAttr = "xmlns:tb"
	TagAttr       = "tb:tag"
	InnerAttr     = "tb:inner"
)

// Editor-only classes, stripped on export.
const (
	ClassElement   = "tb-element"
	ClassHovered   = "tb-hovered"
	ClassRevealed  = "tb-revealed"
	ClassHighlight = "tb-highlight"
	ClassActive    = "tb-active"
)

var editorClasses = []string{ClassElement, ClassHovered, ClassRevealed, ClassHighlight, ClassActive}

func IsEditorClass(class string) bool {
	return slices.Contains(editorClasses, class)
}

type Kind int

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
	// OtherNode holds processing instructions and directives
	OtherNode
)

type Attr struct {
	Name  string
	Value string
}

// Node is one node of a parsed document. Parsed nodes remember the bytes they were
// read from so that untouched markup is written back verbatim.
type Node struct {
	Kind     Kind
	Name     string
	Attrs    []Attr
	Text     string
	Parent   *Node
	Children []*Node
	// Inner marks editor-only nodes, never exported
	Inner bool

	parsed bool
	closed bool
	raw    []byte
	end    []byte
	orig   []Attr
}

// NewElement creates an element that did not come from the source document.
func NewElement(name string, attrs ...Attr) *Node {
	return &Node{Kind: ElementNode, Name: name, Attrs: attrs}
}

func (n *Node) IsElement() bool {
	return n.Kind == ElementNode
}

// LocalName strips any namespace prefix
func (n *Node) LocalName() string {
	if i := strings.IndexByte(n.Name, ':'); i >= 0 {
		return n.Name[i+1:]
	}
	return n.Name
}

func (n *Node) IsInner() bool {
	if n.Inner {
		return true
	}
	_, ok := n.Attr(InnerAttr)
	return ok
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or def when missing
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

func (n *Node) RemoveAttr(name string) bool {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs = slices.Delete(n.Attrs, i, i+1)
			return true
		}
	}
	return false
}

func (n *Node) Classes() []string {
	return strings.Fields(n.AttrOr("class", ""))
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes(), class)
}

func (n *Node) AddClass(class string) {
	classes := n.Classes()
	if slices.Contains(classes, class) {
		return
	}
	n.SetAttr("class", strings.Join(append(classes, class), " "))
}

func (n *Node) RemoveClass(class string) {
	classes := n.Classes()
	if !slices.Contains(classes, class) {
		return
	}
	classes = lo.Without(classes, class)
	if len(classes) == 0 {
		n.RemoveAttr("class")
		return
	}
	n.SetAttr("class", strings.Join(classes, " "))
}

// Elements returns the element children
func (n *Node) Elements() []*Node {
	return lo.Filter(n.Children, func(c *Node, _ int) bool { return c.IsElement() })
}

func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) InsertChild(i int, c *Node) {
	c.Parent = n
	i = max(0, min(i, len(n.Children)))
	n.Children = slices.Insert(n.Children, i, c)
}

func (n *Node) RemoveChild(c *Node) bool {
	i := slices.Index(n.Children, c)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	c.Parent = nil
	return true
}

// Walk visits the node and its descendants in document order. Returning false
// from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates all descendant character data
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextNode {
			sb.WriteString(c.Text)
		}
		return true
	})
	return sb.String()
}

// Ancestors returns the parent chain, nearest first
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}
