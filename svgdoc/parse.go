package svgdoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/flanksource/commons/logger"
)

var ErrMalformed = errors.New("malformed svg")

var log = logger.GetLogger("svgdoc")

// Parse reads an SVG document. Content without an <svg> root element is wrapped in
// a synthetic root rather than rejected; only XML syntax errors are returned.
func Parse(content string) (*Document, error) {
	nodes, err := tokenize([]byte(content))
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for i, n := range nodes {
		if n.IsElement() && n.LocalName() == "svg" {
			doc.Root = n
			doc.Prolog = nodes[:i]
			return doc, nil
		}
	}

	log.Warnf("no <svg> root element found, wrapping %d top level nodes", len(nodes))
	doc.Synthetic = true
	doc.Root = NewElement("svg", Attr{Name: "xmlns", Value: SVGNamespace})
	for _, n := range nodes {
		if n.Kind == OtherNode {
			doc.Prolog = append(doc.Prolog, n)
			continue
		}
		doc.Root.AppendChild(n)
	}
	return doc, nil
}

// ParseFragment parses markup into detached nodes
func ParseFragment(markup string) ([]*Node, error) {
	return tokenize([]byte(markup))
}

// tokenize builds the node tree from raw tokens, slicing every token's source bytes
// out of src using the decoder's input offset.
func tokenize(src []byte) ([]*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	top := &Node{Kind: ElementNode}
	cur := top
	var prev int64
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		off := dec.InputOffset()
		raw := src[prev:off]
		prev = off

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Kind: ElementNode, Name: qualified(t.Name), raw: raw, parsed: true}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qualified(a.Name), Value: a.Value})
			}
			n.orig = slices.Clone(n.Attrs)
			cur.AppendChild(n)
			cur = n
		case xml.EndElement:
			if cur == top {
				return nil, fmt.Errorf("%w: unexpected </%s> at offset %d", ErrMalformed, qualified(t.Name), off)
			}
			if name := qualified(t.Name); name != cur.Name {
				return nil, fmt.Errorf("%w: </%s> closes <%s> at offset %d", ErrMalformed, name, cur.Name, off)
			}
			if len(raw) == 0 {
				// the decoder reports the second half of <x/> without consuming input
				cur.closed = true
			} else {
				cur.end = raw
			}
			cur = cur.Parent
		case xml.CharData:
			cur.AppendChild(&Node{Kind: TextNode, Text: string(t), raw: raw, parsed: true})
		case xml.Comment:
			cur.AppendChild(&Node{Kind: CommentNode, Text: string(t), raw: raw, parsed: true})
		default:
			cur.AppendChild(&Node{Kind: OtherNode, raw: raw, parsed: true})
		}
	}
	if cur != top {
		return nil, fmt.Errorf("%w: <%s> is not closed", ErrMalformed, cur.Name)
	}

	nodes := top.Children
	for _, n := range nodes {
		n.Parent = nil
	}
	return nodes, nil
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
