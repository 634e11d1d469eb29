package svgdoc

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Presentation resolves a presentation property from the inline style attribute,
// falling back to the attribute of the same name.
func (n *Node) Presentation(property string) (string, bool) {
	if style, ok := n.Attr("style"); ok && strings.Contains(style, property) {
		// the last declaration only gets a value when terminated
		decls, err := parser.ParseDeclarations(strings.TrimRight(strings.TrimSpace(style), ";") + ";")
		if err == nil {
			for i := len(decls) - 1; i >= 0; i-- {
				if decls[i].Property == property {
					return strings.TrimSpace(decls[i].Value), true
				}
			}
		}
	}
	if v, ok := n.Attr(property); ok {
		return strings.TrimSpace(v), true
	}
	return "", false
}

func (n *Node) displayNone() bool {
	v, _ := n.Presentation("display")
	return v == "none"
}

// Hidden reports whether the node itself is hidden by display or visibility
func (n *Node) Hidden() bool {
	if n.displayNone() {
		return true
	}
	v, _ := n.Presentation("visibility")
	return v == "hidden" || v == "collapse"
}

// Revealed reports whether the editor forces this hidden node to show
func (n *Node) Revealed() bool {
	return n.HasClass(ClassRevealed)
}

// SetRevealed toggles the editor reveal marker; it is stripped on export so the
// document keeps its own visibility.
func (n *Node) SetRevealed(revealed bool) {
	if revealed {
		n.AddClass(ClassRevealed)
	} else {
		n.RemoveClass(ClassRevealed)
	}
}

// Rendered reports whether the node produces layout: neither it nor any ancestor
// has display:none unless revealed. Invisible nodes still take layout.
func (n *Node) Rendered() bool {
	for p := n; p != nil; p = p.Parent {
		if p.IsElement() && p.displayNone() && !p.Revealed() {
			return false
		}
	}
	return true
}

// EditorStylesheet returns the rules the editor injects into a document it edits.
func EditorStylesheet(glowFilter string) string {
	sheet := css.NewStylesheet()
	add := func(selector string, decls ...string) {
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = selector
		rule.Selectors = []string{selector}
		for i := 0; i+1 < len(decls); i += 2 {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property:  decls[i],
				Value:     decls[i+1],
				Important: strings.HasPrefix(decls[i], "display") || strings.HasPrefix(decls[i], "visibility"),
			})
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	add("."+ClassElement, "cursor", "pointer", "transition", "0.2s filter ease-in-out")
	add("."+ClassElement+"."+ClassHovered, "filter", "url(#"+glowFilter+")")
	add("."+ClassRevealed, "display", "inline", "visibility", "visible", "opacity", "0.5")
	add("."+ClassHighlight, "fill", "none", "stroke", "#305680", "stroke-dasharray", "4 2",
		"opacity", "0", "transition", "opacity 0.2s ease-in-out", "pointer-events", "none")
	add("."+ClassHighlight+"."+ClassActive, "opacity", "1")
	return sheet.String()
}
