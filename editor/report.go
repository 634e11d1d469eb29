package editor

import (
	"fmt"
	"strings"

	"github.com/flanksource/symbols/api"
)

type ElementReport struct {
	Index         int     `json:"index" yaml:"index"`
	Name          string  `json:"name" yaml:"name"`
	ID            string  `json:"id,omitempty" yaml:"id,omitempty"`
	Kind          string  `json:"kind" yaml:"kind"`
	Box           api.Box `json:"box" yaml:"box"`
	Tag           string  `json:"tag,omitempty" yaml:"tag,omitempty"`
	Invisible     bool    `json:"invisible,omitempty" yaml:"invisible,omitempty"`
	Parent        int     `json:"parent" yaml:"parent"`
	Group         int     `json:"group" yaml:"group"`
	TooltipOffset float64 `json:"tooltipOffset,omitempty" yaml:"tooltipOffset,omitempty"`
	State         string  `json:"state" yaml:"state"`
}

// Report is a snapshot of the editor for inspection.
type Report struct {
	Box            api.Box         `json:"box" yaml:"box"`
	Visible        api.Box         `json:"visible" yaml:"visible"`
	Scale          float64         `json:"scale" yaml:"scale"`
	Zoom           float64         `json:"zoom" yaml:"zoom"`
	Tags           []string        `json:"tags" yaml:"tags"`
	HiddenElements bool            `json:"hiddenElements" yaml:"hiddenElements"`
	Dirty          bool            `json:"dirty" yaml:"dirty"`
	Elements       []ElementReport `json:"elements" yaml:"elements"`
	Groups         []OverlapGroup  `json:"groups" yaml:"groups"`
}

func (ed *Editor) Report() Report {
	r := Report{
		Box:            ed.viewport.Content(),
		Visible:        ed.viewport.Box(),
		Scale:          ed.viewport.Scale(),
		Zoom:           ed.viewport.Zoom(),
		Tags:           ed.tags.Tags(),
		HiddenElements: ed.hasHidden(),
		Dirty:          ed.dirty,
		Groups:         ed.Groups(),
	}
	for _, e := range ed.elements {
		r.Elements = append(r.Elements, ElementReport{
			Index:         e.Index,
			Name:          e.Node.Name,
			ID:            e.ID(),
			Kind:          e.Kind.String(),
			Box:           e.Box,
			Tag:           e.Tag,
			Invisible:     e.Invisible,
			Parent:        e.Parent,
			Group:         e.Group,
			TooltipOffset: e.TooltipOffset,
			State:         e.state.String(),
		})
	}
	return r
}

type reportNode struct {
	r     *Report
	index int
}

func (n reportNode) GetChildren() []api.TreeNode {
	var children []api.TreeNode
	for _, e := range n.r.Elements {
		if e.Parent == n.index {
			children = append(children, reportNode{r: n.r, index: e.Index})
		}
	}
	return children
}

func (n reportNode) Pretty() api.Text {
	e := n.r.Elements[n.index]
	line := api.Text{}.
		Append(fmt.Sprintf("%d ", e.Index), "faint").
		Append("<"+e.Name+">", "primary")
	if e.ID != "" {
		line = line.Append(" #"+e.ID, "info")
	}
	line = line.Append(fmt.Sprintf(" %s [%s]", e.Kind, e.Box), "muted")
	if e.Tag != "" {
		line = line.Append(" tag="+e.Tag, "bold", "success")
	}
	if e.Invisible {
		line = line.Append(" hidden", "warning")
	}
	if e.Group >= 0 {
		line = line.Append(fmt.Sprintf(" overlap#%d", e.Group), "warning")
	}
	return line
}

func (r Report) Pretty() api.Text {
	t := api.Text{}.
		Append("box ", "bold").Append(r.Box.String()).
		Append("  scale ", "bold").Append(fmt.Sprintf("%.3f", r.Scale)).
		Append("  zoom ", "bold").Append(fmt.Sprintf("%.2f", r.Zoom)).
		NewLine()
	if len(r.Tags) > 0 {
		t = t.Append("tags ", "bold").Append(strings.Join(r.Tags, ", "), "success").NewLine()
	}
	var roots []api.TreeNode
	for _, e := range r.Elements {
		if e.Parent < 0 || e.Parent >= len(r.Elements) {
			roots = append(roots, reportNode{r: &r, index: e.Index})
		}
	}
	t = t.Add(api.RenderTree(roots, nil))
	if len(r.Groups) > 0 {
		t = t.Append(fmt.Sprintf("%d overlap groups", len(r.Groups)), "bold").NewLine()
		for i, g := range r.Groups {
			t = t.Append(fmt.Sprintf("  #%d members %v anchor %d", i, g.Members, g.Anchor), "muted").NewLine()
		}
	}
	return t
}
