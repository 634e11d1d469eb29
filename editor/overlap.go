package editor

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// OverlapGroup is a set of elements whose tag tooltips would cover each other.
type OverlapGroup struct {
	Members []int `json:"members" yaml:"members"`
	// Offsets holds each member's TooltipOffset, in document units
	Offsets []float64 `json:"offsets" yaml:"offsets"`
	// Anchor is the text member the ladder is centered on, -1 if none
	Anchor int `json:"anchor" yaml:"anchor"`
	// CenterY is the mean vertical center of the members
	CenterY float64 `json:"centerY" yaml:"centerY"`
}

// overlaps reports whether the tooltips of a and b, centered on the elements,
// would intersect at the current scale
func (ed *Editor) overlaps(a, b *Element) bool {
	s := ed.viewport.Scale()
	return math.Abs(a.Box.CX()-b.Box.CX())*s < ed.settings.TooltipWidth &&
		math.Abs(a.Box.CY()-b.Box.CY())*s < ed.settings.TooltipHeight
}

// groupOverlaps collects overlapping non-group elements. Each pair joins the
// group one of them already belongs to; two elements already in different
// groups are left apart.
func (ed *Editor) groupOverlaps() {
	var groups [][]int
	member := map[int]int{}
	candidates := lo.Filter(ed.elements, func(e *Element, _ int) bool { return e.Kind != KindGroup })

	for x := 0; x < len(candidates); x++ {
		for y := x + 1; y < len(candidates); y++ {
			a, b := candidates[x], candidates[y]
			if !ed.overlaps(a, b) {
				continue
			}
			ga, inA := member[a.Index]
			gb, inB := member[b.Index]
			switch {
			case !inA && !inB:
				member[a.Index], member[b.Index] = len(groups), len(groups)
				groups = append(groups, []int{a.Index, b.Index})
			case inA && !inB:
				member[b.Index] = ga
				groups[ga] = append(groups[ga], b.Index)
			case !inA && inB:
				member[a.Index] = gb
				groups[gb] = append(groups[gb], a.Index)
			}
		}
	}

	ed.groups = make([]OverlapGroup, 0, len(groups))
	for gi, members := range groups {
		g := ed.ladder(members)
		for i, m := range g.Members {
			ed.elements[m].Group = gi
			ed.elements[m].TooltipOffset = g.Offsets[i]
		}
		ed.groups = append(ed.groups, g)
	}
	log.Debugf("found %d overlap groups among %d elements", len(ed.groups), len(candidates))
}

// ladder stacks the group's tooltips one tooltip height apart around the mean
// center. A text member keeps the middle rung and the others take the rungs
// above and below it.
func (ed *Editor) ladder(members []int) OverlapGroup {
	g := OverlapGroup{Anchor: -1}
	for _, m := range members {
		g.CenterY += ed.elements[m].Box.CY()
	}
	g.CenterY /= float64(len(members))

	others := make([]int, 0, len(members))
	for _, m := range members {
		if g.Anchor < 0 && ed.elements[m].Kind == KindText {
			g.Anchor = m
			continue
		}
		others = append(others, m)
	}
	sort.SliceStable(others, func(i, j int) bool {
		a, b := ed.elements[others[i]], ed.elements[others[j]]
		if a.Box.CY() != b.Box.CY() {
			return a.Box.CY() < b.Box.CY()
		}
		return a.Index < b.Index
	})

	step := ed.settings.TooltipHeight / ed.viewport.Scale()
	if g.Anchor >= 0 {
		g.Members = append(g.Members, g.Anchor)
		g.Offsets = append(g.Offsets, g.CenterY-ed.elements[g.Anchor].Box.CY())
	}
	n := len(others)
	for k, m := range others {
		var slot float64
		if g.Anchor < 0 {
			slot = float64(k) - float64(n-1)/2
		} else {
			above := (n + 1) / 2
			slot = float64(k - above)
			if k >= above {
				slot++
			}
		}
		g.Members = append(g.Members, m)
		g.Offsets = append(g.Offsets, g.CenterY-ed.elements[m].Box.CY()+slot*step)
	}
	return g
}
