package api

import (
	"fmt"
	"math"
)

// Point is a position in either document units or container pixels,
// depending on where it came from.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Box is an axis aligned rectangle.
type Box struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func NewBox(x, y, width, height float64) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// BoxFromPoints returns the smallest box containing all the points.
func BoxFromPoints(points ...Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Box{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (b Box) CX() float64 { return b.X + b.Width/2 }
func (b Box) CY() float64 { return b.Y + b.Height/2 }

func (b Box) Center() Point { return Point{X: b.CX(), Y: b.CY()} }

func (b Box) Right() float64  { return b.X + b.Width }
func (b Box) Bottom() float64 { return b.Y + b.Height }

// Empty reports a box without any visual footprint.
func (b Box) Empty() bool {
	return b.Width == 0 && b.Height == 0
}

// Valid reports a box usable as a view box.
func (b Box) Valid() bool {
	return b.Width > 0 && b.Height > 0 &&
		!math.IsInf(b.Width, 0) && !math.IsInf(b.Height, 0) &&
		!math.IsNaN(b.X) && !math.IsNaN(b.Y)
}

// Union returns the smallest box containing both boxes. Empty boxes are ignored.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	x := math.Min(b.X, o.X)
	y := math.Min(b.Y, o.Y)
	return Box{
		X:      x,
		Y:      y,
		Width:  math.Max(b.Right(), o.Right()) - x,
		Height: math.Max(b.Bottom(), o.Bottom()) - y,
	}
}

// Pad grows the box by d on every side.
func (b Box) Pad(d float64) Box {
	return Box{X: b.X - d, Y: b.Y - d, Width: b.Width + 2*d, Height: b.Height + 2*d}
}

// Intersect returns the overlapping part of both boxes, or an empty box.
func (b Box) Intersect(o Box) Box {
	x := math.Max(b.X, o.X)
	y := math.Max(b.Y, o.Y)
	r := math.Min(b.Right(), o.Right())
	btm := math.Min(b.Bottom(), o.Bottom())
	if r <= x || btm <= y {
		return Box{}
	}
	return Box{X: x, Y: y, Width: r - x, Height: btm - y}
}

func (b Box) Corners() []Point {
	return []Point{
		{X: b.X, Y: b.Y},
		{X: b.Right(), Y: b.Y},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.X, Y: b.Bottom()},
	}
}

func (b Box) String() string {
	return fmt.Sprintf("%g %g %g %g", b.X, b.Y, b.Width, b.Height)
}
