package measure

import (
	"fmt"
	"math"
	"strings"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

// Matrix is an affine transform in SVG order: [a c e; b d f; 0 0 1]
type Matrix struct {
	A, B, C, D, E, F float64
}

var Identity = Matrix{A: 1, D: 1}

func Translate(x, y float64) Matrix { return Matrix{A: 1, D: 1, E: x, F: y} }

func Scale(x, y float64) Matrix { return Matrix{A: x, D: y} }

// Rotate returns a rotation by deg degrees about the origin
func Rotate(deg float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Mul returns m·o, applying o first
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

func (m Matrix) Apply(p api.Point) api.Point {
	return api.Point{X: m.A*p.X + m.C*p.Y + m.E, Y: m.B*p.X + m.D*p.Y + m.F}
}

// ApplyBox returns the bounds of the transformed corners of b
func (m Matrix) ApplyBox(b api.Box) api.Box {
	if m == Identity {
		return b
	}
	corners := b.Corners()
	for i := range corners {
		corners[i] = m.Apply(corners[i])
	}
	return api.BoxFromPoints(corners...)
}

// ParseTransform parses a transform attribute list such as
// "translate(10 10) rotate(45, 5, 5) scale(2)"
func ParseTransform(s string) (Matrix, error) {
	m := Identity
	b := []byte(s)
	for i := 0; i < len(b); {
		if svgdoc.IsSeparator(b[i]) {
			i++
			continue
		}
		start := i
		for i < len(b) && (b[i] >= 'a' && b[i] <= 'z' || b[i] >= 'A' && b[i] <= 'Z') {
			i++
		}
		name := string(b[start:i])
		for i < len(b) && svgdoc.IsSeparator(b[i]) {
			i++
		}
		if name == "" || i >= len(b) || b[i] != '(' {
			return Identity, fmt.Errorf("invalid transform %q", s)
		}
		end := strings.IndexByte(s[i:], ')')
		if end < 0 {
			return Identity, fmt.Errorf("unterminated transform %q", s)
		}
		args, err := svgdoc.ParseNumbers(s[i+1 : i+end])
		if err != nil {
			return Identity, fmt.Errorf("invalid %s arguments: %w", name, err)
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return Identity, err
		}
		m = m.Mul(t)
		i += end + 1
	}
	return m, nil
}

func transformFunc(name string, args []float64) (Matrix, error) {
	arg := func(i int, def float64) float64 {
		if i < len(args) {
			return args[i]
		}
		return def
	}
	switch {
	case name == "matrix" && len(args) == 6:
		return Matrix{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
	case name == "translate" && (len(args) == 1 || len(args) == 2):
		return Translate(args[0], arg(1, 0)), nil
	case name == "scale" && (len(args) == 1 || len(args) == 2):
		return Scale(args[0], arg(1, args[0])), nil
	case name == "rotate" && len(args) == 1:
		return Rotate(args[0]), nil
	case name == "rotate" && len(args) == 3:
		return Translate(args[1], args[2]).Mul(Rotate(args[0])).Mul(Translate(-args[1], -args[2])), nil
	case name == "skewX" && len(args) == 1:
		return Matrix{A: 1, C: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	case name == "skewY" && len(args) == 1:
		return Matrix{A: 1, B: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
	}
	return Identity, fmt.Errorf("unsupported transform %s with %d arguments", name, len(args))
}

// NodeTransform returns the node's own transform, identity when absent or invalid
func NodeTransform(n *svgdoc.Node) Matrix {
	v, ok := n.Attr("transform")
	if !ok {
		return Identity
	}
	m, err := ParseTransform(v)
	if err != nil {
		log.Debugf("ignoring transform on <%s>: %v", n.Name, err)
		return Identity
	}
	return m
}
