package measure

import (
	"fmt"
	"math"

	"github.com/flanksource/symbols/api"
	"github.com/flanksource/symbols/svgdoc"
)

// arcSamples is the number of points taken along an elliptical arc
const arcSamples = 32

type pathScanner struct {
	b []byte
	i int
}

func (s *pathScanner) skip() {
	for s.i < len(s.b) && svgdoc.IsSeparator(s.b[s.i]) {
		s.i++
	}
}

// more reports whether another number follows before the next command
func (s *pathScanner) more() bool {
	s.skip()
	if s.i >= len(s.b) {
		return false
	}
	c := s.b[s.i]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

func (s *pathScanner) number() (float64, error) {
	s.skip()
	f, n := svgdoc.ScanNumber(s.b[s.i:])
	if n == 0 {
		return 0, fmt.Errorf("expected number at offset %d", s.i)
	}
	s.i += n
	return f, nil
}

func (s *pathScanner) numbers(out []float64) error {
	for i := range out {
		f, err := s.number()
		if err != nil {
			return err
		}
		out[i] = f
	}
	return nil
}

// flag reads an arc flag, which may be written without a following separator
func (s *pathScanner) flag() (bool, error) {
	s.skip()
	if s.i < len(s.b) && (s.b[s.i] == '0' || s.b[s.i] == '1') {
		s.i++
		return s.b[s.i-1] == '1', nil
	}
	return false, fmt.Errorf("expected arc flag at offset %d", s.i)
}

// PathBounds returns the exact bounds of path data, sampling elliptical arcs.
func PathBounds(d string) (api.Box, error) {
	s := &pathScanner{b: []byte(d)}
	var pts []api.Point
	var cur, start, ctrl api.Point
	var prev byte
	var args [6]float64

	for {
		s.skip()
		if s.i >= len(s.b) {
			break
		}
		cmd := s.b[s.i]
		s.i++
		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd
		if rel {
			upper -= 'a' - 'A'
		}
		at := func(x, y float64) api.Point {
			if rel {
				return api.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return api.Point{X: x, Y: y}
		}

		if upper == 'Z' {
			cur = start
			pts = append(pts, cur)
			prev = upper
			continue
		}
		if !s.more() {
			return api.Box{}, fmt.Errorf("command %c without arguments", cmd)
		}
		first := true
		for first || s.more() {
			switch upper {
			case 'M', 'L', 'T':
				if err := s.numbers(args[:2]); err != nil {
					return api.Box{}, err
				}
				p := at(args[0], args[1])
				if upper == 'T' {
					c := cur
					if prev == 'Q' || prev == 'T' {
						c = reflect(ctrl, cur)
					}
					pts = append(pts, quadExtrema(cur, c, p)...)
					ctrl = c
				}
				cur = p
				if upper == 'M' && first {
					start = p
				}
			case 'H':
				if err := s.numbers(args[:1]); err != nil {
					return api.Box{}, err
				}
				if rel {
					cur.X += args[0]
				} else {
					cur.X = args[0]
				}
			case 'V':
				if err := s.numbers(args[:1]); err != nil {
					return api.Box{}, err
				}
				if rel {
					cur.Y += args[0]
				} else {
					cur.Y = args[0]
				}
			case 'C':
				if err := s.numbers(args[:6]); err != nil {
					return api.Box{}, err
				}
				c1, c2, p := at(args[0], args[1]), at(args[2], args[3]), at(args[4], args[5])
				pts = append(pts, cubicExtrema(cur, c1, c2, p)...)
				ctrl, cur = c2, p
			case 'S':
				if err := s.numbers(args[:4]); err != nil {
					return api.Box{}, err
				}
				c1 := cur
				if prev == 'C' || prev == 'S' {
					c1 = reflect(ctrl, cur)
				}
				c2, p := at(args[0], args[1]), at(args[2], args[3])
				pts = append(pts, cubicExtrema(cur, c1, c2, p)...)
				ctrl, cur = c2, p
			case 'Q':
				if err := s.numbers(args[:4]); err != nil {
					return api.Box{}, err
				}
				c, p := at(args[0], args[1]), at(args[2], args[3])
				pts = append(pts, quadExtrema(cur, c, p)...)
				ctrl, cur = c, p
			case 'A':
				if err := s.numbers(args[:3]); err != nil {
					return api.Box{}, err
				}
				large, err := s.flag()
				if err != nil {
					return api.Box{}, err
				}
				sweep, err := s.flag()
				if err != nil {
					return api.Box{}, err
				}
				if err := s.numbers(args[3:5]); err != nil {
					return api.Box{}, err
				}
				p := at(args[3], args[4])
				pts = append(pts, arcPoints(cur, args[0], args[1], args[2], large, sweep, p)...)
				cur = p
			default:
				return api.Box{}, fmt.Errorf("unknown path command %q", cmd)
			}
			pts = append(pts, cur)
			prev = upper
			// extra coordinate pairs after a moveto are implicit linetos
			if upper == 'M' {
				upper = 'L'
			}
			first = false
		}
	}
	return api.BoxFromPoints(pts...), nil
}

func reflect(c, about api.Point) api.Point {
	return api.Point{X: 2*about.X - c.X, Y: 2*about.Y - c.Y}
}

func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// cubicExtrema returns the curve points where either derivative is zero
func cubicExtrema(p0, p1, p2, p3 api.Point) []api.Point {
	var out []api.Point
	var ts []float64
	for _, axis := range [][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		a := -axis[0] + 3*axis[1] - 3*axis[2] + axis[3]
		b := 2 * (axis[0] - 2*axis[1] + axis[2])
		c := axis[1] - axis[0]
		ts = append(ts, quadRoots(a, b, c)...)
	}
	for _, t := range ts {
		if t > 0 && t < 1 {
			out = append(out, api.Point{
				X: cubicAt(p0.X, p1.X, p2.X, p3.X, t),
				Y: cubicAt(p0.Y, p1.Y, p2.Y, p3.Y, t),
			})
		}
	}
	return out
}

// quadRoots solves a·t² + b·t + c = 0
func quadRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func quadExtrema(p0, p1, p2 api.Point) []api.Point {
	var out []api.Point
	at := func(a, b, c, t float64) float64 {
		mt := 1 - t
		return mt*mt*a + 2*mt*t*b + t*t*c
	}
	for _, axis := range [][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := axis[0] - 2*axis[1] + axis[2]
		if den == 0 {
			continue
		}
		t := (axis[0] - axis[1]) / den
		if t > 0 && t < 1 {
			out = append(out, api.Point{X: at(p0.X, p1.X, p2.X, t), Y: at(p0.Y, p1.Y, p2.Y, t)})
		}
	}
	return out
}

// arcPoints samples an endpoint-parameterised elliptical arc
func arcPoints(p0 api.Point, rx, ry, phiDeg float64, large, sweep bool, p1 api.Point) []api.Point {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == p1 {
		return []api.Point{p1}
	}
	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		rx *= math.Sqrt(l)
		ry *= math.Sqrt(l)
	}
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	}
	theta := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	out := make([]api.Point, 0, arcSamples+1)
	for i := 1; i <= arcSamples; i++ {
		t := theta + delta*float64(i)/arcSamples
		s, c := math.Sincos(t)
		out = append(out, api.Point{
			X: cx + rx*c*cosPhi - ry*s*sinPhi,
			Y: cy + rx*c*sinPhi + ry*s*cosPhi,
		})
	}
	return out
}
