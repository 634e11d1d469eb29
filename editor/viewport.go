package editor

import (
	"math"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/symbols/api"
)

var viewportLog = logger.GetLogger("viewport")

type ViewportState int

const (
	ViewportIdle ViewportState = iota
	ViewportAnimating
)

func (s ViewportState) String() string {
	if s == ViewportAnimating {
		return "animating"
	}
	return "idle"
}

type animation struct {
	from, to float64
	elapsed  time.Duration
	duration time.Duration
	// focus is the document point kept at the same relative position
	focus api.Point
	frac  api.Point
}

// Viewport is the zoomable, pannable window onto the document box. The visible
// box always has the content's size divided by the zoom and never strays further
// from the content than the slack left by a zoomed out view.
type Viewport struct {
	settings Settings
	content  api.Box
	box      api.Box
	zoom     float64
	scale    float64
	state    ViewportState
	anim     animation

	// onChange runs after every change of the visible box, onZoom after a zoom settles
	onChange func()
	onZoom   func()
}

func NewViewport(settings Settings) *Viewport {
	return &Viewport{settings: settings, zoom: settings.MinZoom, scale: 1}
}

// Reset centers the view on content at the minimum zoom and scale 1
func (v *Viewport) Reset(content api.Box) {
	v.stop()
	v.content = content
	v.scale = 1
	v.setZoom(v.settings.MinZoom, content.Center(), api.Point{X: 0.5, Y: 0.5})
}

func (v *Viewport) Zoom() float64        { return v.zoom }
func (v *Viewport) Scale() float64       { return v.scale }
func (v *Viewport) Box() api.Box         { return v.box }
func (v *Viewport) Content() api.Box     { return v.content }
func (v *Viewport) State() ViewportState { return v.state }

func (v *Viewport) ToScreen(p api.Point) api.Point {
	k := v.zoom * v.scale
	return api.Point{X: (p.X - v.box.X) * k, Y: (p.Y - v.box.Y) * k}
}

func (v *Viewport) ToDocument(p api.Point) api.Point {
	k := v.zoom * v.scale
	return api.Point{X: v.box.X + p.X/k, Y: v.box.Y + p.Y/k}
}

// ScreenBox maps a document box to container pixels
func (v *Viewport) ScreenBox(b api.Box) api.Box {
	k := v.zoom * v.scale
	o := v.ToScreen(api.Point{X: b.X, Y: b.Y})
	return api.NewBox(o.X, o.Y, b.Width*k, b.Height*k)
}

func (v *Viewport) setScale(scale float64) bool {
	if scale == v.scale {
		return false
	}
	v.scale = scale
	return true
}

func (v *Viewport) clampZoom(z float64) float64 {
	return math.Max(v.settings.MinZoom, math.Min(v.settings.MaxZoom, z))
}

// setZoom resizes the visible box to zoom, keeping focus at the relative
// position frac within it, then clamps.
func (v *Viewport) setZoom(zoom float64, focus, frac api.Point) {
	v.zoom = zoom
	w, h := v.content.Width/zoom, v.content.Height/zoom
	v.box = api.NewBox(focus.X-frac.X*w, focus.Y-frac.Y*h, w, h)
	v.clamp()
}

func clampAxis(origin, visible, min, size float64) float64 {
	margin := math.Max(visible-size, 0)
	lo, hi := min-margin, min+size+margin-visible
	return math.Max(lo, math.Min(hi, origin))
}

func (v *Viewport) clamp() {
	v.box.X = clampAxis(v.box.X, v.box.Width, v.content.X, v.content.Width)
	v.box.Y = clampAxis(v.box.Y, v.box.Height, v.content.Y, v.content.Height)
}

func (v *Viewport) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *Viewport) zoomed() {
	if v.onZoom != nil {
		v.onZoom()
	}
}

func (v *Viewport) ZoomIn() bool {
	return v.zoomBy(v.settings.ZoomExponent)
}

func (v *Viewport) ZoomOut() bool {
	return v.zoomBy(-v.settings.ZoomExponent)
}

// zoomBy finishes any running animation, then animates towards the next zoom
// step about the center of the view. It reports whether a zoom was started.
func (v *Viewport) zoomBy(exponent float64) bool {
	v.Finish()
	target := v.clampZoom(v.zoom * math.Pow(1+v.settings.ZoomFactor, exponent))
	if target == v.zoom {
		return false
	}
	v.anim = animation{
		from:     v.zoom,
		to:       target,
		duration: v.settings.AnimationDuration(),
		focus:    v.box.Center(),
		frac:     api.Point{X: 0.5, Y: 0.5},
	}
	v.state = ViewportAnimating
	viewportLog.Debugf("zoom %.3f -> %.3f over %s", v.anim.from, v.anim.to, v.anim.duration)
	if v.anim.duration <= 0 {
		v.Finish()
	}
	return true
}

// ease maps linear progress to a sinusoidal ease-in-out
func ease(pos float64) float64 {
	return -math.Cos(pos*math.Pi)/2 + 0.5
}

// Tick advances the zoom animation by dt, reporting whether it is still running
func (v *Viewport) Tick(dt time.Duration) bool {
	if v.state != ViewportAnimating {
		return false
	}
	v.anim.elapsed += dt
	pos := 1.0
	if v.anim.duration > 0 {
		pos = math.Min(float64(v.anim.elapsed)/float64(v.anim.duration), 1)
	}
	if pos >= 1 {
		v.complete()
		return false
	}
	v.setZoom(v.anim.from+(v.anim.to-v.anim.from)*ease(pos), v.anim.focus, v.anim.frac)
	viewportLog.Tracef("tick zoom=%.3f box=%s", v.zoom, v.box)
	v.changed()
	return true
}

// Finish jumps a running animation to its end
func (v *Viewport) Finish() {
	if v.state == ViewportAnimating {
		v.complete()
	}
}

func (v *Viewport) complete() {
	v.setZoom(v.anim.to, v.anim.focus, v.anim.frac)
	v.state = ViewportIdle
	v.changed()
	v.zoomed()
}

// stop abandons a running animation where it is
func (v *Viewport) stop() {
	v.state = ViewportIdle
	v.anim = animation{}
}

// Pan moves the view by a drag of dx, dy container pixels. A running zoom
// animation follows the drag.
func (v *Viewport) Pan(dx, dy float64) {
	k := v.zoom * v.scale
	if k == 0 {
		return
	}
	before := v.box
	v.box.X -= dx / k
	v.box.Y -= dy / k
	v.clamp()
	if v.state == ViewportAnimating {
		v.anim.focus.X += v.box.X - before.X
		v.anim.focus.Y += v.box.Y - before.Y
	}
	v.changed()
}

// WheelZoom sets the zoom directly, keeping the document point under focus (in
// container pixels) in place. A running animation is finished first. It
// reports whether the zoom changed.
func (v *Viewport) WheelZoom(level float64, focus api.Point) bool {
	v.Finish()
	level = v.clampZoom(level)
	if level == v.zoom {
		return false
	}
	doc := v.ToDocument(focus)
	frac := api.Point{X: (doc.X - v.box.X) / v.box.Width, Y: (doc.Y - v.box.Y) / v.box.Height}
	v.setZoom(level, doc, frac)
	v.changed()
	v.zoomed()
	return true
}
