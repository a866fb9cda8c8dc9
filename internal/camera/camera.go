// Package camera drives the scene camera: a one-time establishing approach,
// idle free-look with eased pan and zoom, and timed fly-to and fly-home
// transitions that report arrival exactly once.
package camera

import (
	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
)

// Config holds camera timing, ranges, and input factors. Distances are in
// scene units at scale 1.0 and are multiplied by the scene scale.
type Config struct {
	EntryDuration   float64 // Seconds
	FlyToDuration   float64
	FlyHomeDuration float64
	MaxDelta        float64 // Longest frame step accepted

	BaseZ       float64
	EntryStartY float64
	EntryStartZ float64

	ZoomMin  float64
	ZoomMax  float64
	PinchMin float64
	PinchMax float64
	PanLimit float64

	DragFactor  float64 // Scene units per pixel of drag
	WheelFactor float64 // Scene units per wheel delta unit
	PinchFactor float64 // Scene units per pixel of pinch
	ZoomRate    float64 // Exponential easing rate per second
	PanRate     float64
}

// DefaultConfig returns the galaxy's camera tuning.
func DefaultConfig() Config {
	return Config{
		EntryDuration:   3.0,
		FlyToDuration:   2.8,
		FlyHomeDuration: 2.5,
		MaxDelta:        0.05,

		BaseZ:       25,
		EntryStartY: 5,
		EntryStartZ: 45,

		ZoomMin:  12,
		ZoomMax:  45,
		PinchMin: 15,
		PinchMax: 60,
		PanLimit: 20,

		DragFactor:  0.04,
		WheelFactor: 0.02,
		PinchFactor: 0.08,
		ZoomRate:    3,
		PanRate:     5,
	}
}

// Regime is the camera's behaviour mode.
type Regime int

const (
	RegimeEntry      Regime = iota // Establishing approach
	RegimeIdle                     // Free-look
	RegimeTransition               // Fly-to or fly-home
	RegimeHold                     // Framing a focused body
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeEntry:
		return "entry"
	case RegimeIdle:
		return "idle"
	case RegimeTransition:
		return "transition"
	case RegimeHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Signal is what a tick reports back to the state machine.
type Signal int

const (
	SignalNone      Signal = iota
	SignalEntryDone        // Establishing approach finished
	SignalArrived          // Transition reached progress 1.0
)

// Point is a 2D screen or pan coordinate.
type Point struct {
	X, Y float64
}

// animation is the record of one in-flight transition.
type animation struct {
	startPos   orbit.Vec3
	startLook  orbit.Vec3
	targetPos  orbit.Vec3
	targetLook orbit.Vec3
	elapsed    float64
	duration   float64
	home       bool
}

func (a *animation) progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	return orbit.Clamp(a.elapsed/a.duration, 0, 1)
}

// Controller owns the camera's continuous state. It is driven by the host
// tick and is not safe for concurrent use.
type Controller struct {
	cfg   Config
	scale float64

	regime Regime
	pos    orbit.Vec3
	look   orbit.Vec3

	// Idle free-look targets
	zDist     float64
	targetZ   float64
	pan       Point
	panTarget Point

	// Drag and touch tracking
	dragging       bool
	dragStart      Point
	panAtDragStart Point
	pinchDist      float64

	anim   *animation
	savedZ float64
}

// New creates a controller positioned at the far establishing point.
func New(cfg Config, scale float64) *Controller {
	c := &Controller{
		cfg:    cfg,
		scale:  scale,
		regime: RegimeEntry,
	}
	c.zDist = cfg.BaseZ * scale
	c.targetZ = c.zDist
	c.savedZ = c.zDist
	c.anim = &animation{
		startPos:  orbit.Vec3{Y: cfg.EntryStartY, Z: cfg.EntryStartZ * scale},
		targetPos: orbit.Vec3{Z: c.zDist},
		duration:  cfg.EntryDuration,
	}
	c.pos = c.anim.startPos
	return c
}

// Position returns the camera position.
func (c *Controller) Position() orbit.Vec3 { return c.pos }

// LookAt returns the point the camera faces.
func (c *Controller) LookAt() orbit.Vec3 { return c.look }

// Regime returns the current behaviour mode.
func (c *Controller) Regime() Regime { return c.regime }

// Pan returns the current eased pan offset.
func (c *Controller) Pan() Point { return c.pan }

// Zoom returns the current idle camera distance and its target.
func (c *Controller) Zoom() (dist, target float64) { return c.zDist, c.targetZ }

// Scale returns the scene scale the controller uses.
func (c *Controller) Scale() float64 { return c.scale }

// Progress returns normalized progress of the running animation, or 1 when
// nothing is animating.
func (c *Controller) Progress() float64 {
	if c.anim == nil {
		return 1
	}
	return c.anim.progress()
}

// SetScale updates the scene scale and re-clamps idle targets to the new range.
func (c *Controller) SetScale(scale float64) {
	if scale <= 0 || scale == c.scale {
		return
	}
	ratio := scale / c.scale
	c.scale = scale
	c.zDist *= ratio
	c.targetZ = orbit.Clamp(c.targetZ*ratio, c.cfg.ZoomMin*scale, c.cfg.PinchMax*scale)
	c.savedZ *= ratio
	limit := c.panLimit()
	c.panTarget.X = orbit.Clamp(c.panTarget.X, -limit, limit)
	c.panTarget.Y = orbit.Clamp(c.panTarget.Y, -limit, limit)
}

func (c *Controller) panLimit() float64 {
	return c.cfg.PanLimit * c.scale
}

// Tick advances the camera by dt seconds. The step is clamped to
// [0, MaxDelta] so a stalled frame cannot jump a transition.
func (c *Controller) Tick(dt float64) Signal {
	dt = orbit.Clamp(dt, 0, c.cfg.MaxDelta)

	switch c.regime {
	case RegimeEntry:
		c.anim.elapsed += dt
		p := c.anim.progress()
		c.pos = c.anim.startPos.Lerp(c.anim.targetPos, EaseInOutCubic(p))
		c.look = orbit.Vec3{}
		if p >= 1 {
			c.anim = nil
			c.regime = RegimeIdle
			return SignalEntryDone
		}

	case RegimeIdle:
		c.zDist = orbit.Lerp(c.zDist, c.targetZ, dt*c.cfg.ZoomRate)
		c.pan.X = orbit.Lerp(c.pan.X, c.panTarget.X, dt*c.cfg.PanRate)
		c.pan.Y = orbit.Lerp(c.pan.Y, c.panTarget.Y, dt*c.cfg.PanRate)
		c.pos = orbit.Vec3{X: c.pan.X, Y: c.pan.Y, Z: c.zDist}
		c.look = orbit.Vec3{X: c.pan.X, Y: c.pan.Y}

	case RegimeTransition:
		a := c.anim
		a.elapsed += dt
		p := a.progress()
		e := EaseInOutCubic(p)
		c.pos = a.startPos.Lerp(a.targetPos, e)
		c.look = a.startLook.Lerp(a.targetLook, e)
		if p < 1 {
			return SignalNone
		}
		c.anim = nil
		if a.home {
			c.zDist = a.targetPos.Z
			c.targetZ = a.targetPos.Z
			c.regime = RegimeIdle
		} else {
			c.regime = RegimeHold
		}
		return SignalArrived

	case RegimeHold:
		// Framing is fixed at the target computed when the flight began.
	}
	return SignalNone
}

// FlyTo starts a transition toward a body's registry position, framed by
// the body's kind. It returns false, and changes nothing, when the body has
// no registry entry yet. A new transition supersedes any running one.
func (c *Controller) FlyTo(reg *orbit.Registry, id string, f scene.Framing) bool {
	target, ok := reg.Get(id)
	if !ok {
		return false
	}
	c.savedZ = c.pos.Z
	c.dragging = false
	c.pinchDist = 0
	c.anim = &animation{
		startPos:   c.pos,
		startLook:  orbit.Vec3{X: c.pan.X, Y: c.pan.Y},
		targetPos:  target.Add(f.Offset),
		targetLook: target.Add(f.LookOffset),
		duration:   c.cfg.FlyToDuration,
	}
	c.regime = RegimeTransition
	return true
}

// FlyHome starts the return flight from a focused body to the free-look
// view at the pan offset and distance saved when the fly-to began.
func (c *Controller) FlyHome(reg *orbit.Registry, id string, f scene.Framing) bool {
	startLook := c.look
	if pos, ok := reg.Get(id); ok {
		startLook = pos.Add(f.LookOffset)
	}
	c.anim = &animation{
		startPos:   c.pos,
		startLook:  startLook,
		targetPos:  orbit.Vec3{X: c.pan.X, Y: c.pan.Y, Z: c.savedZ},
		targetLook: orbit.Vec3{X: c.pan.X, Y: c.pan.Y},
		duration:   c.cfg.FlyHomeDuration,
		home:       true,
	}
	c.regime = RegimeTransition
	return true
}

// PointerDown begins a drag-to-pan. Ignored outside free-look.
func (c *Controller) PointerDown(p Point) {
	if c.regime != RegimeIdle {
		return
	}
	c.dragging = true
	c.dragStart = p
	c.panAtDragStart = c.panTarget
}

// PointerMove updates the pan target while dragging.
func (c *Controller) PointerMove(p Point) {
	if !c.dragging {
		return
	}
	c.dragTo(p)
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

func (c *Controller) dragTo(p Point) {
	dx := (p.X - c.dragStart.X) * c.cfg.DragFactor
	dy := (p.Y - c.dragStart.Y) * c.cfg.DragFactor
	limit := c.panLimit()
	c.panTarget.X = orbit.Clamp(c.panAtDragStart.X-dx, -limit, limit)
	c.panTarget.Y = orbit.Clamp(c.panAtDragStart.Y+dy, -limit, limit)
}

// Wheel dollies the zoom target. Positive deltaY moves the camera away.
func (c *Controller) Wheel(deltaY float64) {
	if c.regime != RegimeIdle {
		return
	}
	c.targetZ = orbit.Clamp(c.targetZ+deltaY*c.cfg.WheelFactor,
		c.cfg.ZoomMin*c.scale, c.cfg.ZoomMax*c.scale)
}

// TouchStart begins a one-finger pan or a two-finger pinch.
func (c *Controller) TouchStart(touches []Point) {
	if c.regime != RegimeIdle {
		return
	}
	switch len(touches) {
	case 1:
		c.dragging = true
		c.dragStart = touches[0]
		c.panAtDragStart = c.panTarget
	case 2:
		c.pinchDist = distance(touches[0], touches[1])
		c.dragging = false
	}
}

// TouchMove pans with one finger or zooms with two.
func (c *Controller) TouchMove(touches []Point) {
	if c.regime != RegimeIdle {
		return
	}
	switch len(touches) {
	case 1:
		if c.dragging {
			c.dragTo(touches[0])
		}
	case 2:
		dist := distance(touches[0], touches[1])
		if c.pinchDist > 0 {
			c.targetZ = orbit.Clamp(c.targetZ+(c.pinchDist-dist)*c.cfg.PinchFactor,
				c.cfg.PinchMin*c.scale, c.cfg.PinchMax*c.scale)
		}
		c.pinchDist = dist
		c.dragging = false
	}
}

// TouchEnd is called with the number of touches still down.
func (c *Controller) TouchEnd(remaining int) {
	if remaining < 2 {
		c.pinchDist = 0
	}
	if remaining == 0 {
		c.dragging = false
	}
}

func distance(a, b Point) float64 {
	return orbit.Vec3{X: a.X - b.X, Y: a.Y - b.Y}.Norm()
}

// EaseInOutCubic maps linear progress t in [0,1] to an eased value.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
