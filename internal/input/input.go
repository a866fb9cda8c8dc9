// Package input unifies the player's directional inputs (arrow keys, the
// rotary click-wheel gesture, and discrete scroll) into two commands.
package input

import "math"

// Command is an abstract directional command.
type Command int

const (
	None    Command = iota
	Advance         // Move down / forward
	Retreat         // Move up / back
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	default:
		return "none"
	}
}

// FromKey maps a key name to a command. Only up and down are directional.
func FromKey(key string) Command {
	switch key {
	case "up":
		return Retreat
	case "down":
		return Advance
	default:
		return None
	}
}

// FromWheel maps a discrete scroll step to a command without accumulation.
func FromWheel(deltaY float64) Command {
	switch {
	case deltaY < 0:
		return Retreat
	case deltaY > 0:
		return Advance
	default:
		return None
	}
}

// Point is a position in the same units as the control's bounds.
type Point struct {
	X, Y float64
}

// RotaryConfig tunes the rotary gesture.
type RotaryConfig struct {
	InnerRadius float64 // Dead zone around the centre button
	Threshold   float64 // Degrees of rotation per emitted command
}

// DefaultRotaryConfig returns the click-wheel tuning.
func DefaultRotaryConfig() RotaryConfig {
	return RotaryConfig{
		InnerRadius: 25,
		Threshold:   15,
	}
}

// Rotary turns a circular drag on a ring into advance/retreat commands.
// Clockwise rotation (in screen coordinates, y down) advances.
type Rotary struct {
	cfg    RotaryConfig
	center Point
	radius float64

	tracking    bool
	offRing     bool
	lastAngle   float64
	accumulated float64
}

// NewRotary creates a rotary control centred at center with the given
// outer radius.
func NewRotary(cfg RotaryConfig, center Point, radius float64) *Rotary {
	return &Rotary{cfg: cfg, center: center, radius: radius}
}

// SetBounds moves or resizes the control. An in-progress gesture is dropped.
func (r *Rotary) SetBounds(center Point, radius float64) {
	r.center = center
	r.radius = radius
	r.End()
}

// OnRing reports whether p lies in the annulus between the inner and
// outer radius.
func (r *Rotary) OnRing(p Point) bool {
	d := math.Hypot(p.X-r.center.X, p.Y-r.center.Y)
	return d > r.cfg.InnerRadius && d <= r.radius
}

// Start begins a gesture. Multi-touch and presses off the ring are ignored.
// It reports whether tracking started.
func (r *Rotary) Start(p Point, touches int) bool {
	if touches > 1 || !r.OnRing(p) {
		return false
	}
	r.tracking = true
	r.offRing = false
	r.lastAngle = r.angle(p)
	r.accumulated = 0
	return true
}

// Move feeds a pointer position. It returns at most one command per call.
// Positions off the ring are not tracked; the angle is re-anchored when the
// pointer comes back.
func (r *Rotary) Move(p Point) Command {
	if !r.tracking {
		return None
	}
	a := r.angle(p)
	if !r.OnRing(p) {
		r.offRing = true
		return None
	}
	if r.offRing {
		r.offRing = false
		r.lastAngle = a
		return None
	}
	delta := a - r.lastAngle
	if delta > 180 {
		delta -= 360
	}
	if delta < -180 {
		delta += 360
	}
	r.accumulated += delta
	r.lastAngle = a

	switch {
	case r.accumulated > r.cfg.Threshold:
		r.accumulated = 0
		return Advance
	case r.accumulated < -r.cfg.Threshold:
		r.accumulated = 0
		return Retreat
	}
	return None
}

// End finishes the gesture and clears the accumulator.
func (r *Rotary) End() {
	r.tracking = false
	r.offRing = false
	r.lastAngle = 0
	r.accumulated = 0
}

// Tracking reports whether a gesture is in progress.
func (r *Rotary) Tracking() bool {
	return r.tracking
}

func (r *Rotary) angle(p Point) float64 {
	return math.Atan2(p.Y-r.center.Y, p.X-r.center.X) * 180 / math.Pi
}
