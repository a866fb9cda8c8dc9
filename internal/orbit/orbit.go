package orbit

import "math"

// Params are the orbital parameters of a body on a circular, inclined orbit.
type Params struct {
	Radius      float64 `json:"radius"`      // Orbit radius in scene units at scale 1.0
	Speed       float64 `json:"speed"`       // Angular speed in radians per second
	Inclination float64 `json:"inclination"` // Tilt of the orbital plane in radians
	Phase       float64 `json:"phase"`       // Angle at t=0 in radians
}

// PositionAt returns the scene position for an orbit angle theta under the
// given scene scale. The orbit lies in the XZ plane tilted by the
// inclination about the X axis.
func PositionAt(p Params, theta, scale float64) Vec3 {
	r := p.Radius * scale
	return Vec3{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta) * math.Sin(p.Inclination),
		Z: r * math.Sin(theta) * math.Cos(p.Inclination),
	}
}

// ScaleConfig maps a viewport width to the scene-scale factor.
type ScaleConfig struct {
	BaseWidth float64 // Width at which the scale is 1.0
	Min       float64
	Max       float64
}

// DefaultScaleConfig returns the scale mapping used for the galaxy scene.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		BaseWidth: 1200,
		Min:       0.55,
		Max:       1.3,
	}
}

// SceneScale returns the clamped linear scale factor for a viewport width.
func (c ScaleConfig) SceneScale(viewportWidth float64) float64 {
	if c.BaseWidth <= 0 {
		return 1
	}
	return Clamp(viewportWidth/c.BaseWidth, c.Min, c.Max)
}

// Orbiter is one body as seen by the orbit model.
type Orbiter struct {
	ID     string
	Params Params
	Hidden bool // Simulated but never published to the registry
}

// FreezeFunc reports whether a body's orbital motion is frozen this tick.
type FreezeFunc func(id string) bool

type track struct {
	Orbiter
	theta float64
}

// Model advances every body's orbit angle and publishes positions.
// It is driven by the host tick and is not safe for concurrent use.
type Model struct {
	tracks   []track
	scale    float64
	elapsed  float64
	registry *Registry
}

// NewModel creates an orbit model and seeds the registry with each visible
// body's phase-zero position so the first rendered frame has no jump.
func NewModel(orbiters []Orbiter, scale float64, reg *Registry) *Model {
	m := &Model{
		tracks:   make([]track, len(orbiters)),
		scale:    scale,
		registry: reg,
	}
	for i, o := range orbiters {
		m.tracks[i] = track{Orbiter: o, theta: o.Params.Phase}
	}
	m.publish(nil)
	return m
}

// Tick advances elapsed time by dt seconds. Bodies for which frozen returns
// true keep their angle and their registry entry is left untouched.
func (m *Model) Tick(dt float64, frozen FreezeFunc) {
	if dt < 0 {
		dt = 0
	}
	m.elapsed += dt
	for i := range m.tracks {
		t := &m.tracks[i]
		if frozen != nil && frozen(t.ID) {
			continue
		}
		t.theta += t.Params.Speed * dt
	}
	m.publish(frozen)
}

// SetScale changes the scene-scale factor and republishes unfrozen bodies.
func (m *Model) SetScale(scale float64, frozen FreezeFunc) {
	m.scale = scale
	m.publish(frozen)
}

// Scale returns the current scene-scale factor.
func (m *Model) Scale() float64 {
	return m.scale
}

// Elapsed returns the total simulated time in seconds.
func (m *Model) Elapsed() float64 {
	return m.elapsed
}

// Angle returns the current orbit angle of a body.
func (m *Model) Angle(id string) (float64, bool) {
	for _, t := range m.tracks {
		if t.ID == id {
			return t.theta, true
		}
	}
	return 0, false
}

// Position computes a body's current position regardless of visibility.
func (m *Model) Position(id string) (Vec3, bool) {
	for _, t := range m.tracks {
		if t.ID == id {
			return PositionAt(t.Params, t.theta, m.scale), true
		}
	}
	return Vec3{}, false
}

func (m *Model) publish(frozen FreezeFunc) {
	if m.registry == nil {
		return
	}
	for _, t := range m.tracks {
		if t.Hidden {
			continue
		}
		if frozen != nil && frozen(t.ID) {
			continue
		}
		m.registry.Set(t.ID, PositionAt(t.Params, t.theta, m.scale))
	}
}
