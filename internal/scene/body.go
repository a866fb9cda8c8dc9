// Package scene defines the bodies that orbit the galaxy and how the camera
// frames each kind of body when it is focused.
package scene

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-galaxy/internal/orbit"
)

// Kind tags what a body shows when it is focused.
type Kind int

const (
	KindGeneric       Kind = iota // Plain body with optional video
	KindPlayer                    // Music player with the menu engine
	KindMediaPanel                // Channel-surfing TV
	KindDocument                  // Resume document
	KindShowcaseVideo             // Looping showcase video
	KindDecorative                // Orbits but is never selectable or published
)

var kindNames = map[Kind]string{
	KindGeneric:       "generic",
	KindPlayer:        "player",
	KindMediaPanel:    "media_panel",
	KindDocument:      "document",
	KindShowcaseVideo: "showcase_video",
	KindDecorative:    "decorative",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindGeneric, fmt.Errorf("unknown body kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Framing places the camera relative to a focused body.
type Framing struct {
	Offset     orbit.Vec3 // Camera position relative to the body
	LookOffset orbit.Vec3 // Look-at point relative to the body
}

// Framing returns the camera framing used when a body of this kind is focused.
func (k Kind) Framing() Framing {
	switch k {
	case KindMediaPanel:
		return Framing{
			Offset:     orbit.Vec3{X: -0.15, Z: 4.0},
			LookOffset: orbit.Vec3{X: -0.15},
		}
	case KindPlayer:
		return Framing{Offset: orbit.Vec3{Z: 3.0}}
	case KindDocument:
		return Framing{Offset: orbit.Vec3{Z: 3.5}}
	case KindShowcaseVideo:
		return Framing{Offset: orbit.Vec3{Z: 5.0}}
	default:
		return Framing{Offset: orbit.Vec3{Y: 0.5, Z: 3.0}}
	}
}

// Body is one orbiting object. Bodies are immutable for the session.
type Body struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Color       string       `json:"color"`
	Kind        Kind         `json:"kind"`
	Orbit       orbit.Params `json:"orbit"`
	Locked      bool         `json:"locked,omitempty"`
	NoOrbitRing bool         `json:"no_orbit_ring,omitempty"`
	ExternalURL string       `json:"external_url,omitempty"`
	VideoID     string       `json:"video_id,omitempty"` // Media surface content shown while focused
}

// Decorative reports whether the body is scenery only.
func (b Body) Decorative() bool {
	return b.Kind == KindDecorative
}

// Selectable reports whether selecting the body can change the view.
func (b Body) Selectable() bool {
	return !b.Locked && !b.Decorative()
}

// External reports whether selecting the body opens a link instead of focusing it.
func (b Body) External() bool {
	return b.ExternalURL != ""
}

// HasOrbitRing reports whether the body's path is drawn.
func (b Body) HasOrbitRing() bool {
	return !b.NoOrbitRing && !b.Decorative()
}

// Framing returns the camera framing for this body.
func (b Body) Framing() Framing {
	return b.Kind.Framing()
}

// Orbiter converts the body for the orbit model. Decorative bodies are
// simulated but never published to the registry.
func (b Body) Orbiter() orbit.Orbiter {
	return orbit.Orbiter{
		ID:     b.ID,
		Params: b.Orbit,
		Hidden: b.Decorative(),
	}
}
