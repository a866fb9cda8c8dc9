// Package tv simulates the channel-surfing set shown on the media panel body.
// Timed effects (static between channels, power animations) run off Tick so
// the set stays deterministic under test.
package tv

import (
	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/media"
)

// Control ranges.
const (
	MinVolume     = 0
	MaxVolume     = 100
	MinHue        = 0
	MaxHue        = 360
	MinBrightness = 20
	MaxBrightness = 180
)

// Config holds the set's timings and channel lineup.
type Config struct {
	SwitchDelay float64 // Seconds of static before the channel switches
	StaticHold  float64 // Seconds of static after the switch
	PowerOff    float64 // Power-off animation seconds
	PowerOn     float64 // Power-on animation seconds
	Channels    []content.Channel
}

// DefaultConfig returns the standard set configuration.
func DefaultConfig() Config {
	return Config{
		SwitchDelay: 0.2,
		StaticHold:  0.4,
		PowerOff:    0.6,
		PowerOn:     0.8,
		Channels:    content.Channels,
	}
}

// PowerAnim is the power animation in progress.
type PowerAnim int

const (
	PowerIdle PowerAnim = iota
	PowerTurningOff
	PowerTurningOn
)

// String returns the animation name.
func (p PowerAnim) String() string {
	switch p {
	case PowerTurningOff:
		return "off"
	case PowerTurningOn:
		return "on"
	default:
		return ""
	}
}

// State is a snapshot of the set.
type State struct {
	Channel    int
	Previous   int // -1 before the first change
	On         bool
	Volume     int
	Hue        int
	Brightness int
	Static     bool
	Power      PowerAnim
}

// Set is the TV. Not safe for concurrent use.
type Set struct {
	cfg     Config
	state   State
	surface media.Surface
	click   media.Clicker
	log     *logging.Logger
	active  bool

	pending    int // Channel waiting for the static burst; -1 if none
	switchLeft float64
	staticLeft float64
	powerLeft  float64
}

// New creates a set that is on, tuned to the first channel and muted.
// surface and click may be nil.
func New(cfg Config, surface media.Surface, click media.Clicker, log *logging.Logger) *Set {
	if log == nil {
		log = logging.Discard()
	}
	return &Set{
		cfg: cfg,
		state: State{
			Previous:   -1,
			On:         true,
			Brightness: 100,
		},
		surface: surface,
		click:   click,
		log:     log,
		pending: -1,
	}
}

// State returns a snapshot of the set.
func (s *Set) State() State {
	return s.state
}

// Current returns the tuned channel.
func (s *Set) Current() (content.Channel, bool) {
	if s.state.Channel < 0 || s.state.Channel >= len(s.cfg.Channels) {
		return content.Channel{}, false
	}
	return s.cfg.Channels[s.state.Channel], true
}

// Activate is called when the set gains focus; the surface starts showing
// the tuned channel if the set is on.
func (s *Set) Activate() {
	s.active = true
	if s.surface != nil {
		s.surface.SetVolume(s.state.Volume)
	}
	s.showCurrent()
}

// Deactivate is called when the set loses focus.
func (s *Set) Deactivate() {
	s.active = false
	if s.surface != nil {
		s.surface.Stop()
	}
}

// ChangeChannel tunes to channel ch. It reports false when the request is
// ignored: same channel, unknown channel, or the set is off.
func (s *Set) ChangeChannel(ch int) bool {
	if ch < 0 || ch >= len(s.cfg.Channels) {
		return false
	}
	if ch == s.state.Channel || !s.state.On {
		return false
	}
	s.playClick()
	s.state.Previous = s.state.Channel
	s.state.Static = true
	s.pending = ch
	s.switchLeft = s.cfg.SwitchDelay
	s.staticLeft = 0
	s.log.Debug("tv: channel %d -> %d", s.state.Channel, ch)
	return true
}

// Step tunes to the next (delta > 0) or previous channel, wrapping around.
func (s *Set) Step(delta int) bool {
	n := len(s.cfg.Channels)
	if n == 0 || delta == 0 {
		return false
	}
	from := s.state.Channel
	if s.pending >= 0 {
		from = s.pending
	}
	return s.ChangeChannel(((from+delta)%n + n) % n)
}

// TogglePower turns the set off (animated) or on. Toggling while the set
// is already turning off is ignored.
func (s *Set) TogglePower() {
	if s.state.Power == PowerTurningOff {
		return
	}
	s.playClick()
	if s.state.On {
		s.state.Power = PowerTurningOff
		s.powerLeft = s.cfg.PowerOff
		s.log.Debug("tv: power off")
		return
	}
	s.state.On = true
	s.state.Power = PowerTurningOn
	s.powerLeft = s.cfg.PowerOn
	s.log.Debug("tv: power on")
	s.showCurrent()
}

// SetVolume sets the volume, clamped to [0,100]; zero mutes. Ignored while
// the set is off.
func (s *Set) SetVolume(v int) {
	if !s.state.On {
		return
	}
	s.state.Volume = clamp(v, MinVolume, MaxVolume)
	if s.surface != nil && s.active {
		s.surface.SetVolume(s.state.Volume)
	}
}

// SetHue sets the hue rotation in degrees, clamped to [0,360].
func (s *Set) SetHue(h int) {
	if s.state.On {
		s.state.Hue = clamp(h, MinHue, MaxHue)
	}
}

// SetBrightness sets the brightness percentage, clamped to [20,180].
func (s *Set) SetBrightness(b int) {
	if s.state.On {
		s.state.Brightness = clamp(b, MinBrightness, MaxBrightness)
	}
}

// Tick advances the set's timers by dt seconds.
func (s *Set) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	if s.pending >= 0 {
		s.switchLeft -= dt
		if s.switchLeft <= 0 {
			s.state.Channel = s.pending
			s.pending = -1
			s.staticLeft = s.cfg.StaticHold + s.switchLeft
			s.showCurrent()
		}
	} else if s.state.Static {
		s.staticLeft -= dt
		if s.staticLeft <= 0 {
			s.state.Static = false
		}
	}

	if s.state.Power != PowerIdle {
		s.powerLeft -= dt
		if s.powerLeft <= 0 {
			if s.state.Power == PowerTurningOff {
				s.state.On = false
				if s.surface != nil {
					s.surface.Stop()
				}
			}
			s.state.Power = PowerIdle
		}
	}
}

func (s *Set) showCurrent() {
	if !s.active || !s.state.On || s.surface == nil {
		return
	}
	if ch, ok := s.Current(); ok {
		s.surface.Start(ch.VideoID)
	}
}

func (s *Set) playClick() {
	if s.click != nil {
		s.click.Click()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
