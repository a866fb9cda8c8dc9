// Package session wires the galaxy together. Each tick runs the orbit model,
// publishes positions, applies the freeze rule from the view machine, moves
// the camera, and finally ticks the menu engine and TV set. Host input is
// routed through the session so the view machine gates every intent.
package session

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-galaxy/internal/camera"
	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/input"
	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/media"
	"github.com/litescript/ls-galaxy/internal/menu"
	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/tv"
	"github.com/litescript/ls-galaxy/internal/view"
)

// Config holds configuration for a session.
type Config struct {
	Width  float64 // Viewport width in pixels
	Scale  orbit.ScaleConfig
	Camera camera.Config
	Menu   menu.Config
	TV     tv.Config
	Rotary input.RotaryConfig

	MaxEvents int

	HoverScale  float64 // Body scale while hovered
	RingIdle    float64 // Orbit ring opacity
	RingHover   float64 // Orbit ring opacity while its body is hovered
	PresentRate float64 // Presentation easing rate per second

	TrackLength time.Duration // Track length for the silent player
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		Width:       1200,
		Scale:       orbit.DefaultScaleConfig(),
		Camera:      camera.DefaultConfig(),
		Menu:        menu.DefaultConfig(),
		TV:          tv.DefaultConfig(),
		Rotary:      input.DefaultRotaryConfig(),
		MaxEvents:   50,
		HoverScale:  1.15,
		RingIdle:    0.08,
		RingHover:   0.45,
		PresentRate: 8,
		TrackLength: 3 * time.Minute,
	}
}

// Deps are the media collaborators. Any of them may be nil: a nil Player
// becomes a silent clock player and a nil Surface becomes a Screen that
// records what is showing without opening anything.
type Deps struct {
	Player  media.Player
	Click   media.Clicker
	Surface media.Surface
	Opener  media.Opener // External links
	Log     *logging.Logger
}

type presentation struct {
	scale float64
	ring  float64
}

// Session owns every core component. All methods are safe for concurrent
// use; the host normally drives it from a single goroutine.
type Session struct {
	mu sync.Mutex

	cfg     Config
	catalog *scene.Catalog
	reg     *orbit.Registry
	orbits  *orbit.Model
	machine *view.Machine
	cam     *camera.Controller
	menu    *menu.Engine
	tv      *tv.Set
	surface media.Surface
	opener  media.Opener
	rotary  *input.Rotary
	log     *logging.Logger

	events  *eventLog
	hover   string
	present map[string]*presentation
	elapsed float64

	// Scale waiting for the camera to come home; zero when none.
	pendingScale float64
}

// New creates a session over a validated catalog.
func New(cfg Config, catalog *scene.Catalog, deps Deps) (*Session, error) {
	if catalog == nil {
		catalog = scene.DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	player := deps.Player
	if player == nil {
		player = media.NewSilentPlayer(cfg.TrackLength)
	}
	surface := deps.Surface
	if surface == nil {
		surface = media.NewScreen(content.VideoURL, nil, log)
	}

	scale := cfg.Scale.SceneScale(cfg.Width)
	reg := orbit.NewRegistry()
	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		reg:     reg,
		orbits:  orbit.NewModel(catalog.Orbiters(), scale, reg),
		machine: view.NewMachine(),
		cam:     camera.New(cfg.Camera, scale),
		menu:    menu.New(cfg.Menu, player, deps.Click, log),
		tv:      tv.New(cfg.TV, surface, deps.Click, log),
		surface: surface,
		opener:  deps.Opener,
		rotary:  input.NewRotary(cfg.Rotary, input.Point{}, 0),
		log:     log,
		events:  newEventLog(cfg.MaxEvents),
		present: make(map[string]*presentation, len(catalog.Bodies)),
	}
	for _, b := range catalog.Bodies {
		s.present[b.ID] = &presentation{scale: 1, ring: cfg.RingIdle}
	}
	return s, nil
}

// Catalog returns the session's bodies.
func (s *Session) Catalog() *scene.Catalog {
	return s.catalog
}

// Tick advances the session by dt seconds and returns the frame to render.
func (s *Session) Tick(dt float64) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt

	s.orbits.Tick(dt, s.machine.Frozen)

	switch s.cam.Tick(dt) {
	case camera.SignalEntryDone:
		if s.machine.EntryDone() == view.Transitioned {
			s.record(EventEntryDone, "")
		}
	case camera.SignalArrived:
		prev := s.machine.State()
		if s.machine.Arrive() == view.Transitioned {
			if prev.Mode == view.ModeFlyingTo {
				s.record(EventArrive, prev.Body)
				s.focus(prev.Body)
			} else {
				s.record(EventHome, prev.Body)
			}
		}
	}
	if s.pendingScale > 0 && s.machine.State().Mode == view.ModeIdle {
		s.applyScale(s.pendingScale)
	}

	s.menu.Tick(dt)
	s.tv.Tick(dt)
	s.ease(dt)

	return s.frameLocked()
}

// Frame returns the current frame without advancing time.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

// View returns the view-mode state.
func (s *Session) View() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Resize recomputes the scene scale for a new viewport width. While a body
// holds the camera the new scale waits until the camera is home, so the
// focused body and its framing stay put.
func (s *Session) Resize(width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Width = width
	scale := s.cfg.Scale.SceneScale(width)
	if _, busy := s.machine.FrozenBody(); busy {
		s.pendingScale = scale
		return
	}
	s.applyScale(scale)
}

func (s *Session) applyScale(scale float64) {
	s.pendingScale = 0
	s.orbits.SetScale(scale, s.machine.Frozen)
	s.cam.SetScale(scale)
}

// Select asks to focus a body.
func (s *Session) Select(id string) view.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectLocked(id)
}

func (s *Session) selectLocked(id string) view.Outcome {
	b, ok := s.catalog.Get(id)
	if !ok {
		s.log.Debug("session: select of unknown body %q", id)
		return view.Rejected
	}

	// The camera needs a published position to fly to.
	if s.machine.State().Mode == view.ModeIdle && b.Selectable() && !b.External() {
		if _, ok := s.reg.Get(id); !ok {
			s.log.Debug("session: %s has no position yet", id)
			return view.Ignored
		}
	}

	out := s.machine.Select(b)
	switch out {
	case view.OpenExternal:
		s.record(EventExternal, id)
		if s.opener != nil {
			if err := s.opener.Open(b.ExternalURL); err != nil {
				s.log.Warn("session: %v", err)
			}
		}
	case view.Rejected:
		s.record(EventRejected, id)
	case view.Ignored:
		s.record(EventDropped, id)
		s.log.Debug("session: select %s dropped in %s", id, s.machine.State())
	case view.Transitioned:
		s.cam.FlyTo(s.reg, id, b.Framing())
		s.hover = ""
		s.record(EventSelect, id)
	}
	return out
}

// Back leaves the focused body.
func (s *Session) Back() view.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backLocked()
}

func (s *Session) backLocked() view.Outcome {
	id, _ := s.machine.Focused()
	out := s.machine.Back()
	if out != view.Transitioned {
		return out
	}
	b, _ := s.catalog.Get(id)
	s.unfocus(b)
	s.rotary.End()
	s.cam.FlyHome(s.reg, id, b.Framing())
	s.record(EventBack, id)
	return out
}

// Hover marks a body as under the pointer. An empty id clears it.
func (s *Session) Hover(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setHover(id)
}

func (s *Session) setHover(id string) {
	if id == "" {
		s.hover = ""
		return
	}
	if b, ok := s.catalog.Get(id); ok && !b.Decorative() {
		s.hover = id
	}
}

// Command sends a command straight to the menu engine. It is ignored unless
// the player body is focused.
func (s *Session) Command(cmd menu.Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.focusedKind(scene.KindPlayer) {
		return false
	}
	s.menu.Dispatch(cmd)
	return true
}

// Key routes a key press. It reports whether the key was consumed.
func (s *Session) Key(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == "esc" {
		return s.backLocked() == view.Transitioned
	}

	st := s.machine.State()
	switch st.Mode {
	case view.ModeIdle:
		return s.idleKey(key)
	case view.ModeFocused:
		b, _ := s.catalog.Get(st.Body)
		switch b.Kind {
		case scene.KindPlayer:
			return s.playerKey(key)
		case scene.KindMediaPanel:
			return s.tvKey(key)
		}
	}
	return false
}

func (s *Session) idleKey(key string) bool {
	switch key {
	case "tab":
		s.cycleHover(+1)
	case "shift+tab":
		s.cycleHover(-1)
	case "enter":
		if s.hover == "" {
			return false
		}
		s.selectLocked(s.hover)
	case "+", "=":
		s.cam.Wheel(-250)
	case "-", "_":
		s.cam.Wheel(250)
	default:
		n := digit(key)
		visible := s.catalog.Visible()
		if n < 1 || n > len(visible) {
			return false
		}
		s.selectLocked(visible[n-1].ID)
	}
	return true
}

func (s *Session) cycleHover(delta int) {
	visible := s.catalog.Visible()
	if len(visible) == 0 {
		return
	}
	idx := -1
	for i, b := range visible {
		if b.ID == s.hover {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(visible) - 1
	default:
		idx = ((idx+delta)%len(visible) + len(visible)) % len(visible)
	}
	s.hover = visible[idx].ID
}

func (s *Session) playerKey(key string) bool {
	if c := input.FromKey(key); c != input.None {
		s.dispatchInput(c)
		return true
	}
	if cmd, ok := menu.KeyCommand(key); ok {
		s.menu.Dispatch(cmd)
		return true
	}
	switch key {
	case "n", ">":
		s.menu.Dispatch(menu.CmdNextTrack)
	case "p", "<":
		s.menu.Dispatch(menu.CmdPrevTrack)
	default:
		return false
	}
	return true
}

func (s *Session) tvKey(key string) bool {
	st := s.tv.State()
	switch key {
	case "right":
		s.tv.Step(+1)
	case "left":
		s.tv.Step(-1)
	case "up":
		s.tv.SetVolume(st.Volume + 10)
	case "down":
		s.tv.SetVolume(st.Volume - 10)
	case "m":
		s.tv.SetVolume(0)
	case "p":
		s.tv.TogglePower()
	case "h":
		s.tv.SetHue(st.Hue + 15)
	case "H":
		s.tv.SetHue(st.Hue - 15)
	case "b":
		s.tv.SetBrightness(st.Brightness + 10)
	case "B":
		s.tv.SetBrightness(st.Brightness - 10)
	default:
		n := digit(key)
		if n < 1 {
			return false
		}
		s.tv.ChangeChannel(n - 1)
	}
	return true
}

// SetWheelBounds places the player's click wheel on screen.
func (s *Session) SetWheelBounds(center input.Point, radius float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotary.SetBounds(center, radius)
}

// PointerDown starts a wheel gesture when the player is focused and the
// pointer is on the wheel ring; otherwise it starts a camera drag.
func (s *Session) PointerDown(p input.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focusedKind(scene.KindPlayer) && s.rotary.Start(p, 1) {
		return
	}
	s.cam.PointerDown(camera.Point{X: p.X, Y: p.Y})
}

// PointerMove feeds the wheel gesture or camera drag.
func (s *Session) PointerMove(p input.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rotary.Tracking() {
		s.dispatchInput(s.rotary.Move(p))
		return
	}
	s.cam.PointerMove(camera.Point{X: p.X, Y: p.Y})
}

// PointerUp ends any gesture.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotary.End()
	s.cam.PointerUp()
}

// Wheel scrolls the menu when the player is focused and zooms otherwise.
func (s *Session) Wheel(deltaY float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focusedKind(scene.KindPlayer) {
		s.dispatchInput(input.FromWheel(deltaY))
		return
	}
	s.cam.Wheel(deltaY)
}

// RecentEvents returns the last n view events.
func (s *Session) RecentEvents(n int) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.events.ordered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Close stops playback and blanks the surface.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tv.Deactivate()
	return s.menu.Close()
}

func (s *Session) dispatchInput(c input.Command) {
	switch c {
	case input.Advance:
		s.menu.Dispatch(menu.CmdAdvance)
	case input.Retreat:
		s.menu.Dispatch(menu.CmdRetreat)
	}
}

func (s *Session) focusedKind(k scene.Kind) bool {
	id, ok := s.machine.Focused()
	if !ok {
		return false
	}
	b, ok := s.catalog.Get(id)
	return ok && b.Kind == k
}

func (s *Session) focus(id string) {
	b, ok := s.catalog.Get(id)
	if !ok {
		return
	}
	switch {
	case b.Kind == scene.KindMediaPanel:
		s.tv.Activate()
	case b.VideoID != "":
		s.surface.Start(b.VideoID)
	}
}

func (s *Session) unfocus(b scene.Body) {
	switch {
	case b.Kind == scene.KindPlayer:
		s.menu.Suspend()
	case b.Kind == scene.KindMediaPanel:
		s.tv.Deactivate()
	case b.VideoID != "":
		s.surface.Stop()
	}
}

func (s *Session) ease(dt float64) {
	k := math.Min(dt*s.cfg.PresentRate, 1)
	for id, p := range s.present {
		scale, ring := 1.0, s.cfg.RingIdle
		if id == s.hover && s.machine.State().Mode == view.ModeIdle {
			scale, ring = s.cfg.HoverScale, s.cfg.RingHover
		}
		p.scale += (scale - p.scale) * k
		p.ring += (ring - p.ring) * k
	}
}

func (s *Session) record(t EventType, body string) {
	s.events.add(Event{Type: t, At: s.elapsed, Body: body})
	s.log.Debug("session: %s %s -> %s", t, body, s.machine.State())
}

func digit(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0
	}
	return int(key[0] - '0')
}
