// Package view implements the view-mode state machine that decides which body,
// if any, holds the camera's attention, and the freeze flag derived from it.
package view

import (
	"fmt"

	"github.com/litescript/ls-galaxy/internal/scene"
)

// Mode is the discrete view mode.
type Mode int

const (
	ModeEntry      Mode = iota // One-time establishing approach
	ModeIdle                   // Free-look
	ModeFlyingTo               // Camera travelling to a body
	ModeFocused                // Camera holding on a body
	ModeFlyingHome             // Camera returning to free-look
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeEntry:
		return "entry"
	case ModeIdle:
		return "idle"
	case ModeFlyingTo:
		return "flying-to"
	case ModeFocused:
		return "focused"
	case ModeFlyingHome:
		return "flying-home"
	default:
		return "unknown"
	}
}

// State is a mode plus the body it concerns. For ModeFlyingHome, Body is the
// body that was just focused.
type State struct {
	Mode Mode
	Body string
}

// String renders the state as e.g. "focused(tv)".
func (s State) String() string {
	switch s.Mode {
	case ModeFlyingTo, ModeFocused:
		return fmt.Sprintf("%s(%s)", s.Mode, s.Body)
	default:
		return s.Mode.String()
	}
}

// InFlight reports whether a camera transition is running.
func (s State) InFlight() bool {
	return s.Mode == ModeEntry || s.Mode == ModeFlyingTo || s.Mode == ModeFlyingHome
}

// Outcome describes what an input did to the machine.
type Outcome int

const (
	Ignored      Outcome = iota // Input not valid in the current state; nothing changed
	Rejected                    // Body is not selectable
	OpenExternal                // Body links elsewhere; state untouched
	Transitioned                // State changed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Rejected:
		return "rejected"
	case OpenExternal:
		return "open-external"
	case Transitioned:
		return "transitioned"
	default:
		return "unknown"
	}
}

// Machine is the view-mode state machine. It starts in ModeEntry.
type Machine struct {
	state State
}

// NewMachine creates a machine in the entry sub-state.
func NewMachine() *Machine {
	return &Machine{state: State{Mode: ModeEntry}}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Select requests focus on a body. Only honoured while idle; selections
// in any other state are dropped, not queued.
func (m *Machine) Select(b scene.Body) Outcome {
	if m.state.Mode != ModeIdle {
		return Ignored
	}
	if !b.Selectable() {
		return Rejected
	}
	if b.External() {
		return OpenExternal
	}
	m.state = State{Mode: ModeFlyingTo, Body: b.ID}
	return Transitioned
}

// Arrive is the camera's arrival signal.
func (m *Machine) Arrive() Outcome {
	switch m.state.Mode {
	case ModeFlyingTo:
		m.state.Mode = ModeFocused
	case ModeFlyingHome:
		m.state = State{Mode: ModeIdle}
	default:
		return Ignored
	}
	return Transitioned
}

// Back leaves focus. Ignored mid-flight and when nothing is focused.
func (m *Machine) Back() Outcome {
	if m.state.Mode != ModeFocused {
		return Ignored
	}
	m.state.Mode = ModeFlyingHome
	return Transitioned
}

// EntryDone ends the establishing approach.
func (m *Machine) EntryDone() Outcome {
	if m.state.Mode != ModeEntry {
		return Ignored
	}
	m.state = State{Mode: ModeIdle}
	return Transitioned
}

// Frozen reports whether a body's orbital motion is held this tick. At most
// one body is ever frozen.
func (m *Machine) Frozen(id string) bool {
	body, ok := m.FrozenBody()
	return ok && body == id
}

// FrozenBody returns the single frozen body, if any.
func (m *Machine) FrozenBody() (string, bool) {
	switch m.state.Mode {
	case ModeFlyingTo, ModeFocused, ModeFlyingHome:
		return m.state.Body, m.state.Body != ""
	default:
		return "", false
	}
}

// Focused returns the focused body, if any.
func (m *Machine) Focused() (string, bool) {
	if m.state.Mode != ModeFocused {
		return "", false
	}
	return m.state.Body, true
}
