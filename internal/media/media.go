// Package media is the opaque media subsystem: audio playback for the
// player, a click for navigation feedback, a video surface for the TV and
// showcase bodies, and a link opener. It is commanded and polled, never
// awaited.
package media

import (
	"fmt"
	"sync"
	"time"
)

// Player plays one track at a time.
type Player interface {
	// Load prepares a track, stopping whatever was loaded. It does not play.
	Load(slug string) error
	Play()
	Pause()
	Playing() bool
	// Position and Duration are zero until a track is loaded.
	Position() time.Duration
	Duration() time.Duration
	// Ended reports whether the loaded track has played to its end.
	Ended() bool
	// SetVolume sets volume in [0,1].
	SetVolume(v float64)
	Close() error
}

// Clicker plays a short navigation click.
type Clicker interface {
	Click()
}

// FormatTime renders a duration as m:ss. Negative durations render as 0:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// SilentPlayer is a Player that keeps time without producing sound. It is
// used when audio is muted or the audio device is unavailable.
type SilentPlayer struct {
	mu       sync.Mutex
	now      func() time.Time
	length   time.Duration
	slug     string
	loaded   bool
	playing  bool
	started  time.Time     // When playback last resumed
	position time.Duration // Accumulated before the last resume
}

// NewSilentPlayer creates a silent player whose tracks all last length.
func NewSilentPlayer(length time.Duration) *SilentPlayer {
	return &SilentPlayer{now: time.Now, length: length}
}

// SetClock replaces the time source.
func (p *SilentPlayer) SetClock(now func() time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now
}

func (p *SilentPlayer) Load(slug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slug = slug
	p.loaded = true
	p.playing = false
	p.position = 0
	return nil
}

// Slug returns the loaded track.
func (p *SilentPlayer) Slug() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slug
}

func (p *SilentPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded || p.playing {
		return
	}
	p.playing = true
	p.started = p.now()
}

func (p *SilentPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.position = p.positionLocked()
	p.playing = false
}

func (p *SilentPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing && p.positionLocked() < p.length
}

func (p *SilentPlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *SilentPlayer) positionLocked() time.Duration {
	if !p.loaded {
		return 0
	}
	pos := p.position
	if p.playing {
		pos += p.now().Sub(p.started)
	}
	if pos > p.length {
		pos = p.length
	}
	return pos
}

func (p *SilentPlayer) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return 0
	}
	return p.length
}

func (p *SilentPlayer) Ended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded && p.positionLocked() >= p.length
}

func (p *SilentPlayer) SetVolume(float64) {}

func (p *SilentPlayer) Close() error {
	p.Pause()
	return nil
}

// Click is silent.
func (p *SilentPlayer) Click() {}
