package media

import (
	"errors"
	"time"

	"github.com/litescript/ls-galaxy/internal/logging"
)

// FallbackPlayer plays through a primary player and switches to a fallback
// for any track the primary cannot load. The next successful primary load
// switches back.
type FallbackPlayer struct {
	primary  Player
	fallback Player
	active   Player
	log      *logging.Logger
}

// NewFallbackPlayer wraps primary. fallback is usually a SilentPlayer.
func NewFallbackPlayer(primary, fallback Player, log *logging.Logger) *FallbackPlayer {
	if log == nil {
		log = logging.Discard()
	}
	return &FallbackPlayer{primary: primary, fallback: fallback, active: primary, log: log}
}

// usingFallback reports whether the current track is on the fallback player.
func (p *FallbackPlayer) usingFallback() bool {
	return p.active == p.fallback
}

func (p *FallbackPlayer) Load(slug string) error {
	err := p.primary.Load(slug)
	if err == nil {
		if p.active != p.primary {
			p.fallback.Pause()
			p.active = p.primary
		}
		return nil
	}
	p.log.Warn("media: %v; playing %s silently", err, slug)
	p.primary.Pause()
	p.active = p.fallback
	return p.fallback.Load(slug)
}

func (p *FallbackPlayer) Play()                   { p.active.Play() }
func (p *FallbackPlayer) Pause()                  { p.active.Pause() }
func (p *FallbackPlayer) Playing() bool           { return p.active.Playing() }
func (p *FallbackPlayer) Position() time.Duration { return p.active.Position() }
func (p *FallbackPlayer) Duration() time.Duration { return p.active.Duration() }
func (p *FallbackPlayer) Ended() bool             { return p.active.Ended() }

func (p *FallbackPlayer) SetVolume(v float64) {
	p.primary.SetVolume(v)
	p.fallback.SetVolume(v)
}

func (p *FallbackPlayer) Close() error {
	return errors.Join(p.primary.Close(), p.fallback.Close())
}
