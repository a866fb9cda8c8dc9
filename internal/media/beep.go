package media

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/litescript/ls-galaxy/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

// AudioConfig configures the speaker-backed player.
type AudioConfig struct {
	Dir         string  // Directory holding <slug>.mp3 files
	Volume      float64 // Initial volume in [0,1]
	ClickVolume float64 // Click loudness in [0,1]
	ClickFreq   float64 // Hz
	ClickLength time.Duration
}

// DefaultAudioConfig returns player defaults for tracks in dir.
func DefaultAudioConfig(dir string) AudioConfig {
	return AudioConfig{
		Dir:         dir,
		Volume:      1.0,
		ClickVolume: 0.3,
		ClickFreq:   2200,
		ClickLength: 8 * time.Millisecond,
	}
}

// BeepPlayer plays mp3 tracks through the system speaker.
type BeepPlayer struct {
	mu  sync.Mutex
	cfg AudioConfig
	log *logging.Logger

	mixer  *beep.Mixer
	stream beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume
	gain   float64

	// Written from the speaker goroutine.
	ended atomic.Bool
}

// NewBeepPlayer opens the speaker. It fails when no audio device is
// available; callers fall back to a SilentPlayer.
func NewBeepPlayer(cfg AudioConfig, log *logging.Logger) (*BeepPlayer, error) {
	if log == nil {
		log = logging.Discard()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	p := &BeepPlayer{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
		gain:  clamp01(cfg.Volume),
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Load decodes <dir>/<slug>.mp3 and queues it paused. The previous track is
// dropped first, so a failed load leaves nothing loaded.
func (p *BeepPlayer) Load(slug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	p.detachLocked()
	speaker.Unlock()
	p.ended.Store(false)

	path := filepath.Join(p.cfg.Dir, slug+".mp3")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening track: %w", err)
	}
	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	var src beep.Streamer = stream
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	ctrl := &beep.Ctrl{
		Streamer: beep.Seq(src, beep.Callback(func() { p.ended.Store(true) })),
		Paused:   true,
	}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}
	setGain(vol, p.gain)

	speaker.Lock()
	p.stream, p.format, p.ctrl, p.volume = stream, format, ctrl, vol
	p.mixer.Add(vol)
	speaker.Unlock()

	p.log.Debug("media: loaded %s (%s)", slug, format.SampleRate.D(stream.Len()))
	return nil
}

// detachLocked drops the current track from the mixer. Caller holds p.mu
// and the speaker lock.
func (p *BeepPlayer) detachLocked() {
	if p.ctrl == nil {
		return
	}
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	if err := p.stream.Close(); err != nil {
		p.log.Warn("media: closing track: %v", err)
	}
	p.stream, p.ctrl, p.volume = nil, nil, nil
}

func (p *BeepPlayer) Play()  { p.setPaused(false) }
func (p *BeepPlayer) Pause() { p.setPaused(true) }

func (p *BeepPlayer) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *BeepPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil || p.ended.Load() {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

func (p *BeepPlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.stream.Position())
}

func (p *BeepPlayer) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil {
		return 0
	}
	return p.format.SampleRate.D(p.stream.Len())
}

func (p *BeepPlayer) Ended() bool {
	return p.ended.Load()
}

func (p *BeepPlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gain = clamp01(v)
	if p.volume == nil {
		return
	}
	speaker.Lock()
	setGain(p.volume, p.gain)
	speaker.Unlock()
}

// Click plays a short tone over whatever is playing.
func (p *BeepPlayer) Click() {
	tone, err := generators.SineTone(sampleRate, p.cfg.ClickFreq)
	if err != nil {
		p.log.Debug("media: click tone: %v", err)
		return
	}
	click := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(p.cfg.ClickLength), tone),
		Base:     2,
	}
	setGain(click, p.cfg.ClickVolume)

	speaker.Lock()
	p.mixer.Add(click)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	speaker.Lock()
	p.detachLocked()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// setGain maps a linear gain in [0,1] onto a base-2 Volume effect.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
