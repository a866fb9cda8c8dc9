package media

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/browser"

	"github.com/litescript/ls-galaxy/internal/logging"
)

// Opener opens an external resource.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system browser. The browser launcher's
// own output is discarded so it cannot scribble over the terminal UI.
type BrowserOpener struct{}

// NewBrowserOpener creates an opener backed by the system browser.
func NewBrowserOpener() BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return BrowserOpener{}
}

// Open launches url.
func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

// Surface is a video surface the core starts and stops.
type Surface interface {
	Start(videoID string)
	Stop()
	// SetVolume sets volume in [0,100]. Zero mutes.
	SetVolume(v int)
}

// SurfaceStatus is what a surface is showing.
type SurfaceStatus struct {
	VideoID string
	Showing bool
	Volume  int
	Muted   bool
}

// Screen is a Surface that records what is on screen for the renderer and,
// when configured with an Opener, opens each newly started video.
type Screen struct {
	mu     sync.Mutex
	status SurfaceStatus
	url    func(videoID string) string
	opener Opener
	log    *logging.Logger
}

// NewScreen creates a screen. opener may be nil to never open videos.
func NewScreen(url func(videoID string) string, opener Opener, log *logging.Logger) *Screen {
	if log == nil {
		log = logging.Discard()
	}
	return &Screen{
		status: SurfaceStatus{Muted: true},
		url:    url,
		opener: opener,
		log:    log,
	}
}

// Start shows a video. Starting the video already showing does nothing.
func (s *Screen) Start(videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Showing && s.status.VideoID == videoID {
		return
	}
	s.status.VideoID = videoID
	s.status.Showing = true
	s.log.Debug("media: surface start %s", videoID)

	if s.opener != nil && s.url != nil {
		if err := s.opener.Open(s.url(videoID)); err != nil {
			s.log.Warn("media: %v", err)
		}
	}
}

// Stop blanks the surface.
func (s *Screen) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Showing {
		s.log.Debug("media: surface stop %s", s.status.VideoID)
	}
	s.status.Showing = false
}

// SetVolume sets the volume, clamped to [0,100]. Zero mutes.
func (s *Screen) SetVolume(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Volume = v
	s.status.Muted = v == 0
}

// Status returns the current surface state.
func (s *Screen) Status() SurfaceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
