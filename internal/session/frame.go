package session

import (
	"github.com/litescript/ls-galaxy/internal/camera"
	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/media"
	"github.com/litescript/ls-galaxy/internal/menu"
	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/tv"
	"github.com/litescript/ls-galaxy/internal/view"
)

// CameraFrame is the camera pose for one frame.
type CameraFrame struct {
	Position orbit.Vec3
	LookAt   orbit.Vec3
	Regime   camera.Regime
	Progress float64
}

// BodyFrame is how one body is drawn this frame.
type BodyFrame struct {
	Body        scene.Body
	Position    orbit.Vec3
	Visible     bool
	Hovered     bool
	Scale       float64
	RingOpacity float64
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Elapsed float64
	Scale   float64
	Camera  CameraFrame
	View    view.State
	Bodies  []BodyFrame

	Menu     menu.PageView
	Playback menu.Playback

	TV      tv.State
	Channel content.Channel
	Surface media.SurfaceStatus
}

// Body returns the frame entry for id.
func (f Frame) Body(id string) (BodyFrame, bool) {
	for _, b := range f.Bodies {
		if b.Body.ID == id {
			return b, true
		}
	}
	return BodyFrame{}, false
}

func (s *Session) frameLocked() Frame {
	f := Frame{
		Elapsed: s.elapsed,
		Scale:   s.orbits.Scale(),
		Camera: CameraFrame{
			Position: s.cam.Position(),
			LookAt:   s.cam.LookAt(),
			Regime:   s.cam.Regime(),
			Progress: s.cam.Progress(),
		},
		View:     s.machine.State(),
		Menu:     s.menu.View(),
		Playback: s.menu.State().Playback,
		TV:       s.tv.State(),
		Bodies:   make([]BodyFrame, 0, len(s.catalog.Bodies)),
	}
	f.Channel, _ = s.tv.Current()
	if st, ok := s.surface.(interface{ Status() media.SurfaceStatus }); ok {
		f.Surface = st.Status()
	}

	subject, busy := s.machine.FrozenBody()
	for _, b := range s.catalog.Bodies {
		bf := BodyFrame{
			Body:    b,
			Visible: !busy || b.ID == subject,
			Hovered: b.ID == s.hover,
			Scale:   1,
		}
		// Hidden bodies are never published; their position comes from the
		// model directly.
		if pos, ok := s.reg.Get(b.ID); ok {
			bf.Position = pos
		} else if pos, ok := s.orbits.Position(b.ID); ok {
			bf.Position = pos
		}
		if p := s.present[b.ID]; p != nil {
			bf.Scale = p.scale
			bf.RingOpacity = p.ring
		}
		f.Bodies = append(f.Bodies, bf)
	}
	return f
}
