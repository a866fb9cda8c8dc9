package tv

import (
	"testing"

	"github.com/litescript/ls-galaxy/internal/content"
)

type fakeSurface struct {
	started []string
	stops   int
	volume  int
}

func (f *fakeSurface) Start(id string) { f.started = append(f.started, id) }
func (f *fakeSurface) Stop()           { f.stops++ }
func (f *fakeSurface) SetVolume(v int) { f.volume = v }

type countingClicker struct{ n int }

func (c *countingClicker) Click() { c.n++ }

func newTestSet() (*Set, *fakeSurface, *countingClicker) {
	surf := &fakeSurface{volume: -1}
	click := &countingClicker{}
	return New(DefaultConfig(), surf, click, nil), surf, click
}

func TestNew(t *testing.T) {
	s, _, _ := newTestSet()
	st := s.State()
	if !st.On || st.Channel != 0 || st.Previous != -1 {
		t.Errorf("initial state = %+v", st)
	}
	if st.Volume != 0 || st.Hue != 0 || st.Brightness != 100 {
		t.Errorf("initial controls = %d/%d/%d, want 0/0/100", st.Volume, st.Hue, st.Brightness)
	}
	if len(s.cfg.Channels) != 7 {
		t.Errorf("channels = %d, want 7", len(s.cfg.Channels))
	}
}

func TestActivate(t *testing.T) {
	s, surf, _ := newTestSet()
	s.Activate()
	if len(surf.started) != 1 || surf.started[0] != content.Channels[0].VideoID {
		t.Errorf("started = %v, want first channel", surf.started)
	}
	if surf.volume != 0 {
		t.Errorf("surface volume = %d, want 0", surf.volume)
	}

	s.Deactivate()
	if surf.stops != 1 || s.active {
		t.Error("Deactivate should stop the surface")
	}
}

func TestChangeChannel(t *testing.T) {
	s, surf, click := newTestSet()
	s.Activate()

	if s.ChangeChannel(0) {
		t.Error("changing to the current channel should be ignored")
	}
	if s.ChangeChannel(7) || s.ChangeChannel(-1) {
		t.Error("unknown channels should be ignored")
	}
	if click.n != 0 {
		t.Errorf("ignored changes clicked %d times", click.n)
	}

	if !s.ChangeChannel(3) {
		t.Fatal("ChangeChannel(3) ignored")
	}
	if st := s.State(); !st.Static || st.Channel != 0 || st.Previous != 0 {
		t.Errorf("during static = %+v", st)
	}
	if click.n != 1 {
		t.Errorf("clicks = %d, want 1", click.n)
	}

	s.Tick(0.1)
	if s.State().Channel != 0 {
		t.Error("channel switched before the static burst ended")
	}

	s.Tick(0.15)
	st := s.State()
	if st.Channel != 3 || !st.Static {
		t.Errorf("after switch = %+v, want channel 3 with static", st)
	}
	if last := surf.started[len(surf.started)-1]; last != content.Channels[3].VideoID {
		t.Errorf("surface shows %s, want channel 3", last)
	}

	s.Tick(0.3)
	if !s.State().Static {
		t.Error("static cleared early")
	}
	s.Tick(0.1)
	if s.State().Static {
		t.Error("static should clear 0.4s after the switch")
	}
}

func TestStepWraps(t *testing.T) {
	s, _, _ := newTestSet()
	s.Step(-1)
	s.Tick(1)
	if got := s.State().Channel; got != 6 {
		t.Errorf("step back from 0 = %d, want 6", got)
	}
	s.Step(1)
	s.Tick(1)
	if got := s.State().Channel; got != 0 {
		t.Errorf("step forward from 6 = %d, want 0", got)
	}
}

func TestPower(t *testing.T) {
	s, surf, click := newTestSet()
	s.Activate()

	s.TogglePower()
	if st := s.State(); !st.On || st.Power != PowerTurningOff {
		t.Errorf("turning off = %+v", st)
	}
	s.TogglePower() // ignored mid power-off
	if click.n != 1 {
		t.Errorf("clicks = %d, want 1", click.n)
	}

	s.Tick(0.5)
	if !s.State().On {
		t.Error("set turned off before the animation ended")
	}
	s.Tick(0.2)
	if st := s.State(); st.On || st.Power != PowerIdle {
		t.Errorf("after power off = %+v", st)
	}
	if surf.stops != 1 {
		t.Errorf("surface stops = %d, want 1", surf.stops)
	}

	if s.ChangeChannel(2) {
		t.Error("channel change while off should be ignored")
	}
	s.SetVolume(50)
	s.SetHue(90)
	s.SetBrightness(150)
	if st := s.State(); st.Volume != 0 || st.Hue != 0 || st.Brightness != 100 {
		t.Errorf("controls changed while off: %+v", st)
	}

	started := len(surf.started)
	s.TogglePower()
	if st := s.State(); !st.On || st.Power != PowerTurningOn {
		t.Errorf("turning on = %+v", st)
	}
	if len(surf.started) != started+1 {
		t.Error("power on should restart the surface")
	}
	s.Tick(0.8)
	if s.State().Power != PowerIdle {
		t.Error("power-on animation should end after 0.8s")
	}
}

func TestControlClamping(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Set, int)
		get  func(State) int
		in   int
		want int
	}{
		{"volume high", (*Set).SetVolume, func(s State) int { return s.Volume }, 140, 100},
		{"volume low", (*Set).SetVolume, func(s State) int { return s.Volume }, -5, 0},
		{"volume", (*Set).SetVolume, func(s State) int { return s.Volume }, 35, 35},
		{"hue high", (*Set).SetHue, func(s State) int { return s.Hue }, 400, 360},
		{"hue low", (*Set).SetHue, func(s State) int { return s.Hue }, -1, 0},
		{"brightness high", (*Set).SetBrightness, func(s State) int { return s.Brightness }, 999, 180},
		{"brightness low", (*Set).SetBrightness, func(s State) int { return s.Brightness }, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSet()
			tt.set(s, tt.in)
			if got := tt.get(s.State()); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVolumeForwardedWhileActive(t *testing.T) {
	s, surf, _ := newTestSet()
	s.SetVolume(40)
	if surf.volume != -1 {
		t.Error("inactive set should not touch the surface")
	}
	s.Activate()
	if surf.volume != 40 {
		t.Errorf("surface volume = %d, want 40", surf.volume)
	}
	s.SetVolume(0)
	if surf.volume != 0 {
		t.Errorf("surface volume = %d, want 0 (muted)", surf.volume)
	}
}

func TestNilSurface(t *testing.T) {
	s := New(DefaultConfig(), nil, nil, nil)
	s.Activate()
	s.ChangeChannel(1)
	s.TogglePower()
	s.Tick(1)
	s.Deactivate()
	if s.State().On {
		t.Error("set should be off")
	}
}
