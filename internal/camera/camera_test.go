package camera

import (
	"math"
	"testing"

	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
)

const tol = 1e-9

func approxVec(a, b orbit.Vec3) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

// runUntil ticks at the max frame step and counts signals of the given kind.
func runUntil(c *Controller, want Signal, maxTicks int) (ticks, count int) {
	for i := 0; i < maxTicks; i++ {
		if c.Tick(0.05) == want {
			count++
			if ticks == 0 {
				ticks = i + 1
			}
		}
	}
	return ticks, count
}

func idleController(t *testing.T, scale float64) *Controller {
	t.Helper()
	c := New(DefaultConfig(), scale)
	if _, n := runUntil(c, SignalEntryDone, 70); n != 1 {
		t.Fatalf("entry done signalled %d times, want 1", n)
	}
	if c.Regime() != RegimeIdle {
		t.Fatalf("regime after entry = %v, want idle", c.Regime())
	}
	return c
}

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutCubic(tt.t); math.Abs(got-tt.want) > tol {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d", i)
		}
		prev = v
	}
}

func TestEntryApproach(t *testing.T) {
	c := New(DefaultConfig(), 1.2)

	if want := (orbit.Vec3{Y: 5, Z: 54}); !approxVec(c.Position(), want) {
		t.Errorf("start = %+v, want %+v", c.Position(), want)
	}

	ticks, n := runUntil(c, SignalEntryDone, 80)
	if n != 1 {
		t.Fatalf("entry done signalled %d times, want 1", n)
	}
	if ticks < 60 {
		t.Errorf("entry finished after %d ticks, want at least 60 (3s)", ticks)
	}
	if want := (orbit.Vec3{Z: 30}); math.Abs(c.Position().Z-want.Z) > 1e-6 {
		t.Errorf("end = %+v, want %+v", c.Position(), want)
	}
}

func TestTick_ClampsDelta(t *testing.T) {
	c := New(DefaultConfig(), 1)
	c.Tick(10)
	want := 0.05 / 3.0
	if math.Abs(c.Progress()-want) > tol {
		t.Errorf("Progress after huge step = %v, want %v", c.Progress(), want)
	}
	c.Tick(-1)
	if math.Abs(c.Progress()-want) > tol {
		t.Errorf("negative step moved progress to %v", c.Progress())
	}
}

func TestEntry_IgnoresInput(t *testing.T) {
	c := New(DefaultConfig(), 1)
	c.Wheel(500)
	c.PointerDown(Point{})
	if _, target := c.Zoom(); target != 25 {
		t.Errorf("zoom target during entry = %v, want 25", target)
	}
	if c.dragging {
		t.Error("drag should not start during entry")
	}
}

func TestWheelZoomClamp(t *testing.T) {
	c := idleController(t, 1)

	c.Wheel(100)
	if _, target := c.Zoom(); math.Abs(target-27) > tol {
		t.Errorf("target after wheel = %v, want 27", target)
	}

	c.Wheel(1e6)
	if _, target := c.Zoom(); target != 45 {
		t.Errorf("target = %v, want max 45", target)
	}
	c.Wheel(-1e6)
	if _, target := c.Zoom(); target != 12 {
		t.Errorf("target = %v, want min 12", target)
	}
}

func TestPinchZoom(t *testing.T) {
	c := idleController(t, 1)

	c.TouchStart([]Point{{0, 0}, {100, 0}})
	c.TouchMove([]Point{{0, 0}, {50, 0}})
	if _, target := c.Zoom(); math.Abs(target-29) > tol {
		t.Errorf("target after pinch in = %v, want 29", target)
	}

	c.TouchMove([]Point{{0, 0}, {1000, 0}})
	if _, target := c.Zoom(); target != 15 {
		t.Errorf("target = %v, want pinch min 15", target)
	}

	c.TouchEnd(0)
	if c.dragging {
		t.Error("dragging should end with no touches")
	}
}

func TestDragPan(t *testing.T) {
	c := idleController(t, 1)

	c.PointerDown(Point{10, 10})
	c.PointerMove(Point{110, 60})
	got := c.panTarget
	if math.Abs(got.X+4) > tol || math.Abs(got.Y-2) > tol {
		t.Errorf("pan target = %+v, want {-4 2}", got)
	}

	c.PointerMove(Point{100000, -100000})
	got = c.panTarget
	if got.X != -20 || got.Y != -20 {
		t.Errorf("pan target = %+v, want clamped {-20 -20}", got)
	}

	c.PointerUp()
	c.PointerMove(Point{0, 0})
	if c.panTarget != got {
		t.Error("move after pointer up should not pan")
	}
}

func TestOneFingerPan(t *testing.T) {
	c := idleController(t, 1)
	c.TouchStart([]Point{{0, 0}})
	c.TouchMove([]Point{{-50, 0}})
	if got := c.panTarget; math.Abs(got.X-2) > tol {
		t.Errorf("pan target x = %v, want 2", got.X)
	}
}

func TestIdleEasing(t *testing.T) {
	c := idleController(t, 1)
	c.Wheel(500) // target 35
	c.PointerDown(Point{})
	c.PointerMove(Point{X: -100}) // pan target x = 4
	c.PointerUp()

	c.Tick(0.05)
	dist, _ := c.Zoom()
	if dist <= 25 || dist >= 35 {
		t.Errorf("zoom after one tick = %v, want between 25 and 35", dist)
	}

	for i := 0; i < 400; i++ {
		c.Tick(0.05)
	}
	dist, _ = c.Zoom()
	if math.Abs(dist-35) > 1e-3 {
		t.Errorf("zoom converged to %v, want 35", dist)
	}
	if math.Abs(c.Pan().X-4) > 1e-3 {
		t.Errorf("pan converged to %v, want 4", c.Pan().X)
	}
	if want := (orbit.Vec3{X: c.Pan().X, Y: c.Pan().Y}); !approxVec(c.LookAt(), want) {
		t.Errorf("look = %+v, want %+v", c.LookAt(), want)
	}
}

func TestFlyTo_MissingTargetIsNoop(t *testing.T) {
	c := idleController(t, 1)
	if c.FlyTo(orbit.NewRegistry(), "tv", scene.KindMediaPanel.Framing()) {
		t.Error("FlyTo with no registry entry should fail")
	}
	if c.Regime() != RegimeIdle {
		t.Errorf("regime = %v, want idle", c.Regime())
	}
}

func TestFlyTo_ArrivesOnce(t *testing.T) {
	c := idleController(t, 1)
	reg := orbit.NewRegistry()
	body := orbit.Vec3{X: 10, Y: 1, Z: -3}
	reg.Set("tv", body)

	if !c.FlyTo(reg, "tv", scene.KindMediaPanel.Framing()) {
		t.Fatal("FlyTo failed")
	}
	if c.Regime() != RegimeTransition {
		t.Fatalf("regime = %v, want transition", c.Regime())
	}

	// The target is sampled once; moving the body mid-flight has no effect.
	reg.Set("tv", orbit.Vec3{X: 99})

	ticks, n := runUntil(c, SignalArrived, 120)
	if n != 1 {
		t.Fatalf("arrived signalled %d times, want 1", n)
	}
	if ticks < 56 {
		t.Errorf("arrived after %d ticks, want at least 56 (2.8s)", ticks)
	}
	if c.Regime() != RegimeHold {
		t.Errorf("regime = %v, want hold", c.Regime())
	}

	wantPos := orbit.Vec3{X: 9.85, Y: 1, Z: 1}
	wantLook := orbit.Vec3{X: 9.85, Y: 1, Z: -3}
	if !approxVec(c.Position(), wantPos) {
		t.Errorf("position = %+v, want %+v", c.Position(), wantPos)
	}
	if !approxVec(c.LookAt(), wantLook) {
		t.Errorf("look = %+v, want %+v", c.LookAt(), wantLook)
	}
}

func TestFlyTo_Supersedes(t *testing.T) {
	c := idleController(t, 1)
	reg := orbit.NewRegistry()
	reg.Set("a", orbit.Vec3{X: 10})
	reg.Set("b", orbit.Vec3{X: -10})

	c.FlyTo(reg, "a", scene.KindPlayer.Framing())
	for i := 0; i < 20; i++ {
		c.Tick(0.05)
	}
	c.FlyTo(reg, "b", scene.KindPlayer.Framing())
	if c.Progress() != 0 {
		t.Errorf("progress after supersede = %v, want 0", c.Progress())
	}

	runUntil(c, SignalArrived, 120)
	if want := (orbit.Vec3{X: -10, Z: 3}); !approxVec(c.Position(), want) {
		t.Errorf("position = %+v, want %+v", c.Position(), want)
	}
}

func TestFlyHome(t *testing.T) {
	c := idleController(t, 1)
	c.Wheel(250) // target 30
	for i := 0; i < 400; i++ {
		c.Tick(0.05)
	}
	savedZ := c.Position().Z

	reg := orbit.NewRegistry()
	reg.Set("ipod", orbit.Vec3{X: 5, Y: 2, Z: 8})

	c.FlyTo(reg, "ipod", scene.KindPlayer.Framing())
	runUntil(c, SignalArrived, 120)

	c.Wheel(-1000)
	if _, target := c.Zoom(); math.Abs(target-30) > 1e-3 {
		t.Errorf("wheel during hold changed zoom target to %v", target)
	}

	c.FlyHome(reg, "ipod", scene.KindPlayer.Framing())
	if want := (orbit.Vec3{X: 5, Y: 2, Z: 8}); !approxVec(c.anim.startLook, want) {
		t.Errorf("fly-home start look = %+v, want %+v", c.anim.startLook, want)
	}

	_, n := runUntil(c, SignalArrived, 120)
	if n != 1 {
		t.Fatalf("arrived signalled %d times, want 1", n)
	}
	if c.Regime() != RegimeIdle {
		t.Errorf("regime = %v, want idle", c.Regime())
	}

	dist, target := c.Zoom()
	if math.Abs(dist-savedZ) > 1e-6 || math.Abs(target-savedZ) > 1e-6 {
		t.Errorf("zoom = %v/%v, want %v", dist, target, savedZ)
	}
}

func TestSetScale(t *testing.T) {
	c := idleController(t, 1)
	c.PointerDown(Point{})
	c.PointerMove(Point{X: -1000}) // pan target x = 20
	c.PointerUp()

	c.SetScale(0.55)
	if got := c.panTarget.X; math.Abs(got-11) > tol {
		t.Errorf("pan target after rescale = %v, want 11", got)
	}
	if _, target := c.Zoom(); math.Abs(target-13.75) > tol {
		t.Errorf("zoom target after rescale = %v, want 13.75", target)
	}
}
