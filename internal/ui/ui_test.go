package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/input"
	"github.com/litescript/ls-galaxy/internal/media"
	"github.com/litescript/ls-galaxy/internal/menu"
	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/session"
	"github.com/litescript/ls-galaxy/internal/tv"
)

func testCamera() session.CameraFrame {
	return session.CameraFrame{Position: orbit.Vec3{Z: 10}}
}

func TestProjector_Center(t *testing.T) {
	p := newProjector(testCamera(), 80, 24)

	x, y, depth, ok := p.project(orbit.Vec3{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 40 || y != 12 {
		t.Errorf("origin = (%d, %d), want (40, 12)", x, y)
	}
	if depth != 10 {
		t.Errorf("depth = %v, want 10", depth)
	}
}

func TestProjector_Axes(t *testing.T) {
	p := newProjector(testCamera(), 80, 24)

	tests := []struct {
		name  string
		point orbit.Vec3
		check func(x, y int) bool
	}{
		{"right", orbit.Vec3{X: 1}, func(x, y int) bool { return x > 40 && y == 12 }},
		{"left", orbit.Vec3{X: -1}, func(x, y int) bool { return x < 40 && y == 12 }},
		{"up", orbit.Vec3{Y: 1}, func(x, y int) bool { return y < 12 }},
		{"down", orbit.Vec3{Y: -1}, func(x, y int) bool { return y > 12 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := p.project(tt.point)
			if !ok {
				t.Fatal("point should be visible")
			}
			if !tt.check(x, y) {
				t.Errorf("projected to (%d, %d)", x, y)
			}
		})
	}
}

func TestProjector_BehindCamera(t *testing.T) {
	p := newProjector(testCamera(), 80, 24)

	if _, _, _, ok := p.project(orbit.Vec3{Z: 20}); ok {
		t.Error("point behind the camera should not project")
	}
	if _, _, ok := p.direction(orbit.Vec3{Z: 1}); ok {
		t.Error("direction behind the camera should not project")
	}
	if x, y, ok := p.direction(orbit.Vec3{Z: -1}); !ok || x != 40 || y != 12 {
		t.Errorf("forward direction = (%d, %d, %v), want (40, 12, true)", x, y, ok)
	}
}

func TestProjector_RadiusShrinksWithDepth(t *testing.T) {
	p := newProjector(testCamera(), 80, 24)

	nearR := p.radius(1, 5)
	farR := p.radius(1, 20)
	if nearR <= farR {
		t.Errorf("radius(1, 5) = %v should exceed radius(1, 20) = %v", nearR, farR)
	}
	if r := p.radius(1, 0); r != 0 {
		t.Errorf("radius at zero depth = %v, want 0", r)
	}
}

func TestStarDirection_Unit(t *testing.T) {
	for _, s := range brightStars {
		d := starDirection(s.raDeg, s.decDeg)
		if n := d.Norm(); n < 0.999 || n > 1.001 {
			t.Errorf("star at ra=%v dec=%v has norm %v", s.raDeg, s.decDeg, n)
		}
	}
}

func TestCanvas_Render(t *testing.T) {
	c := newCanvas(4, 2)
	c.set(0, 0, 'a', "", false)
	c.text(2, 1, "xyz", "", false)
	c.set(9, 9, '!', "", false)

	if got := c.render(); got != "a   \n  xy" {
		t.Errorf("render = %q, want %q", got, "a   \n  xy")
	}
	c.setIfEmpty(0, 0, 'b', "", false)
	if c.at(0, 0).ch != 'a' {
		t.Error("setIfEmpty should not overwrite")
	}
	if c.at(-1, 0).ch != ' ' {
		t.Error("out-of-range cells should read blank")
	}
}

func TestHitTest(t *testing.T) {
	bodies := []placed{
		{id: "far", x: 10, y: 5, rx: 3, ry: 1.5, depth: 20},
		{id: "near", x: 11, y: 5, rx: 1, ry: 0.5, depth: 5},
	}

	tests := []struct {
		x, y int
		want string
		ok   bool
	}{
		{11, 5, "near", true},
		{8, 5, "far", true},
		{10, 9, "", false},
		{30, 5, "", false},
	}
	for _, tt := range tests {
		got, ok := hitTest(bodies, tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Errorf("hitTest(%d, %d) = %q, %v, want %q, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func galaxyFrame(bodies ...session.BodyFrame) session.Frame {
	return session.Frame{
		Scale:  1,
		Camera: session.CameraFrame{Position: orbit.Vec3{Z: 25}},
		Bodies: bodies,
	}
}

func TestRenderGalaxy_Placement(t *testing.T) {
	ipod := scene.Body{ID: "ipod", Label: "iPod", Color: "#e0e0e0", Kind: scene.KindPlayer}
	tvBody := scene.Body{ID: "tv", Label: "TV", Color: "#8b5e3c", Kind: scene.KindMediaPanel}
	belt := scene.Body{ID: "belt", Label: "Belt", Color: "#8a8a9a", Kind: scene.KindDecorative}

	f := galaxyFrame(
		session.BodyFrame{Body: ipod, Visible: true, Scale: 1},
		session.BodyFrame{Body: tvBody, Position: orbit.Vec3{X: 4}, Visible: false, Scale: 1},
		session.BodyFrame{Body: belt, Position: orbit.Vec3{X: -4}, Visible: true, Scale: 1},
	)

	out, hits := renderGalaxy(f, 80, 24, galaxyOptions{labels: LabelAll})
	if len(hits) != 1 || hits[0].id != "ipod" {
		t.Fatalf("hits = %+v, want only ipod", hits)
	}
	if hits[0].x != 40 || hits[0].y != 12 {
		t.Errorf("ipod at (%d, %d), want (40, 12)", hits[0].x, hits[0].y)
	}
	if !strings.Contains(out, "iPod") {
		t.Error("label mode all should draw the ipod label")
	}
	if strings.Contains(out, "TV") {
		t.Error("hidden bodies should not be labelled")
	}
	if strings.Contains(out, "Belt") {
		t.Error("decorative bodies should not be labelled")
	}
}

func TestRenderGalaxy_LabelModes(t *testing.T) {
	ipod := scene.Body{ID: "ipod", Label: "iPod", Color: "#e0e0e0", Kind: scene.KindPlayer}

	tests := []struct {
		name    string
		mode    LabelMode
		hovered bool
		want    bool
	}{
		{"hover shows hovered", LabelHover, true, true},
		{"hover hides others", LabelHover, false, false},
		{"none hides hovered", LabelNone, true, false},
		{"all shows unhovered", LabelAll, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := galaxyFrame(session.BodyFrame{Body: ipod, Visible: true, Hovered: tt.hovered, Scale: 1})
			out, _ := renderGalaxy(f, 80, 24, galaxyOptions{labels: tt.mode})
			if got := strings.Contains(out, "iPod"); got != tt.want {
				t.Errorf("label drawn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderGalaxy_Empty(t *testing.T) {
	out, hits := renderGalaxy(galaxyFrame(), 0, 0, galaxyOptions{})
	if out != "" || hits != nil {
		t.Errorf("zero-size render = %q, %v", out, hits)
	}
}

func TestLabelMode_Cycle(t *testing.T) {
	l := LabelHover
	seen := []string{l.String()}
	for i := 0; i < 3; i++ {
		l = l.next()
		seen = append(seen, l.String())
	}
	if got := strings.Join(seen, ","); got != "hover,all,none,hover" {
		t.Errorf("cycle = %s, want hover,all,none,hover", got)
	}
}

func TestWheelButton(t *testing.T) {
	center := input.Point{X: 100, Y: 100}

	tests := []struct {
		name string
		p    input.Point
		want menu.Command
		ok   bool
	}{
		{"center", input.Point{X: 104, Y: 96}, menu.CmdSelect, true},
		{"top", input.Point{X: 100, Y: 50}, menu.CmdBack, true},
		{"bottom", input.Point{X: 100, Y: 150}, menu.CmdTogglePlay, true},
		{"left", input.Point{X: 50, Y: 100}, menu.CmdPrevTrack, true},
		{"right", input.Point{X: 150, Y: 100}, menu.CmdNextTrack, true},
		{"outside", input.Point{X: 300, Y: 100}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wheelButton(center, tt.p)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("wheelButton = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestWheelCenter_MatchesRenderedWheel(t *testing.T) {
	col, row := wheelOrigin()
	got := wheelCenter(0, 0)
	want := cellCenter(col+wheelCols/2, row+wheelRows/2)
	if got != want {
		t.Errorf("wheelCenter = %+v, want %+v", got, want)
	}

	// The panel body has no border row; MENU is on the wheel's second row.
	lines := strings.Split(playerPanel(session.Frame{Menu: menu.PageView{Page: menu.PageMain}}), "\n")
	menuRow := row - 1 + 1
	if !strings.Contains(lines[menuRow], "MENU") {
		t.Errorf("line %d = %q, want MENU", menuRow, lines[menuRow])
	}
}

func TestTVButtonAt(t *testing.T) {
	tests := []struct {
		col, row int
		want     int
		ok       bool
	}{
		{2, tvButtonRow, 1, true},
		{4, tvButtonRow, 1, true},
		{5, tvButtonRow, 0, false},
		{6, tvButtonRow, 2, true},
		{2, tvButtonRow + 1, 0, false},
		{0, tvButtonRow, 0, false},
		{2 + 4*len(content.Channels), tvButtonRow, 0, false},
	}
	for _, tt := range tests {
		got, ok := tvButtonAt(tt.col, tt.row)
		if got != tt.want || ok != tt.ok {
			t.Errorf("tvButtonAt(%d, %d) = %d, %v, want %d, %v", tt.col, tt.row, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlayerPanel(t *testing.T) {
	tests := []struct {
		name string
		view menu.PageView
		want []string
	}{
		{
			name: "list",
			view: menu.PageView{Page: menu.PageMain, Title: "iPod", Items: []string{"Experience", "Skills"}, Active: 1},
			want: []string{"iPod", "Experience", "Skills ", "›", "MENU"},
		},
		{
			name: "detail",
			view: menu.PageView{Page: menu.PageEducation, Title: "Education", Lines: []string{"first", "second"}, Scroll: 1},
			want: []string{"Education", "second"},
		},
		{
			name: "now playing",
			view: menu.PageView{Page: menu.PageNowPlaying, Title: "Now Playing", Playing: true, Now: &menu.NowPlaying{
				Track: content.Track{Title: "Song", Artist: "Band"}, Number: 2, Count: 4,
				Elapsed: "0:30", Remaining: "-2:30", Progress: 0.5,
			}},
			want: []string{"2 of 4", "Song", "Band", "0:30", "-2:30", "❚❚▶"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := playerPanel(session.Frame{Menu: tt.view})
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("panel missing %q:\n%s", w, out)
				}
			}
		})
	}

	out := playerPanel(session.Frame{Menu: menu.PageView{Page: menu.PageEducation, Lines: []string{"first", "second"}, Scroll: 1}})
	if strings.Contains(out, "first") {
		t.Error("scrolled detail should hide the first line")
	}
}

func TestTVPanel(t *testing.T) {
	ch := content.Channels[0]

	tests := []struct {
		name  string
		state tv.State
		want  []string
	}{
		{"muted", tv.State{On: true, Brightness: 100}, []string{fmt.Sprintf("ch %d", ch.ID), ch.Label, "mut", "PWR", "on"}},
		{"volume", tv.State{On: true, Volume: 40, Brightness: 100}, []string{" 40"}},
		{"off", tv.State{Brightness: 100}, []string{"off"}},
		{"turning off", tv.State{On: true, Power: tv.PowerTurningOff, Brightness: 100}, []string{"turning off"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tvPanel(session.Frame{TV: tt.state, Channel: ch}, 0)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("panel missing %q", w)
				}
			}
		})
	}
}

func TestTVScreen_Rows(t *testing.T) {
	states := []tv.State{
		{On: true, Brightness: 100},
		{On: true, Static: true, Brightness: 100},
		{Brightness: 100},
		{On: true, Power: tv.PowerTurningOff, Brightness: 100},
	}
	for _, st := range states {
		if got := len(tvScreen(st, content.Channels[0], 3)); got != tvScreenRows {
			t.Errorf("tvScreen(%+v) has %d rows, want %d", st, got, tvScreenRows)
		}
	}
}

func TestDocumentPanel(t *testing.T) {
	out := documentPanel(content.Resume, 0)
	if !strings.Contains(out, content.Resume.Title) {
		t.Error("document panel should show the title")
	}
	for _, s := range content.Resume.Sections {
		if !strings.Contains(out, s.Heading) {
			t.Errorf("document panel missing section %q", s.Heading)
		}
	}

	short := documentPanel(content.Resume, 5)
	if n := len(strings.Split(short, "\n")); n != 5 {
		t.Errorf("clipped panel has %d lines, want 5", n)
	}
}

func TestVideoPanel(t *testing.T) {
	b := scene.Body{ID: "snowboard", Label: "Snowboard", Kind: scene.KindShowcaseVideo, VideoID: "abc"}

	stopped := videoPanel(session.Frame{}, b)
	if !strings.Contains(stopped, "stopped") || !strings.Contains(stopped, content.VideoURL("abc")) {
		t.Errorf("stopped panel = %q", stopped)
	}

	playing := videoPanel(session.Frame{Surface: media.SurfaceStatus{VideoID: "abc", Showing: true}}, b)
	if !strings.Contains(playing, "playing") {
		t.Errorf("playing panel = %q", playing)
	}

	empty := videoPanel(session.Frame{}, scene.Body{Label: "Soon"})
	if !strings.Contains(empty, "Nothing to show") {
		t.Errorf("empty panel = %q", empty)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncate me", 6, "trunc…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestGradientColor_Ends(t *testing.T) {
	if got := gradientColor(9, 10); got != gradientStops[len(gradientStops)-1] {
		t.Errorf("last column = %s, want %s", got, gradientStops[len(gradientStops)-1])
	}
	if got := gradientColor(0, 1); got != gradientStops[0] {
		t.Errorf("single column = %s, want %s", got, gradientStops[0])
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	sess, err := session.New(session.DefaultConfig(), nil, session.Deps{})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	t.Cleanup(func() { sess.Close() })
	return New(sess, 30)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before size = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Fatal("model should be ready after a window size")
	}
	out := m.View()
	if !strings.Contains(out, "LS-GALAXY") {
		t.Error("view should contain the title")
	}
	if got := len(strings.Split(out, "\n")); got != 40 {
		t.Errorf("view has %d lines, want 40", got)
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_Toggles(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m = next.(Model)
	if m.labels != LabelAll {
		t.Errorf("labels = %v, want all", m.labels)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	if m.showStars {
		t.Error("s should hide stars")
	}
}
