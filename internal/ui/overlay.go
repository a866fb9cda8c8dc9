package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/input"
	"github.com/litescript/ls-galaxy/internal/menu"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/session"
	"github.com/litescript/ls-galaxy/internal/tv"
)

// Panel geometry in cells. The panel is a rounded border with one column of
// padding on each side.
const (
	panelW     = 44
	panelInner = panelW - 4
	screenRows = 10

	wheelCols = 17
	wheelRows = 9
)

// Wheel radii in pixels.
const (
	wheelOuter = 64.0
	wheelInner = 25.0
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
)

// renderPanel returns the side panel for the focused body, or "" when no
// panel applies.
func renderPanel(f session.Frame, b scene.Body, anim, height int) string {
	var body string
	switch b.Kind {
	case scene.KindPlayer:
		body = playerPanel(f)
	case scene.KindMediaPanel:
		body = tvPanel(f, anim)
	case scene.KindDocument:
		body = documentPanel(content.Resume, height-2)
	case scene.KindShowcaseVideo, scene.KindGeneric:
		body = videoPanel(f, b)
	default:
		return ""
	}
	return panelStyle.Width(panelW - 2).Render(body)
}

// wheelOrigin is the wheel's top-left cell relative to the panel.
func wheelOrigin() (col, row int) {
	return 2 + (panelInner-wheelCols)/2, 1 + screenRows + 1
}

// wheelCenter converts the panel's top-left cell into the wheel centre in
// pixels.
func wheelCenter(panelX, panelY int) input.Point {
	col, row := wheelOrigin()
	return cellCenter(panelX+col+wheelCols/2, panelY+row+wheelRows/2)
}

// cellCenter returns the pixel centre of a terminal cell.
func cellCenter(col, row int) input.Point {
	return input.Point{X: (float64(col) + 0.5) * cellW, Y: (float64(row) + 0.5) * cellH}
}

// wheelButton maps a click on the wheel to a menu command.
func wheelButton(center, p input.Point) (menu.Command, bool) {
	dx := p.X - center.X
	dy := p.Y - center.Y
	d := math.Hypot(dx, dy)
	switch {
	case d > wheelOuter+cellW:
		return 0, false
	case d <= wheelInner:
		return menu.CmdSelect, true
	case math.Abs(dy) >= math.Abs(dx) && dy < 0:
		return menu.CmdBack, true
	case math.Abs(dy) >= math.Abs(dx):
		return menu.CmdTogglePlay, true
	case dx < 0:
		return menu.CmdPrevTrack, true
	default:
		return menu.CmdNextTrack, true
	}
}

func playerPanel(f session.Frame) string {
	v := f.Menu
	lines := make([]string, 0, screenRows+1+wheelRows)
	lines = append(lines, screenTitle(v))
	lines = append(lines, dimStyle.Render(strings.Repeat("─", panelInner)))

	var body []string
	switch {
	case v.Page == menu.PageNowPlaying:
		body = nowPlayingLines(v.Now)
	case v.Page.IsList():
		body = listLines(v.Items, v.Active, screenRows-2)
	default:
		for i := v.Scroll; i < len(v.Lines) && len(body) < screenRows-2; i++ {
			body = append(body, rowStyle.Render(truncateRunes(v.Lines[i], panelInner)))
		}
	}
	for len(body) < screenRows-2 {
		body = append(body, "")
	}
	lines = append(lines, body...)
	lines = append(lines, "")

	pad := strings.Repeat(" ", (panelInner-wheelCols)/2)
	for _, row := range strings.Split(renderWheel(v.Playing), "\n") {
		lines = append(lines, pad+row)
	}
	return strings.Join(lines, "\n")
}

func screenTitle(v menu.PageView) string {
	title := v.Title
	switch v.Direction {
	case menu.DirForward:
		title = "» " + title
	case menu.DirBackward:
		title = "« " + title
	}
	icon := "❚❚"
	if v.Playing {
		icon = "▶"
	}
	gap := panelInner - lipgloss.Width(title) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	return panelTitleStyle.Render(title) + strings.Repeat(" ", gap) + accentStyle.Render(icon)
}

// listLines windows items around the active one.
func listLines(items []string, active, rows int) []string {
	start := 0
	if active >= rows {
		start = active - rows + 1
	}
	var out []string
	for i := start; i < len(items) && len(out) < rows; i++ {
		text := truncateRunes(items[i], panelInner-2)
		if i == active {
			text += strings.Repeat(" ", panelInner-2-lipgloss.Width(text)) + " ›"
			out = append(out, selectedRowStyle.Render(text))
			continue
		}
		out = append(out, rowStyle.Render(text))
	}
	return out
}

func nowPlayingLines(np *menu.NowPlaying) []string {
	if np == nil {
		return []string{dimStyle.Render("No tracks")}
	}
	return []string{
		labelStyle.Render(fmt.Sprintf("%d of %d", np.Number, np.Count)),
		"",
		panelTitleStyle.Render(truncateRunes(np.Track.Title, panelInner)),
		rowStyle.Render(truncateRunes(np.Track.Artist, panelInner)),
		labelStyle.Render(truncateRunes(np.Track.Album, panelInner)),
		"",
		progressBar(np.Progress, panelInner),
		splitLine(np.Elapsed, np.Remaining, panelInner),
	}
}

// renderWheel draws the click wheel. Both radii are in pixels so the ring
// stays round on non-square cells.
func renderWheel(playing bool) string {
	c := newCanvas(wheelCols, wheelRows)
	cx, cy := wheelCols/2, wheelRows/2
	for y := 0; y < wheelRows; y++ {
		for x := 0; x < wheelCols; x++ {
			d := math.Hypot(float64(x-cx)*cellW, float64(y-cy)*cellH)
			switch {
			case d < cellW:
				c.set(x, y, '●', "250", true)
			case d <= wheelInner:
				// Gap between the button and the ring.
			case d <= wheelOuter+4:
				c.set(x, y, '░', "238", false)
			}
		}
	}
	c.text(cx-2, 1, "MENU", "252", true)
	c.text(2, cy, "◀◀", "252", false)
	c.text(wheelCols-4, cy, "▶▶", "252", false)
	play := "▶❚❚"
	if playing {
		play = "❚❚▶"
	}
	c.text(cx-1, wheelRows-2, play, "252", false)
	return c.render()
}

func tvPanel(f session.Frame, anim int) string {
	st := f.TV
	lines := []string{
		panelTitleStyle.Render("TV") + "  " + labelStyle.Render(fmt.Sprintf("ch %d · %s", f.Channel.ID, f.Channel.Label)),
		"",
	}
	lines = append(lines, tvScreen(st, f.Channel, anim)...)
	lines = append(lines, "")

	var buttons []string
	for i := range content.Channels {
		label := fmt.Sprintf("[%d]", i+1)
		if i == st.Channel {
			buttons = append(buttons, selectedRowStyle.Render(label))
		} else {
			buttons = append(buttons, rowStyle.Render(label))
		}
	}
	lines = append(lines, strings.Join(buttons, " "))
	lines = append(lines, "")

	power := "on"
	if !st.On {
		power = "off"
	}
	if st.Power != tv.PowerIdle {
		power = "turning " + st.Power.String()
	}
	lines = append(lines, labelStyle.Render("PWR ")+rowStyle.Render(power))

	vol := fmt.Sprintf("%3d", st.Volume)
	if st.Volume == 0 {
		vol = "mut"
	}
	lines = append(lines,
		levelLine("VOL", st.Volume, tv.MinVolume, tv.MaxVolume, vol),
		levelLine("HUE", st.Hue, tv.MinHue, tv.MaxHue, fmt.Sprintf("%3d", st.Hue)),
		levelLine("BRT", st.Brightness, tv.MinBrightness, tv.MaxBrightness, fmt.Sprintf("%3d", st.Brightness)),
	)
	return strings.Join(lines, "\n")
}

const tvScreenRows = 8

// tvButtonRow is the channel button row relative to the panel: border,
// title, blank, screen, blank.
const tvButtonRow = 3 + tvScreenRows + 1

// tvScreen draws the picture: black when off, a collapsing line while
// powering off, noise while switching, otherwise the channel tinted by hue
// and brightness.
func tvScreen(st tv.State, ch content.Channel, anim int) []string {
	w := panelInner
	blank := lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Render(strings.Repeat(" ", w))
	out := make([]string, tvScreenRows)

	switch {
	case st.Power == tv.PowerTurningOff:
		for i := range out {
			out[i] = blank
		}
		out[tvScreenRows/2] = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).
			Foreground(lipgloss.Color("255")).Render(centerText(strings.Repeat("─", w/3), w))
	case !st.On:
		for i := range out {
			out[i] = blank
		}
	case st.Static:
		noise := []rune(" .:░▒▓")
		for y := range out {
			var b strings.Builder
			for x := 0; x < w; x++ {
				b.WriteRune(noise[noiseAt(x, y, anim)%len(noise)])
			}
			out[y] = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).Render(b.String())
		}
	default:
		bg := screenColor(st.Hue, st.Brightness)
		style := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color("255"))
		for i := range out {
			text := strings.Repeat(" ", w)
			switch i {
			case tvScreenRows/2 - 1:
				text = centerText(ch.Label, w)
			case tvScreenRows / 2:
				text = centerText("▶ "+ch.VideoID, w)
			}
			out[i] = style.Render(text)
		}
	}
	return out
}

// screenColor tints the picture. Brightness 100 is neutral.
func screenColor(hue, brightness int) string {
	v := clamp01(float64(brightness) / float64(tv.MaxBrightness) * 0.6)
	return colorful.Hsv(float64(hue), 0.45, v).Clamped().Hex()
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// noiseAt is a cheap per-cell hash so static changes every animation tick.
func noiseAt(x, y, tick int) int {
	h := uint32(x*73856093) ^ uint32(y*19349663) ^ uint32(tick*83492791)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return int(h & 0x7fffffff)
}

func levelLine(label string, v, lo, hi int, value string) string {
	t := 0.0
	if hi > lo {
		t = float64(v-lo) / float64(hi-lo)
	}
	return labelStyle.Render(label+" ") + progressBar(t, panelInner-9) + " " + rowStyle.Render(value)
}

func documentPanel(doc content.Document, height int) string {
	wrap := lipgloss.NewStyle().Width(panelInner)
	var lines []string
	lines = append(lines, panelTitleStyle.Render(doc.Title))
	lines = append(lines, strings.Split(wrap.Foreground(lipgloss.Color("244")).Render(doc.Subtitle), "\n")...)
	for _, s := range doc.Sections {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(s.Heading))
		for _, l := range s.Lines {
			lines = append(lines, strings.Split(wrap.Foreground(lipgloss.Color("252")).Render("• "+l), "\n")...)
		}
	}
	lines = append(lines, "", dimStyle.Render(truncateRunes(doc.Footer, panelInner)))
	if height > 0 && len(lines) > height {
		lines = append(lines[:height-1], dimStyle.Render("…"))
	}
	return strings.Join(lines, "\n")
}

func videoPanel(f session.Frame, b scene.Body) string {
	lines := []string{panelTitleStyle.Render(b.Label), ""}
	if b.VideoID == "" {
		lines = append(lines, dimStyle.Render("Nothing to show yet"))
		return strings.Join(lines, "\n")
	}
	status := dimStyle.Render("■ stopped")
	if f.Surface.Showing && f.Surface.VideoID == b.VideoID {
		status = accentStyle.Render("▶ playing")
	}
	lines = append(lines,
		status,
		labelStyle.Render("video ")+rowStyle.Render(b.VideoID),
		dimStyle.Render(truncateRunes(content.VideoURL(b.VideoID), panelInner)),
	)
	return strings.Join(lines, "\n")
}

// progressBar renders t in [0,1] as a filled bar of the given width.
func progressBar(t float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(clamp01(t) * float64(width)))
	on := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD"))
	return on.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

func splitLine(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return labelStyle.Render(left) + strings.Repeat(" ", gap) + labelStyle.Render(right)
}

func centerText(s string, width int) string {
	s = truncateRunes(s, width)
	left := (width - lipgloss.Width(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-lipgloss.Width(s))
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
