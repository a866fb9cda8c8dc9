// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-galaxy/internal/content"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/session"
	"github.com/litescript/ls-galaxy/internal/version"
	"github.com/litescript/ls-galaxy/internal/view"
)

const (
	headerRows = 2
	footerRows = 1

	// Longest frame step fed to the session, so a stalled terminal does
	// not teleport bodies.
	maxStep = 0.1
)

// Msg types for Bubble Tea
type (
	// FrameMsg advances the simulation.
	FrameMsg time.Time

	// AnimTickMsg drives the spinner, shimmer, and TV static.
	AnimTickMsg time.Time
)

// press is a mouse press that may become a click on the wheel or a TV
// button when it is released without moving.
type press struct {
	active bool
	col    int
	row    int
	moved  bool
}

// Model is the root Bubble Tea model.
type Model struct {
	sess *session.Session
	fps  int

	width  int
	height int
	ready  bool

	last     time.Time
	frame    session.Frame
	canvas   string
	placed   []placed
	animTick int

	labels    LabelMode
	showStars bool
	press     press
}

// New creates a new root UI model driving sess at fps frames per second.
func New(sess *session.Session, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		sess:      sess,
		fps:       fps,
		frame:     sess.Frame(),
		labels:    LabelHover,
		showStars: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.fps),
		animTickCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.labels = m.labels.next()
		case "s":
			m.showStars = !m.showStars
		default:
			m.sess.Key(key)
		}
		m.redraw()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sess.Resize(float64(msg.Width) * cellW)
		m.placeWheel()
		m.redraw()

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.redraw()

	case FrameMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		if dt > maxStep {
			dt = maxStep
		}
		m.last = now
		m.frame = m.sess.Tick(dt)
		m.redraw()
		cmds = append(cmds, frameCmd(m.fps))

	case AnimTickMsg:
		m.animTick++
		cmds = append(cmds, animTickCmd())
	}

	return m, tea.Batch(cmds...)
}

// redraw refreshes the cached canvas and hit-test targets from the latest
// session frame.
func (m *Model) redraw() {
	m.frame = m.sess.Frame()
	w, h := m.canvasSize()
	m.canvas, m.placed = renderGalaxy(m.frame, w, h, galaxyOptions{
		stars:  m.showStars,
		labels: m.labels,
	})
}

// focusedBody returns the body the camera is holding on.
func (m Model) focusedBody() (scene.Body, bool) {
	if m.frame.View.Mode != view.ModeFocused {
		return scene.Body{}, false
	}
	return m.sess.Catalog().Get(m.frame.View.Body)
}

// panelOpen reports whether the side panel is shown. Narrow terminals get
// the canvas only.
func (m Model) panelOpen() bool {
	_, ok := m.focusedBody()
	return ok && m.width > panelW*2
}

func (m Model) canvasSize() (int, int) {
	w := m.width
	if m.panelOpen() {
		w -= panelW
	}
	h := m.height - headerRows - footerRows
	if h < 0 {
		h = 0
	}
	return w, h
}

// panelOrigin is the top-left cell of the side panel.
func (m Model) panelOrigin() (int, int) {
	return m.width - panelW, headerRows
}

// placeWheel tells the session where the click wheel is on screen.
func (m Model) placeWheel() {
	x, y := m.panelOrigin()
	m.sess.SetWheelBounds(wheelCenter(x, y), wheelOuter+cellW/2)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := cellCenter(msg.X, msg.Y)
	cx, cy := msg.X, msg.Y-headerRows

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.sess.Wheel(-100)
			return
		case tea.MouseButtonWheelDown:
			m.sess.Wheel(100)
			return
		case tea.MouseButtonRight:
			m.sess.Back()
			return
		case tea.MouseButtonLeft:
		default:
			return
		}
		if m.frame.View.Mode == view.ModeIdle {
			if id, ok := hitTest(m.placed, cx, cy); ok {
				m.sess.Select(id)
				return
			}
		}
		m.press = press{active: true, col: msg.X, row: msg.Y}
		m.sess.PointerDown(pt)

	case tea.MouseActionMotion:
		if m.press.active {
			if msg.X != m.press.col || msg.Y != m.press.row {
				m.press.moved = true
			}
			m.sess.PointerMove(pt)
			return
		}
		if m.frame.View.Mode == view.ModeIdle {
			id, _ := hitTest(m.placed, cx, cy)
			m.sess.Hover(id)
		}

	case tea.MouseActionRelease:
		if m.press.active && !m.press.moved {
			m.click(m.press.col, m.press.row)
		}
		m.press = press{}
		m.sess.PointerUp()
	}
}

// click handles a press and release on the same cell inside the panel.
func (m *Model) click(col, row int) {
	b, ok := m.focusedBody()
	if !ok {
		return
	}
	px, py := m.panelOrigin()
	switch b.Kind {
	case scene.KindPlayer:
		if cmd, ok := wheelButton(wheelCenter(px, py), cellCenter(col, row)); ok {
			m.sess.Command(cmd)
		}
	case scene.KindMediaPanel:
		if n, ok := tvButtonAt(col-px, row-py); ok {
			m.sess.Key(strconv.Itoa(n))
		}
	}
}

// tvButtonAt maps a panel-relative cell to a 1-based channel button.
func tvButtonAt(col, row int) (int, bool) {
	if row != tvButtonRow || col < 2 {
		return 0, false
	}
	i := (col - 2) / 4
	if (col-2)%4 == 3 || i >= len(content.Channels) {
		return 0, false
	}
	return i + 1, true
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	body := m.canvas
	if b, ok := m.focusedBody(); ok && m.panelOpen() {
		_, h := m.canvasSize()
		panel := renderPanel(m.frame, b, m.animTick, h)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := "  ✦ LS-GALAXY"
	var b strings.Builder
	runes := []rune(title)
	for i, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(i, len(runes)))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  portfolio in orbit · v%s", version.Version)))
	b.WriteString("\n")

	status := fmt.Sprintf("  t=%.0fs  scale %.2f  %s  labels:%s", m.frame.Elapsed, m.frame.Scale, m.frame.View, m.labels)
	if ev := m.sess.RecentEvents(1); len(ev) > 0 {
		status += "  last:" + string(ev[0].Type)
	}
	b.WriteString(dimStyle.Render(status))
	return b.String()
}

// gradientStops run blue -> purple -> magenta -> pink.
var gradientStops = []string{"#3B82F6", "#8B5CF6", "#D946EF", "#EC4899"}

// gradientColor returns a hex color for a position along the title.
func gradientColor(col, width int) string {
	if width <= 1 {
		return gradientStops[0]
	}
	t := float64(col) / float64(width-1) * float64(len(gradientStops)-1)
	i := int(t)
	if i >= len(gradientStops)-1 {
		return gradientStops[len(gradientStops)-1]
	}
	a := hexColor(gradientStops[i])
	b := hexColor(gradientStops[i+1])
	return a.BlendLab(b, t-float64(i)).Clamped().Hex()
}

func (m Model) renderFooter() string {
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	st := m.frame.View
	switch {
	case st.Mode == view.ModeEntry:
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText("Approaching...")
	case st.InFlight():
		status = accentStyle.Render(spinner) + " " + m.renderShimmerText("Travelling...")
	default:
		status = accentStyle.Render("●") + dimStyle.Render(" "+st.String())
	}

	var help string
	switch b, _ := m.focusedBody(); {
	case st.Mode == view.ModeIdle:
		help = "click/1-5: select | tab: cycle | drag: pan | +/-: zoom | l: labels | s: stars | q: quit"
	case st.Mode != view.ModeFocused:
		help = "q: quit"
	case b.Kind == scene.KindPlayer:
		help = "wheel/↑↓: scroll | →: select | ←: back | space: play | n/p: track | esc: home"
	case b.Kind == scene.KindMediaPanel:
		help = "←/→: channel | ↑↓: volume | m: mute | p: power | h/H: hue | b/B: brightness | esc: home"
	default:
		help = "esc: home | l: labels | q: quit"
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + dimStyle.Render(help)
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	textLen := len(runes)
	if textLen == 0 {
		return ""
	}

	pos := m.animTick % (textLen + 8)
	base := hexColor("#504678")
	shine := hexColor("#B4A0DC")

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}
		t := 1 - float64(dist)/5
		if t < 0 {
			t = 0
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(base.BlendLab(shine, t).Clamped().Hex()))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}
