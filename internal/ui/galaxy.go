package ui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/session"
)

// Canvas colors (grayscale for the background so bodies stand out)
const (
	starBright = "250"
	starDim    = "240"
	ringDim    = "#1E2238"
	ringBright = "#B8C2F0"
	labelColor = "249"
	rockColor  = "244"
)

const ringSamples = 120

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelHover LabelMode = iota // Only the hovered body
	LabelAll                    // Every visible body
	LabelNone                   // No labels
)

func (l LabelMode) next() LabelMode {
	return (l + 1) % 3
}

// String returns the mode name shown in the footer.
func (l LabelMode) String() string {
	switch l {
	case LabelAll:
		return "all"
	case LabelNone:
		return "none"
	default:
		return "hover"
	}
}

type cell struct {
	ch    rune
	color string
	bold  bool
}

// canvas is a character grid with a color per cell.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *canvas) at(x, y int) cell {
	if !c.inside(x, y) {
		return cell{ch: ' '}
	}
	return c.cells[y][x]
}

func (c *canvas) set(x, y int, ch rune, color string, bold bool) {
	if c.inside(x, y) {
		c.cells[y][x] = cell{ch: ch, color: color, bold: bold}
	}
}

// setIfEmpty draws only over blank cells.
func (c *canvas) setIfEmpty(x, y int, ch rune, color string, bold bool) {
	if c.inside(x, y) && c.cells[y][x].ch == ' ' {
		c.cells[y][x] = cell{ch: ch, color: color, bold: bold}
	}
}

// text writes s starting at (x, y), clipped to the grid.
func (c *canvas) text(x, y int, s, color string, bold bool) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, color, bold)
	}
}

// render joins the grid into styled lines. Runs of the same style share
// one escape sequence.
func (c *canvas) render() string {
	var b strings.Builder
	for y, row := range c.cells {
		var run strings.Builder
		cur := cell{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.color == "" && !cur.bold {
				b.WriteString(run.String())
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(cur.color)).Bold(cur.bold)
				b.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.ch == ' ' {
				cl.color, cl.bold = "", false
			}
			if cl.color != cur.color || cl.bold != cur.bold {
				flush()
				cur = cl
			}
			run.WriteRune(cl.ch)
		}
		flush()
		if y < len(c.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// placed is a drawn body, kept for pointer hit testing.
type placed struct {
	id     string
	x, y   int
	rx, ry float64 // Extent in columns and rows
	depth  float64
}

// hitTest returns the nearest body whose footprint contains (x, y).
func hitTest(bodies []placed, x, y int) (string, bool) {
	best := ""
	bestDepth := math.Inf(1)
	for _, p := range bodies {
		dx := float64(x-p.x) / (p.rx + 0.5)
		dy := float64(y-p.y) / (p.ry + 0.5)
		if dx*dx+dy*dy > 1 {
			continue
		}
		if p.depth < bestDepth {
			best, bestDepth = p.id, p.depth
		}
	}
	return best, best != ""
}

// bodyRadius is a body's size in scene units before hover scaling.
func bodyRadius(k scene.Kind) float64 {
	switch k {
	case scene.KindMediaPanel:
		return 0.9
	case scene.KindShowcaseVideo:
		return 0.8
	case scene.KindDocument:
		return 0.7
	case scene.KindDecorative:
		return 0.3
	default:
		return 0.6
	}
}

func bodyGlyph(k scene.Kind, hovered bool) rune {
	switch k {
	case scene.KindPlayer:
		return '◉'
	case scene.KindMediaPanel:
		return '▣'
	case scene.KindDocument:
		return '▤'
	case scene.KindShowcaseVideo:
		return '◈'
	}
	if hovered {
		return '●'
	}
	return '•'
}

// hexColor parses a catalog color, falling back to white.
func hexColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// ringColor fades an orbit ring from near-invisible to bright by opacity.
func ringColor(opacity float64) string {
	t := orbit.Clamp(opacity*2, 0, 1)
	return hexColor(ringDim).BlendLab(hexColor(ringBright), t).Clamped().Hex()
}

// highlight brightens a body color toward white.
func highlight(hex string, amount float64) string {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return hexColor(hex).BlendLab(white, amount).Clamped().Hex()
}

type galaxyOptions struct {
	stars  bool
	labels LabelMode
}

type drawBody struct {
	frame session.BodyFrame
	x, y  int
	depth float64
	cols  float64
}

// renderGalaxy draws one frame of the scene onto a w×h grid.
func renderGalaxy(f session.Frame, w, h int, opts galaxyOptions) (string, []placed) {
	c := newCanvas(w, h)
	if w == 0 || h == 0 {
		return "", nil
	}
	p := newProjector(f.Camera, w, h)

	if opts.stars {
		drawStars(c, p)
	}

	for _, bf := range f.Bodies {
		if bf.Visible && bf.Body.HasOrbitRing() {
			drawRing(c, p, bf, f.Scale)
		}
	}

	var bodies []drawBody
	for _, bf := range f.Bodies {
		if !bf.Visible {
			continue
		}
		x, y, depth, ok := p.project(bf.Position)
		if !ok {
			continue
		}
		bodies = append(bodies, drawBody{
			frame: bf,
			x:     x,
			y:     y,
			depth: depth,
			cols:  p.radius(bodyRadius(bf.Body.Kind)*bf.Scale, depth),
		})
	}
	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].depth > bodies[j].depth
	})

	var hits []placed
	for _, d := range bodies {
		if d.frame.Body.Decorative() {
			drawRocks(c, d)
			continue
		}
		drawSphere(c, d)
		hits = append(hits, placed{
			id:    d.frame.Body.ID,
			x:     d.x,
			y:     d.y,
			rx:    math.Max(d.cols, 1),
			ry:    math.Max(d.cols/2, 0.5),
			depth: d.depth,
		})
	}

	if opts.labels != LabelNone {
		for _, d := range bodies {
			bf := d.frame
			if bf.Body.Decorative() || (opts.labels == LabelHover && !bf.Hovered) {
				continue
			}
			label := bf.Body.Label
			if bf.Body.Locked {
				label += " (soon)"
			}
			if bf.Hovered {
				label = "◄ " + label
			}
			c.text(d.x+int(math.Ceil(d.cols))+2, d.y, label, labelColor, bf.Hovered)
		}
	}

	return c.render(), hits
}

func drawRing(c *canvas, p projector, bf session.BodyFrame, scale float64) {
	color := ringColor(bf.RingOpacity)
	for i := 0; i < ringSamples; i++ {
		theta := 2 * math.Pi * float64(i) / ringSamples
		x, y, _, ok := p.project(orbit.PositionAt(bf.Body.Orbit, theta, scale))
		if ok {
			c.setIfEmpty(x, y, '·', color, false)
		}
	}
}

// drawSphere draws a body as a glyph, or a shaded disc once it spans more
// than a couple of columns.
func drawSphere(c *canvas, d drawBody) {
	bf := d.frame
	color := bf.Body.Color
	if bf.Hovered {
		color = highlight(color, 0.35)
	} else {
		color = hexColor(color).Hex()
	}

	if d.cols < 1.5 {
		c.set(d.x, d.y, bodyGlyph(bf.Body.Kind, bf.Hovered), color, bf.Hovered)
		return
	}

	rx := d.cols
	ry := d.cols / 2
	edge := highlight(color, 0.15)
	for dy := -int(math.Ceil(ry)); dy <= int(math.Ceil(ry)); dy++ {
		for dx := -int(math.Ceil(rx)); dx <= int(math.Ceil(rx)); dx++ {
			nx := float64(dx) / rx
			ny := float64(dy) / ry
			r2 := nx*nx + ny*ny
			switch {
			case r2 > 1:
				continue
			case r2 > 0.7:
				c.set(d.x+dx, d.y+dy, '▓', edge, false)
			default:
				c.set(d.x+dx, d.y+dy, '█', color, false)
			}
		}
	}
	c.set(d.x, d.y, bodyGlyph(bf.Body.Kind, bf.Hovered), highlight(color, 0.8), true)
}

// drawRocks draws a decorative body as a small cluster.
func drawRocks(c *canvas, d drawBody) {
	c.setIfEmpty(d.x, d.y, '✧', hexColor(d.frame.Body.Color).Hex(), false)
	for _, off := range [][2]int{{-2, 0}, {2, 0}, {-1, 1}, {1, -1}} {
		c.setIfEmpty(d.x+off[0], d.y+off[1], '.', rockColor, false)
	}
}
