package ui

import (
	"math"

	"github.com/litescript/ls-galaxy/internal/orbit"
	"github.com/litescript/ls-galaxy/internal/session"
)

// Terminal cell size in pixels. Cells are roughly twice as tall as wide.
const (
	cellW = 8.0
	cellH = 16.0
)

const (
	fovDeg = 60.0
	near   = 0.1
)

var worldUp = orbit.Vec3{Y: 1}

// projector maps scene coordinates onto a character grid using a pinhole
// camera with a vertical field of view.
type projector struct {
	pos     orbit.Vec3
	right   orbit.Vec3
	up      orbit.Vec3
	fwd     orbit.Vec3
	tanHalf float64
	aspect  float64 // Grid width/height in pixels
	w, h    int
}

func newProjector(cam session.CameraFrame, w, h int) projector {
	fwd := cam.LookAt.Sub(cam.Position).Normalized()
	if fwd.Norm() == 0 {
		fwd = orbit.Vec3{Z: -1}
	}
	right := fwd.Cross(worldUp).Normalized()
	if right.Norm() == 0 {
		right = orbit.Vec3{X: 1}
	}
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) * cellW / (float64(h) * cellH)
	}
	return projector{
		pos:     cam.Position,
		right:   right,
		up:      right.Cross(fwd),
		fwd:     fwd,
		tanHalf: math.Tan(fovDeg * math.Pi / 360),
		aspect:  aspect,
		w:       w,
		h:       h,
	}
}

// project returns the grid cell of a scene point and its depth along the
// view axis. ok is false behind the camera or off the grid.
func (p projector) project(v orbit.Vec3) (x, y int, depth float64, ok bool) {
	d := v.Sub(p.pos)
	depth = d.Dot(p.fwd)
	if depth < near {
		return 0, 0, depth, false
	}
	x, y, ok = p.toGrid(d.Dot(p.right)/depth, d.Dot(p.up)/depth)
	return x, y, depth, ok
}

// direction projects a point at infinity, ignoring camera translation.
func (p projector) direction(dir orbit.Vec3) (x, y int, ok bool) {
	z := dir.Dot(p.fwd)
	if z <= 0 {
		return 0, 0, false
	}
	return p.toGrid(dir.Dot(p.right)/z, dir.Dot(p.up)/z)
}

func (p projector) toGrid(sx, sy float64) (int, int, bool) {
	ndcX := sx / (p.tanHalf * p.aspect)
	ndcY := sy / p.tanHalf
	x := int(math.Floor((ndcX + 1) / 2 * float64(p.w)))
	y := int(math.Floor((1 - ndcY) / 2 * float64(p.h)))
	return x, y, x >= 0 && x < p.w && y >= 0 && y < p.h
}

// radius returns how many columns a sphere of the given scene radius spans
// at depth.
func (p projector) radius(r, depth float64) float64 {
	if depth < near {
		return 0
	}
	return r / (depth * p.tanHalf * p.aspect) * float64(p.w) / 2
}
