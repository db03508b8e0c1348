// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import "math"

// NoSegment is the selection value meaning "nothing selected". It is also the
// value written to UniformFrameState.ItemSelected in that case.
const NoSegment = -1

// Point is a position in screen pixels.
type Point struct {
	X, Y int
}

// Rect is a screen rectangle in pixels. Max is exclusive.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Center returns the center point of r, rounded toward Min.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Dx()/2, Y: r.Min.Y + r.Dy()/2}
}

// Normalize converts an absolute cursor position into normalized device
// coordinates of the window: nx grows to the right, ny grows upward, and the
// window edges map to -1 and 1. A degenerate window maps everything to the
// center.
func Normalize(cursor Point, window Rect) (nx, ny float32) {
	w, h := window.Dx(), window.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	relX := float32(cursor.X - window.Min.X)
	relY := float32(cursor.Y - window.Min.Y)
	nx = (relX/float32(w))*2 - 1
	ny = 1 - (relY/float32(h))*2
	return nx, ny
}

// HitTest returns the segment under the normalized cursor (nx, ny), or
// (NoSegment, false) inside the inner radius.
//
// The cursor is mirrored vertically into the shader's frame, the angle is
// taken with atan2 and folded into [0, 2π), and the segment is the floor of
// angle / (2π/segments). There is no outer cutoff. A point exactly on a
// boundary belongs to the segment that starts there.
func HitTest(g Geometry, nx, ny float32) (int, bool) {
	if g.Segments < 1 {
		return NoSegment, false
	}
	cx := float64(nx)
	cy := -float64(ny)

	dist := math.Sqrt(cx*cx + cy*cy)
	if dist < float64(g.InnerRadius) {
		return NoSegment, false
	}

	angle := math.Atan2(cy, cx)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	idx := int(math.Floor(angle / g.SegmentAngle()))
	// -tiny + 2π can round up to exactly 2π.
	if idx >= g.Segments {
		idx = g.Segments - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, true
}

// Segment is HitTest bound to g.
func (g Geometry) Segment(nx, ny float32) (int, bool) {
	return HitTest(g, nx, ny)
}
