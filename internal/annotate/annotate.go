// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package annotate labels rendered menu snapshots with segment indices.
package annotate

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/radial"
)

var (
	labelColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	selectedColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// LabelPoint returns the pixel at the middle of segment i in a w by h image:
// halfway between the inner and outer radius, on the segment's mid angle.
// Angles follow HitTest, so the labels match what a cursor at that pixel
// would select.
func LabelPoint(g radial.Geometry, i, w, h int) image.Point {
	r := float64(g.Radius+g.InnerRadius) / 2
	a := (float64(i) + 0.5) * g.SegmentAngle()
	x := (1 + r*math.Cos(a)) / 2 * float64(w)
	y := (1 + r*math.Sin(a)) / 2 * float64(h)
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

// Segments draws each segment's index at its LabelPoint, highlighting the
// selected one, and writes a status line in the top-left corner.
func Segments(dst draw.Image, g radial.Geometry, selected int) {
	b := dst.Bounds()
	face := basicfont.Face7x13
	for i := range g.Segments {
		label := strconv.Itoa(i)
		col := labelColor
		if i == selected {
			col = selectedColor
		}
		p := LabelPoint(g, i, b.Dx(), b.Dy()).Add(b.Min)
		width := font.MeasureString(face, label).Ceil()
		drawString(dst, face, label, col, p.X-width/2, p.Y+face.Ascent/2)
	}

	status := "selected: none"
	if selected != radial.NoSegment {
		status = "selected: " + strconv.Itoa(selected)
	}
	drawString(dst, face, status, labelColor, b.Min.X+4, b.Min.Y+face.Ascent+2)
}

func drawString(dst draw.Image, face font.Face, s string, col color.Color, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
