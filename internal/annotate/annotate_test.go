// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package annotate

import (
	"image"
	"testing"

	"github.com/gogpu/radial"
)

func TestLabelPointMatchesHitTest(t *testing.T) {
	g := radial.DefaultGeometry()
	const w, h = 400, 400
	window := radial.Rect{Max: radial.Point{X: w, Y: h}}

	for i := range g.Segments {
		p := LabelPoint(g, i, w, h)
		nx, ny := radial.Normalize(radial.Point{X: p.X, Y: p.Y}, window)
		got, ok := g.Segment(nx, ny)
		if !ok || got != i {
			t.Errorf("label %d at %v hit-tests to (%d, %v)", i, p, got, ok)
		}
	}
}

func TestSegmentsDrawsPixels(t *testing.T) {
	g := radial.DefaultGeometry()
	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	Segments(img, g, 1)

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no label pixels drawn")
	}

	// The selected label is drawn in the highlight color.
	p := LabelPoint(g, 1, 200, 200)
	found := false
	for y := p.Y - 10; y <= p.Y+10 && !found; y++ {
		for x := p.X - 10; x <= p.X+10; x++ {
			if img.RGBAAt(x, y) == selectedColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("selected label not highlighted")
	}
}
