// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"testing"
	"time"
)

type change struct{ prev, next int }

func recordChanges(s *OverlayState) *[]change {
	var got []change
	s.OnSelectionChange(func(prev, next int) {
		got = append(got, change{prev, next})
	})
	return &got
}

func TestProducerUniform(t *testing.T) {
	g := DefaultGeometry()
	state := NewOverlayState()
	p := NewProducer(g, state, nil)

	u := p.Produce(FrameInput{
		Cursor:  Point{400, 150},
		Window:  Rect{Max: Point{800, 600}},
		Elapsed: 2500 * time.Millisecond,
	})

	want := UniformFrameState{
		Radius:       g.Radius,
		InnerRadius:  g.InnerRadius,
		Segments:     int32(g.Segments),
		Time:         2.5,
		MousePos:     [2]float32{0, 0.5},
		SegmentGap:   g.SegmentGap,
		ItemSelected: 4,
	}
	if u != want {
		t.Errorf("Produce() = %+v, want %+v", u, want)
	}
	if state.Selected != 4 {
		t.Errorf("Selected = %d, want 4", state.Selected)
	}
}

func TestProducerNotifiesOncePerChange(t *testing.T) {
	state := NewOverlayState()
	changes := recordChanges(state)
	p := NewProducer(DefaultGeometry(), state, nil)
	win := Rect{Max: Point{800, 600}}

	frames := []Point{
		{400, 150}, // segment 4
		{400, 150},
		{401, 151}, // still 4
		{400, 300}, // center: none
		{400, 300},
		{799, 300}, // segment 0
		{400, 300}, // none
	}
	for _, c := range frames {
		p.Produce(FrameInput{Cursor: c, Window: win})
	}

	want := []change{
		{NoSegment, 4},
		{4, NoSegment},
		{NoSegment, 0},
		{0, NoSegment},
	}
	if len(*changes) != len(want) {
		t.Fatalf("changes = %v, want %v", *changes, want)
	}
	for i := range want {
		if (*changes)[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, (*changes)[i], want[i])
		}
	}
}

func TestProducerCenterClearsSelection(t *testing.T) {
	state := NewOverlayState()
	state.Selected = 2
	changes := recordChanges(state)
	p := NewProducer(DefaultGeometry(), state, nil)

	u := p.Produce(FrameInput{Cursor: Point{400, 300}, Window: Rect{Max: Point{800, 600}}})
	if u.ItemSelected != NoSegment {
		t.Errorf("ItemSelected = %d, want %d", u.ItemSelected, NoSegment)
	}
	if state.Selected != NoSegment {
		t.Errorf("Selected = %d, want NoSegment", state.Selected)
	}
	if len(*changes) != 1 || (*changes)[0] != (change{2, NoSegment}) {
		t.Errorf("changes = %v, want exactly one clear", *changes)
	}
}

func TestProducerNilState(t *testing.T) {
	p := NewProducer(DefaultGeometry(), nil, nil)
	u := p.Produce(FrameInput{Cursor: Point{799, 300}, Window: Rect{Max: Point{800, 600}}})
	if u.ItemSelected != 0 {
		t.Errorf("ItemSelected = %d, want 0", u.ItemSelected)
	}
}

func TestOverlayState(t *testing.T) {
	s := NewOverlayState()
	if s.Visible || s.HasSelection() {
		t.Fatalf("NewOverlayState() = %+v, want hidden with no selection", s)
	}
	changes := recordChanges(s)
	s.OnSelectionChange(nil)

	s.ClearSelection()
	if len(*changes) != 0 {
		t.Errorf("clearing an empty selection notified: %v", *changes)
	}
	s.setSelected(3)
	s.ClearSelection()
	if len(*changes) != 2 {
		t.Errorf("changes = %v, want 2", *changes)
	}
}
