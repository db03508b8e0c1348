// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"slices"
	"testing"
)

func TestGestureCommitOnRelease(t *testing.T) {
	state := NewOverlayState()
	win := &fakeWindow{cursor: Point{1000, 500}, rect: Rect{Max: Point{400, 400}}}
	var committed []int
	g := NewGesture(state, win, func(seg int) { committed = append(committed, seg) })

	g.Press()
	if !state.Visible {
		t.Fatal("Press did not show the overlay")
	}
	if want := (Rect{Min: Point{800, 300}, Max: Point{1200, 700}}); win.rect != want {
		t.Errorf("window rect = %v, want centered %v", win.rect, want)
	}

	state.setSelected(2)
	g.Release()

	if state.Visible {
		t.Error("Release did not hide the overlay")
	}
	if !slices.Equal(committed, []int{2}) {
		t.Errorf("committed = %v, want [2]", committed)
	}
	if state.HasSelection() {
		t.Errorf("Selected = %d after release, want NoSegment", state.Selected)
	}
	if !slices.Equal(win.shown, []bool{true, false}) {
		t.Errorf("window visibility = %v, want [true false]", win.shown)
	}
}

func TestGestureReleaseWithoutSelection(t *testing.T) {
	state := NewOverlayState()
	calls := 0
	g := NewGesture(state, &fakeWindow{}, func(int) { calls++ })

	g.Press()
	g.Release()
	if calls != 0 {
		t.Errorf("commit called %d times with no selection", calls)
	}
}

func TestGestureReleaseWhileHidden(t *testing.T) {
	state := NewOverlayState()
	state.Selected = 1
	calls := 0
	g := NewGesture(state, nil, func(int) { calls++ })

	g.Release()
	if calls != 0 || state.Selected != 1 {
		t.Errorf("release while hidden: calls=%d selected=%d", calls, state.Selected)
	}
}

func TestGestureNilCommit(t *testing.T) {
	state := NewOverlayState()
	g := NewGesture(state, nil, nil)
	g.Press()
	state.setSelected(0)
	g.Release()
	if state.HasSelection() {
		t.Error("selection not cleared with nil commit")
	}
}
