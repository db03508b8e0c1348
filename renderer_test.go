// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"errors"
	"testing"
	"time"
)

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func TestRendererHiddenDoesNothing(t *testing.T) {
	p := newFakePresenter(t, 2)
	win := &fakeWindow{rect: Rect{Max: Point{800, 600}}}
	r := NewRenderer(p, win, NewOverlayState())

	for range 3 {
		if err := r.RenderFrame(); err != nil {
			t.Fatal(err)
		}
	}
	if len(p.calls) != 0 {
		t.Errorf("hidden overlay issued GPU calls: %v", p.calls)
	}
}

func TestRendererVisibleFrame(t *testing.T) {
	p := newFakePresenter(t, 3)
	win := &fakeWindow{cursor: Point{400, 150}, rect: Rect{Max: Point{800, 600}}}
	state := NewOverlayState()
	state.Visible = true

	clock := &stepClock{t: time.Unix(100, 0), step: 500 * time.Millisecond}
	r := NewRenderer(p, win, state, WithClock(clock.now), WithGeometry(DefaultGeometry()))

	if err := r.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if state.Selected != 4 {
		t.Errorf("Selected = %d, want 4", state.Selected)
	}

	var u UniformFrameState
	if err := u.UnmarshalBinary(p.uniforms[0]); err != nil {
		t.Fatal(err)
	}
	if u.Time != 0.5 || u.ItemSelected != 4 {
		t.Errorf("uniform = %+v, want time 0.5 and item 4", u)
	}
	if r.Scheduler().Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Scheduler().Frames())
	}
}

func TestRendererClose(t *testing.T) {
	p := newFakePresenter(t, 2)
	r := NewRenderer(p, &fakeWindow{}, nil)

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if p.closed != 1 {
		t.Errorf("presenter closed %d times, want 1", p.closed)
	}
	r.State().Visible = true
	if err := r.RenderFrame(); !errors.Is(err, ErrClosed) {
		t.Errorf("RenderFrame after Close = %v, want ErrClosed", err)
	}
}

func TestRendererPropagatesErrors(t *testing.T) {
	p := newFakePresenter(t, 2)
	p.failOn["acquire"] = ErrSurfaceOutOfDate
	state := NewOverlayState()
	state.Visible = true
	r := NewRenderer(p, &fakeWindow{rect: Rect{Max: Point{10, 10}}}, state)

	if err := r.RenderFrame(); !errors.Is(err, ErrSurfaceOutOfDate) {
		t.Errorf("RenderFrame() = %v, want ErrSurfaceOutOfDate", err)
	}
}

func TestRendererStopsAfterAbortedFrame(t *testing.T) {
	p := newFakePresenter(t, 2)
	p.failOn["acquire"] = ErrSurfaceOutOfDate
	state := NewOverlayState()
	state.Visible = true
	r := NewRenderer(p, &fakeWindow{rect: Rect{Max: Point{10, 10}}}, state)

	if err := r.RenderFrame(); !errors.Is(err, ErrFrameAborted) {
		t.Fatalf("RenderFrame() = %v, want ErrFrameAborted", err)
	}
	delete(p.failOn, "acquire")
	p.calls = nil
	if err := r.RenderFrame(); !errors.Is(err, ErrSurfaceOutOfDate) {
		t.Errorf("second RenderFrame() = %v, want the first failure", err)
	}
	if len(p.calls) != 0 {
		t.Errorf("second RenderFrame reached the presenter: %v", p.calls)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
