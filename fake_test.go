// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"fmt"
	"testing"
)

// fakePresenter models a GPU with FramesInFlight fences and a scripted
// acquire order. It records every call and flags uniform writes to images
// whose last submission has not been waited.
type fakePresenter struct {
	t *testing.T

	images  int
	acquire []int // scripted image order, cycled
	next    int

	calls []string

	// busy[image] = slot whose submission of image has not been waited.
	busy map[int]int

	// waitedSinceSubmit[slot] must be true before ResetFrame(slot).
	waitedSinceSubmit [FramesInFlight]bool

	// fence state per slot: signaled, or armed with a submission that will
	// signal it. A fence that is neither would never signal.
	signaled [FramesInFlight]bool
	armed    [FramesInFlight]bool

	uniforms map[int][]byte

	failOn map[string]error
	closed int
}

func newFakePresenter(t *testing.T, images int, acquire ...int) *fakePresenter {
	t.Helper()
	if len(acquire) == 0 {
		for i := range images {
			acquire = append(acquire, i)
		}
	}
	f := &fakePresenter{
		t:        t,
		images:   images,
		acquire:  acquire,
		busy:     make(map[int]int),
		uniforms: make(map[int][]byte),
		failOn:   make(map[string]error),
	}
	for i := range f.waitedSinceSubmit {
		f.waitedSinceSubmit[i] = true
		f.signaled[i] = true
	}
	return f
}

func (f *fakePresenter) record(format string, args ...any) error {
	call := fmt.Sprintf(format, args...)
	f.calls = append(f.calls, call)
	if err, ok := f.failOn[callName(call)]; ok {
		return err
	}
	return nil
}

func callName(call string) string {
	for i, c := range call {
		if c == ' ' {
			return call[:i]
		}
	}
	return call
}

func (f *fakePresenter) ImageCount() int { return f.images }

func (f *fakePresenter) WaitFrame(slot int) error {
	if err := f.record("wait %d", slot); err != nil {
		return err
	}
	if !f.signaled[slot] && !f.armed[slot] {
		f.t.Errorf("WaitFrame(%d) on a reset fence with no submission would block forever", slot)
		return fmt.Errorf("fence %d never signals", slot)
	}
	f.signaled[slot] = true
	f.armed[slot] = false
	for img, s := range f.busy {
		if s == slot {
			delete(f.busy, img)
		}
	}
	f.waitedSinceSubmit[slot] = true
	return nil
}

func (f *fakePresenter) ResetFrame(slot int) error {
	if !f.waitedSinceSubmit[slot] {
		f.t.Errorf("ResetFrame(%d) without a preceding wait", slot)
	}
	if err := f.record("reset %d", slot); err != nil {
		return err
	}
	f.signaled[slot] = false
	return nil
}

func (f *fakePresenter) AcquireImage(slot int) (int, error) {
	img := f.acquire[f.next%len(f.acquire)]
	f.next++
	if err := f.record("acquire %d", slot); err != nil {
		return 0, err
	}
	return img, nil
}

func (f *fakePresenter) WriteUniform(image int, data []byte) error {
	if owner, ok := f.busy[image]; ok {
		f.t.Errorf("WriteUniform(%d) while slot %d may still read it", image, owner)
	}
	if len(data) != UniformSize {
		f.t.Errorf("WriteUniform(%d) got %d bytes, want %d", image, len(data), UniformSize)
	}
	f.uniforms[image] = append([]byte(nil), data...)
	return f.record("write %d", image)
}

func (f *fakePresenter) Submit(slot, image int) error {
	if err := f.record("submit %d %d", slot, image); err != nil {
		return err
	}
	f.busy[image] = slot
	f.waitedSinceSubmit[slot] = false
	f.armed[slot] = true
	return nil
}

func (f *fakePresenter) Present(slot, image int) error {
	return f.record("present %d %d", slot, image)
}

func (f *fakePresenter) WaitIdle() error {
	if err := f.record("idle"); err != nil {
		return err
	}
	clear(f.busy)
	for i := range f.armed {
		if f.armed[i] {
			f.signaled[i], f.armed[i] = true, false
		}
	}
	return nil
}

func (f *fakePresenter) Close() error {
	f.closed++
	return f.WaitIdle()
}

type fakeWindow struct {
	cursor   Point
	rect     Rect
	centered []Point
	shown    []bool
}

func (w *fakeWindow) CursorPos() Point { return w.cursor }
func (w *fakeWindow) Rect() Rect       { return w.rect }

func (w *fakeWindow) CenterOn(p Point) {
	w.centered = append(w.centered, p)
	dx, dy := w.rect.Dx(), w.rect.Dy()
	w.rect.Min = Point{p.X - dx/2, p.Y - dy/2}
	w.rect.Max = Point{w.rect.Min.X + dx, w.rect.Min.Y + dy}
}

func (w *fakeWindow) SetVisible(v bool) { w.shown = append(w.shown, v) }
