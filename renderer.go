// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"log/slog"
	"time"
)

// Renderer ties a Presenter, a Window and an OverlayState into the per-frame
// loop body. Callers own the loop and call RenderFrame once per iteration.
type Renderer struct {
	presenter Presenter
	window    Window
	state     *OverlayState

	scheduler *Scheduler
	producer  *Producer

	now    func() time.Time
	start  time.Time
	logger *slog.Logger

	closed bool
}

// NewRenderer returns a renderer drawing state through p. The elapsed-time
// clock starts now.
func NewRenderer(p Presenter, win Window, state *OverlayState, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if state == nil {
		state = NewOverlayState()
	}
	return &Renderer{
		presenter: p,
		window:    win,
		state:     state,
		scheduler: NewScheduler(p, o.logger),
		producer:  NewProducer(o.geometry, state, o.logger),
		now:       o.now,
		start:     o.now(),
		logger:    o.logger,
	}
}

// State returns the overlay state the renderer updates.
func (r *Renderer) State() *OverlayState { return r.state }

// Scheduler returns the frame scheduler.
func (r *Renderer) Scheduler() *Scheduler { return r.scheduler }

// RenderFrame draws one frame when the overlay is visible and does nothing
// otherwise. Errors from the GPU path are returned unretried.
func (r *Renderer) RenderFrame() error {
	if r.closed {
		return ErrClosed
	}
	if !r.state.Visible {
		return nil
	}
	return r.scheduler.Frame(func() UniformFrameState {
		return r.producer.Produce(FrameInput{
			Cursor:  r.window.CursorPos(),
			Window:  r.window.Rect(),
			Elapsed: r.now().Sub(r.start),
		})
	})
}

// Close waits for the GPU and releases the presenter. It is safe to call
// more than once.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.log().Info("radial: closing renderer", "frames", r.scheduler.Frames())
	return r.presenter.Close()
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}
