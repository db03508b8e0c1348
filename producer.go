// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"log/slog"
	"time"
)

// FrameInput is the CPU-side input to one frame.
type FrameInput struct {
	// Cursor is the absolute cursor position in screen pixels.
	Cursor Point

	// Window is the window rectangle in screen pixels.
	Window Rect

	// Elapsed is the time since rendering started.
	Elapsed time.Duration
}

// Producer turns a FrameInput into the uniform block for one frame and keeps
// OverlayState.Selected in sync with the hit-test.
type Producer struct {
	geometry Geometry
	state    *OverlayState
	logger   *slog.Logger
}

// NewProducer returns a producer for g that writes selections into state.
// A nil logger uses the package logger.
func NewProducer(g Geometry, state *OverlayState, logger *slog.Logger) *Producer {
	return &Producer{geometry: g, state: state, logger: logger}
}

// Geometry returns the menu geometry the producer uses.
func (p *Producer) Geometry() Geometry { return p.geometry }

// Produce normalizes the cursor, runs the hit-test, updates the overlay
// selection and returns the uniform block for this frame. Selection listeners
// fire only when the selection actually changes.
func (p *Producer) Produce(in FrameInput) UniformFrameState {
	nx, ny := Normalize(in.Cursor, in.Window)

	next, ok := HitTest(p.geometry, nx, ny)
	if !ok {
		next = NoSegment
	}

	if p.state != nil {
		prev := p.state.Selected
		if p.state.setSelected(next) {
			p.log().Debug("radial: selection changed",
				"from", prev, "to", next, "nx", nx, "ny", ny)
		}
	}

	return UniformFrameState{
		Radius:       p.geometry.Radius,
		InnerRadius:  p.geometry.InnerRadius,
		Segments:     int32(p.geometry.Segments),
		Time:         float32(in.Elapsed.Seconds()),
		MousePos:     [2]float32{nx, ny},
		SegmentGap:   p.geometry.SegmentGap,
		ItemSelected: int32(next),
	}
}

func (p *Producer) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}
