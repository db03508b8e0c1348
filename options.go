// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"log/slog"
	"time"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := radial.NewRenderer(p, win, state,
//	    radial.WithGeometry(cfg.Geometry),
//	    radial.WithLogger(logger),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	geometry Geometry
	now      func() time.Time
	logger   *slog.Logger
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		geometry: DefaultGeometry(),
		now:      time.Now,
	}
}

// WithGeometry sets the menu geometry used for drawing and hit-testing.
func WithGeometry(g Geometry) Option {
	return func(o *rendererOptions) {
		o.geometry = g
	}
}

// WithClock replaces the time source that feeds UniformFrameState.Time.
// Tests use it to make the elapsed time deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *rendererOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets a logger for this renderer only. Without it the renderer
// logs through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
