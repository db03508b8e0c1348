// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"fmt"
	"math"
)

// MaxSegments is the largest segment count the menu supports.
const MaxSegments = 16

// Geometry describes the radial menu in normalized device units.
type Geometry struct {
	// Radius is the outer radius of the drawn ring. The hit-test does not
	// apply it: a selection stays valid at any distance from the center.
	Radius float32 `yaml:"radius"`

	// InnerRadius is the dead zone around the center where nothing is selected.
	InnerRadius float32 `yaml:"inner_radius"`

	// Segments is the number of angular slices, in [1, MaxSegments].
	Segments int `yaml:"segments"`

	// SegmentGap is the angular gap between slices as a fraction of a slice.
	// Only the shader uses it.
	SegmentGap float32 `yaml:"segment_gap"`
}

// DefaultGeometry returns the stock six-segment menu.
func DefaultGeometry() Geometry {
	return Geometry{
		Radius:      0.25,
		InnerRadius: 0.08,
		Segments:    6,
		SegmentGap:  0.1,
	}
}

// Validate reports whether g can be drawn and hit-tested.
func (g Geometry) Validate() error {
	switch {
	case g.Segments < 1 || g.Segments > MaxSegments:
		return fmt.Errorf("%w: segments=%d, want 1..%d", ErrInvalidGeometry, g.Segments, MaxSegments)
	case !finite(g.Radius) || g.Radius <= 0:
		return fmt.Errorf("%w: radius=%v", ErrInvalidGeometry, g.Radius)
	case !finite(g.InnerRadius) || g.InnerRadius < 0 || g.InnerRadius >= g.Radius:
		return fmt.Errorf("%w: inner_radius=%v, want [0, radius)", ErrInvalidGeometry, g.InnerRadius)
	case !finite(g.SegmentGap) || g.SegmentGap < 0 || g.SegmentGap >= 1:
		return fmt.Errorf("%w: segment_gap=%v, want [0, 1)", ErrInvalidGeometry, g.SegmentGap)
	}
	return nil
}

// SegmentAngle returns the angular width of one segment in radians.
func (g Geometry) SegmentAngle() float64 {
	return 2 * math.Pi / float64(g.Segments)
}

func finite(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
