// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

// SelectionFunc is called when the selected segment changes. prev and next
// are segment indices or NoSegment.
type SelectionFunc func(prev, next int)

// OverlayState is the state shared between the render loop and the input
// handling that drives it. It is owned by the caller and not safe for
// concurrent use; the render loop writes only Selected.
type OverlayState struct {
	// Visible gates rendering. A hidden overlay renders nothing.
	Visible bool

	// Selected is the segment under the cursor, or NoSegment.
	Selected int

	listeners []SelectionFunc
}

// NewOverlayState returns a hidden overlay with no selection.
func NewOverlayState() *OverlayState {
	return &OverlayState{Selected: NoSegment}
}

// OnSelectionChange registers fn to be called on every selection change.
func (s *OverlayState) OnSelectionChange(fn SelectionFunc) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// HasSelection reports whether a segment is selected.
func (s *OverlayState) HasSelection() bool {
	return s.Selected != NoSegment
}

// setSelected stores next and notifies listeners once if it differs from the
// current selection. It reports whether the selection changed.
func (s *OverlayState) setSelected(next int) bool {
	prev := s.Selected
	if prev == next {
		return false
	}
	s.Selected = next
	for _, fn := range s.listeners {
		fn(prev, next)
	}
	return true
}

// ClearSelection resets Selected to NoSegment, notifying listeners if a
// segment was selected.
func (s *OverlayState) ClearSelection() {
	s.setSelected(NoSegment)
}
