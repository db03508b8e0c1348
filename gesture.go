// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import "log/slog"

// CommitFunc receives the segment that was selected when the overlay closed.
type CommitFunc func(segment int)

// Gesture implements the show-on-hotkey, commit-on-release interaction.
//
// Press shows the overlay and centers the window on the cursor. Release hides
// it; if a segment was selected at that moment it is committed and the
// selection is cleared. Releasing while already hidden does nothing.
type Gesture struct {
	state  *OverlayState
	window Window
	commit CommitFunc
	logger *slog.Logger
}

// NewGesture returns a gesture controller for state. win may implement Mover
// to be re-centered on show and Shower to follow the overlay's visibility.
// commit may be nil.
func NewGesture(state *OverlayState, win Window, commit CommitFunc) *Gesture {
	return &Gesture{state: state, window: win, commit: commit}
}

// SetLogger overrides the package logger for this gesture.
func (g *Gesture) SetLogger(l *slog.Logger) { g.logger = l }

// Press handles the hotkey chord.
func (g *Gesture) Press() {
	if g.window != nil {
		if m, ok := g.window.(Mover); ok {
			m.CenterOn(g.window.CursorPos())
		}
	}
	if !g.state.Visible {
		g.log().Debug("radial: overlay shown")
	}
	g.state.Visible = true
	g.show(true)
}

// Release handles the modifier key going up.
func (g *Gesture) Release() {
	if !g.state.Visible {
		return
	}
	g.state.Visible = false
	g.show(false)
	g.log().Debug("radial: overlay hidden", "selected", g.state.Selected)

	if !g.state.HasSelection() {
		return
	}
	segment := g.state.Selected
	if g.commit != nil {
		g.commit(segment)
	}
	g.state.ClearSelection()
}

func (g *Gesture) show(visible bool) {
	if s, ok := g.window.(Shower); ok {
		s.SetVisible(visible)
	}
}

func (g *Gesture) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return Logger()
}
