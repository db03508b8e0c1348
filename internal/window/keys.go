// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// KeyAction is an overlay gesture decoded from a key event.
type KeyAction int

const (
	// KeyNone is any event the overlay ignores.
	KeyNone KeyAction = iota

	// KeyShow is Alt+R pressed.
	KeyShow

	// KeyRelease is either Alt key going up.
	KeyRelease

	// KeyCancel is Escape pressed.
	KeyCancel
)

func (a KeyAction) String() string {
	switch a {
	case KeyShow:
		return "show"
	case KeyRelease:
		return "release"
	case KeyCancel:
		return "cancel"
	default:
		return "none"
	}
}

func classifyKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) KeyAction {
	switch {
	case key == glfw.KeyR && action == glfw.Press && mods&glfw.ModAlt != 0:
		return KeyShow
	case (key == glfw.KeyLeftAlt || key == glfw.KeyRightAlt) && action == glfw.Release:
		return KeyRelease
	case key == glfw.KeyEscape && action == glfw.Press:
		return KeyCancel
	}
	return KeyNone
}
