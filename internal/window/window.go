// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package window provides the overlay window on GLFW: transparent,
// undecorated and always on top, with no client API so that Vulkan can own
// the surface.
//
// GLFW must be driven from the main thread. Callers lock the OS thread
// before Open and call every method from that thread.
package window

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/radial"
)

// Window is a GLFW overlay window. It implements radial.Window,
// radial.Mover, radial.Shower and the Vulkan presenter's SurfaceWindow.
type Window struct {
	win   *glfw.Window
	onKey func(KeyAction)
}

var (
	_ radial.Window = (*Window)(nil)
	_ radial.Mover  = (*Window)(nil)
	_ radial.Shower = (*Window)(nil)
)

// Open initializes GLFW and creates a width by height overlay window. The
// window starts hidden.
func Open(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: glfw init: %w", err)
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("window: glfw reports no Vulkan loader")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: create: %w", err)
	}

	w := &Window{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if a := classifyKey(key, action, mods); a != KeyNone && w.onKey != nil {
			w.onKey(a)
		}
	})
	return w, nil
}

// OnKey registers the handler for overlay key gestures.
func (w *Window) OnKey(fn func(KeyAction)) { w.onKey = fn }

// CursorPos returns the cursor position in screen pixels.
func (w *Window) CursorPos() radial.Point {
	wx, wy := w.win.GetPos()
	cx, cy := w.win.GetCursorPos()
	return radial.Point{X: wx + int(cx), Y: wy + int(cy)}
}

// Rect returns the window rectangle in screen pixels.
func (w *Window) Rect() radial.Rect {
	x, y := w.win.GetPos()
	width, height := w.win.GetSize()
	return radial.Rect{
		Min: radial.Point{X: x, Y: y},
		Max: radial.Point{X: x + width, Y: y + height},
	}
}

// CenterOn moves the window so that its center is p.
func (w *Window) CenterOn(p radial.Point) {
	width, height := w.win.GetSize()
	w.win.SetPos(p.X-width/2, p.Y-height/2)
}

// SetVisible shows or hides the window. Showing also requests focus so the
// key gesture reaches it.
func (w *Window) SetVisible(visible bool) {
	if visible {
		w.win.Show()
		w.win.Focus()
		return
	}
	w.win.Hide()
}

// ProcAddr returns vkGetInstanceProcAddr from GLFW's loader.
func (w *Window) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// RequiredInstanceExtensions lists the instance extensions GLFW needs for
// surface creation.
func (w *Window) RequiredInstanceExtensions() []string {
	return w.win.GetRequiredInstanceExtensions()
}

// CreateSurface creates a VkSurfaceKHR for instance.
func (w *Window) CreateSurface(instance any) (uintptr, error) {
	return w.win.CreateWindowSurface(instance, nil)
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// PollEvents processes pending window events and runs callbacks.
func (w *Window) PollEvents() { glfw.PollEvents() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
