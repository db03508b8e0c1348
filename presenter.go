// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

// FramesInFlight is the number of frames the CPU may record ahead of the GPU.
const FramesInFlight = 2

// Presenter is the GPU capability the frame scheduler drives. A slot is a
// frame-in-flight index in [0, FramesInFlight); an image is a swap chain (or
// offscreen ring) index in [0, ImageCount()).
//
// Implementations own every GPU object. All methods are called from the
// render goroutine.
type Presenter interface {
	// ImageCount returns the number of presentable images.
	ImageCount() int

	// WaitFrame blocks until the last submission from slot has completed.
	WaitFrame(slot int) error

	// ResetFrame re-arms the slot's fence before a new submission.
	ResetFrame(slot int) error

	// AcquireImage returns the next presentable image, signaling the slot's
	// image-available semaphore when the image is ready.
	AcquireImage(slot int) (int, error)

	// WriteUniform copies a UniformSize-byte block into the image's
	// uniform buffer.
	WriteUniform(image int, data []byte) error

	// Submit queues the image's pre-recorded command buffer. It waits on the
	// slot's image-available semaphore, signals its render-finished semaphore
	// and signals the slot's fence on completion.
	Submit(slot, image int) error

	// Present queues the image for display after the slot's render-finished
	// semaphore is signaled.
	Present(slot, image int) error

	// WaitIdle blocks until the device has no outstanding work.
	WaitIdle() error

	// Close waits for the device to go idle and releases every GPU object.
	// Close is idempotent.
	Close() error
}

// Window is the window collaborator the renderer queries each frame.
type Window interface {
	// CursorPos returns the absolute cursor position in screen pixels.
	CursorPos() Point

	// Rect returns the window rectangle in screen pixels.
	Rect() Rect
}

// Mover is implemented by windows that can be re-centered on a point.
type Mover interface {
	CenterOn(p Point)
}

// Shower is implemented by windows that are mapped and unmapped together
// with the overlay.
type Shower interface {
	SetVisible(visible bool)
}
