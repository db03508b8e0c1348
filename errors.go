// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import "errors"

// Package errors. Presenters wrap these with detail via fmt.Errorf("%w").
var (
	// ErrNoSuitableDevice is returned when no physical device exposes a queue
	// family that supports both graphics and presentation to the surface.
	ErrNoSuitableDevice = errors.New("radial: no suitable GPU device")

	// ErrNoQueueFamily is returned, together with ErrNoSuitableDevice, when
	// no device has a combined graphics+present queue family.
	ErrNoQueueFamily = errors.New("radial: no graphics/present queue family")

	// ErrShaderLoad is returned for missing, empty or misaligned shader bytecode.
	ErrShaderLoad = errors.New("radial: shader load failed")

	// ErrSurfaceOutOfDate is returned when acquire or present reports that the
	// surface no longer matches the swap chain. Recreation is not supported.
	ErrSurfaceOutOfDate = errors.New("radial: surface out of date")

	// ErrClosed is returned by operations on a closed renderer or presenter.
	ErrClosed = errors.New("radial: closed")

	// ErrInvalidGeometry is returned by Geometry.Validate.
	ErrInvalidGeometry = errors.New("radial: invalid menu geometry")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("radial: invalid config")

	// ErrFrameAborted is returned by every Scheduler.Frame after a frame
	// failed once its fence was reset. The fence has no submission left to
	// signal it, so waiting on it again would block forever.
	ErrFrameAborted = errors.New("radial: frame loop aborted")

	// ErrShortBuffer is returned when decoding a uniform block from fewer
	// than UniformSize bytes.
	ErrShortBuffer = errors.New("radial: short uniform buffer")
)
