// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package radial provides the real-time presentation core of a transparent,
// always-on-top radial selection menu.
//
// # Overview
//
// The menu is a single full-window quad drawn by a fragment shader that reads
// a small uniform block ([UniformFrameState]) every frame. The CPU side owns
// three things:
//
//   - the polar hit-test that maps the cursor to a menu segment ([HitTest])
//   - the per-frame uniform producer ([Producer])
//   - the frame scheduler that paces CPU work against the GPU ([Scheduler])
//
// GPU work goes through the [Presenter] capability interface. Two
// implementations ship with the module:
//
//   - github.com/gogpu/radial/vulkan: a Vulkan swap chain bound to a window
//   - internal/headless: an offscreen image ring on gogpu/wgpu hal, used for
//     snapshots and for tests without a GPU
//
// The two cannot share a binary. goki/vulkan and GLFW need cgo, while the
// pure-Go HAL backend loads the driver through goffi, which refuses it.
// cmd/radial builds with CGO_ENABLED=1 and cmd/radial-snapshot with
// CGO_ENABLED=0.
//
// # Quick Start
//
//	cfg := radial.DefaultConfig()
//	p, err := vulkan.Open(win, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := radial.NewRenderer(p, win, &state, radial.WithGeometry(cfg.Geometry))
//	defer r.Close()
//
//	for running {
//	    if err := r.RenderFrame(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Coordinate System
//
// Cursor positions arrive in screen pixels (origin top-left, Y down) and are
// normalized to device coordinates spanning [-1, 1] with Y up. The hit-test
// flips Y back to match the shader: segment 0 starts at angle 0 (pointing
// right) and indices grow with angle as measured by atan2 in that space.
//
// # Frames in Flight
//
// At most [FramesInFlight] frames are outstanding on the GPU. The scheduler
// additionally tracks which slot last used each swap chain image, so a
// uniform buffer is never rewritten while an older submission may still read
// it, even when the image index and the slot index drift apart.
//
// # Errors
//
// Startup failures ([ErrNoSuitableDevice], [ErrShaderLoad], ...) and runtime
// failures (wait, acquire, submit, present) are returned wrapped; nothing is
// retried. A surface that becomes out of date reports [ErrSurfaceOutOfDate];
// swap chain recreation is not supported. Once a frame fails after its fence
// was reset, every later frame returns [ErrFrameAborted].
package radial

// Version is the current version of the module.
const Version = "0.1.0"
