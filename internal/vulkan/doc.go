// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vulkan implements radial.Presenter on a Vulkan swap chain using
// github.com/goki/vulkan.
//
// Open builds the presenter in tiers: instance, surface and device; swap
// chain; descriptor layout, pool and per-image uniform buffers; image views,
// render pass and framebuffers; pipeline; pre-recorded command buffers; and
// per-slot semaphores and fences. Each tier registers its release function
// on a stack, so a failed Open and Close both destroy exactly what exists,
// newest first.
//
// Swap chain recreation is not supported. An out-of-date surface surfaces as
// radial.ErrSurfaceOutOfDate.
//
// Build with the nogpu tag to exclude the package's cgo dependencies.
package vulkan
