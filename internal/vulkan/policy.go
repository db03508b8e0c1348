// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"math"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
)

// preferredFormat is the surface format the overlay renders in.
var preferredFormat = vk.SurfaceFormat{
	Format:     vk.FormatB8g8r8a8Unorm,
	ColorSpace: vk.ColorSpaceSrgbNonlinear,
}

// chooseSurfaceFormat picks preferredFormat when offered. A single UNDEFINED
// entry means the surface has no preference. Otherwise the first reported
// format wins. ok is false for an empty list.
func chooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, bool) {
	if len(formats) == 0 {
		return vk.SurfaceFormat{}, false
	}
	if len(formats) == 1 && formats[0].Format == vk.FormatUndefined {
		return preferredFormat, true
	}
	for _, f := range formats {
		if f.Format == preferredFormat.Format && f.ColorSpace == preferredFormat.ColorSpace {
			return f, true
		}
	}
	return formats[0], true
}

// choosePresentMode honors a requested mode when the surface supports it.
// With no request, mailbox is preferred. FIFO is always available.
func choosePresentMode(available []vk.PresentMode, requested string) vk.PresentMode {
	want := vk.PresentModeMailbox
	switch requested {
	case radial.PresentModeFIFO:
		return vk.PresentModeFifo
	case radial.PresentModeImmediate:
		want = vk.PresentModeImmediate
	}
	for _, m := range available {
		if m == want {
			return m
		}
	}
	return vk.PresentModeFifo
}

// compositeAlphaOrder is the preference order for per-pixel transparency.
var compositeAlphaOrder = []vk.CompositeAlphaFlagBits{
	vk.CompositeAlphaPreMultipliedBit,
	vk.CompositeAlphaPostMultipliedBit,
	vk.CompositeAlphaInheritBit,
}

// chooseCompositeAlpha returns the best supported compositing mode. opaque
// reports the fallback to VK_COMPOSITE_ALPHA_OPAQUE, where transparency is lost.
func chooseCompositeAlpha(supported vk.CompositeAlphaFlags) (mode vk.CompositeAlphaFlagBits, opaque bool) {
	for _, m := range compositeAlphaOrder {
		if supported&vk.CompositeAlphaFlags(m) != 0 {
			return m, false
		}
	}
	return vk.CompositeAlphaOpaqueBit, true
}

// chooseImageCount asks for one image over the minimum. A zero maximum
// means unbounded.
func chooseImageCount(minCount, maxCount uint32) uint32 {
	n := minCount + 1
	if maxCount > 0 && n > maxCount {
		n = maxCount
	}
	return n
}

// chooseExtent returns the surface's current extent unless it is the
// 0xFFFFFFFF sentinel, in which case the window size is clamped to the
// supported range.
func chooseExtent(current, minExtent, maxExtent vk.Extent2D, width, height int) vk.Extent2D {
	if current.Width != math.MaxUint32 {
		return current
	}
	return vk.Extent2D{
		Width:  clampU32(uint32(max(width, 0)), minExtent.Width, maxExtent.Width),
		Height: clampU32(uint32(max(height, 0)), minExtent.Height, maxExtent.Height),
	}
}

func clampU32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func presentModeName(m vk.PresentMode) string {
	switch m {
	case vk.PresentModeImmediate:
		return "immediate"
	case vk.PresentModeMailbox:
		return "mailbox"
	case vk.PresentModeFifo:
		return "fifo"
	case vk.PresentModeFifoRelaxed:
		return "fifo_relaxed"
	default:
		return "unknown"
	}
}

func compositeAlphaName(m vk.CompositeAlphaFlagBits) string {
	switch m {
	case vk.CompositeAlphaPreMultipliedBit:
		return "pre_multiplied"
	case vk.CompositeAlphaPostMultipliedBit:
		return "post_multiplied"
	case vk.CompositeAlphaInheritBit:
		return "inherit"
	default:
		return "opaque"
	}
}
