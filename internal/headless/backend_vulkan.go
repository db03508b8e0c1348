// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu && !cgo

package headless

// The pure-Go Vulkan HAL backend loads the driver through goffi, which only
// builds with CGO_ENABLED=0. With cgo on, Open without WithDevice or
// WithDeviceProvider reports radial.ErrNoSuitableDevice.
import _ "github.com/gogpu/wgpu/hal/vulkan"
