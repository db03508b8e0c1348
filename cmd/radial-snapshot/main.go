// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Command radial-snapshot renders the radial menu offscreen and saves it as
// a PNG.
//
// Usage:
//
//	radial-snapshot --cursor-x 300 --cursor-y 200 -o menu.png
//
// Rendering goes through the pure-Go Vulkan HAL backend of gogpu/wgpu, which
// loads the driver through goffi: build with CGO_ENABLED=0. The windowed
// overlay in cmd/radial needs the opposite setting.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
