// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command radial shows the radial selection overlay and provides shader
// tooling around it.
//
// Usage:
//
//	radial run [--config radial.yaml]
//	radial shaders
//	radial hittest --x 300 --y 200
//
// The overlay links goki/vulkan and GLFW, which need cgo: build with
// CGO_ENABLED=1. Offscreen snapshots live in cmd/radial-snapshot, which needs
// CGO_ENABLED=0.
package main

import (
	"os"
	"runtime"
)

func init() {
	// GLFW and the render loop must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
