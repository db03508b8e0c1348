// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package vulkan opens the Vulkan presenter that renders the radial menu into
// a window's swap chain.
//
//	p, err := vulkan.Open(win, radial.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	r := radial.NewRenderer(p, win, nil)
//	defer r.Close()
package vulkan

import (
	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/vulkan"
)

// SurfaceWindow is the window a presenter draws into.
type SurfaceWindow = vulkan.SurfaceWindow

// Open creates every GPU object the menu needs for win and returns them as a
// radial.Presenter. The shader files named in cfg must exist.
func Open(win SurfaceWindow, cfg radial.Config) (radial.Presenter, error) {
	p, err := vulkan.Open(win, cfg)
	if err != nil {
		return nil, err
	}
	return p, nil
}
