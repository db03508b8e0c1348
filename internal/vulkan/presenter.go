// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"errors"
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/shader"
)

// SurfaceWindow is the window collaborator the presenter needs to reach the
// Vulkan loader and create a presentation surface.
type SurfaceWindow interface {
	// ProcAddr returns vkGetInstanceProcAddr as provided by the windowing
	// library.
	ProcAddr() unsafe.Pointer

	// RequiredInstanceExtensions lists the instance extensions surface
	// creation needs.
	RequiredInstanceExtensions() []string

	// CreateSurface creates a VkSurfaceKHR for instance and returns a
	// pointer to the handle.
	CreateSurface(instance any) (uintptr, error)

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
}

// Resource tier names, in construction order.
const (
	tierInstance            = "instance"
	tierSurface             = "surface"
	tierDevice              = "device"
	tierSwapchain           = "swapchain"
	tierDescriptorSetLayout = "descriptor set layout"
	tierDescriptorPool      = "descriptor pool"
	tierUniformBuffers      = "uniform buffers"
	tierImageViews          = "image views"
	tierRenderPass          = "render pass"
	tierFramebuffers        = "framebuffers"
	tierPipelineLayout      = "pipeline layout"
	tierPipeline            = "pipeline"
	tierCommandPool         = "command pool"
	tierSync                = "sync objects"
)

// Presenter renders the radial menu into a Vulkan swap chain. It implements
// radial.Presenter and must be used from a single goroutine.
type Presenter struct {
	window SurfaceWindow
	config radial.Config

	vertexCode   []uint32
	fragmentCode []uint32

	gfx      GraphicsContext
	surface  PresentationSurface
	pipeline pipelineObjects
	uniforms uniformResources
	commands commandResources
	frames   [radial.FramesInFlight]frameSync

	release releaseStack
	closed  bool
}

var _ radial.Presenter = (*Presenter)(nil)

// Open loads the shaders, then builds every GPU object the menu needs: the
// instance and device, the swap chain for win, the pipeline, one uniform
// buffer, descriptor set and pre-recorded command buffer per swap chain
// image, and the per-slot sync objects. On failure everything already
// created is destroyed.
func Open(win SurfaceWindow, cfg radial.Config) (*Presenter, error) {
	if win == nil {
		return nil, errors.New("vulkan: nil window")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Presenter{window: win, config: cfg}

	var err error
	if p.vertexCode, err = shader.Load(cfg.VertexShader); err != nil {
		return nil, err
	}
	if p.fragmentCode, err = shader.Load(cfg.FragmentShader); err != nil {
		return nil, err
	}

	vk.SetGetInstanceProcAddr(win.ProcAddr())
	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vulkan: init loader: %w", err)
	}

	if err := runStages(p, presenterStages(), &p.release); err != nil {
		slogger().Warn("vulkan: open failed, releasing partial state",
			"tiers", p.release.len(), "err", err)
		p.release.unwind()
		return nil, err
	}

	slogger().Info("vulkan: presenter ready",
		"device", p.gfx.DeviceName,
		"images", len(p.surface.Images),
		"extent", fmt.Sprintf("%dx%d", p.surface.Extent.Width, p.surface.Extent.Height),
		"present_mode", presentModeName(p.surface.PresentMode),
		"composite_alpha", compositeAlphaName(p.surface.CompositeAlpha))
	return p, nil
}

// presenterStages lists the construction tiers. Teardown runs them in
// reverse, which yields: sync objects, command pool, pipeline, pipeline
// layout, framebuffers, render pass, image views, uniform buffers,
// descriptor pool, descriptor set layout, swap chain, device, surface,
// instance.
func presenterStages() []stage[*Presenter] {
	return []stage[*Presenter]{
		{tierInstance, (*Presenter).createInstance},
		{tierSurface, (*Presenter).createSurface},
		{tierDevice, (*Presenter).createDevice},
		{tierSwapchain, (*Presenter).createSwapchain},
		{tierDescriptorSetLayout, (*Presenter).createDescriptorSetLayout},
		{tierDescriptorPool, (*Presenter).createDescriptorPool},
		{tierUniformBuffers, (*Presenter).createUniformBuffers},
		{tierImageViews, (*Presenter).createImageViews},
		{tierRenderPass, (*Presenter).createRenderPass},
		{tierFramebuffers, (*Presenter).createFramebuffers},
		{tierPipelineLayout, (*Presenter).createPipelineLayout},
		{tierPipeline, (*Presenter).createPipeline},
		{tierCommandPool, (*Presenter).createCommandBuffers},
		{tierSync, (*Presenter).createSyncObjects},
	}
}

// ImageCount returns the number of swap chain images.
func (p *Presenter) ImageCount() int { return len(p.surface.Images) }

// Extent returns the swap chain size in pixels.
func (p *Presenter) Extent() (width, height int) {
	return int(p.surface.Extent.Width), int(p.surface.Extent.Height)
}

// vkErr converts a failed result into an error naming the operation.
// An out-of-date surface maps to radial.ErrSurfaceOutOfDate.
func vkErr(what string, res vk.Result) error {
	if res == vk.ErrorOutOfDate {
		return fmt.Errorf("vulkan: %s: %w", what, radial.ErrSurfaceOutOfDate)
	}
	if err := vk.Error(res); err != nil {
		return fmt.Errorf("vulkan: %s: %w", what, err)
	}
	return nil
}

// cstrings returns names with a trailing NUL on each, as the loader expects.
func cstrings(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if len(n) == 0 || n[len(n)-1] != 0 {
			n += "\x00"
		}
		out[i] = n
	}
	return out
}
