// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
)

// PresentationSurface is the swap chain tier. Images, Views and
// Framebuffers always have the same length.
type PresentationSurface struct {
	Surface        vk.Surface
	Swapchain      vk.Swapchain
	Format         vk.SurfaceFormat
	Extent         vk.Extent2D
	PresentMode    vk.PresentMode
	CompositeAlpha vk.CompositeAlphaFlagBits

	Images       []vk.Image
	Views        []vk.ImageView
	RenderPass   vk.RenderPass
	Framebuffers []vk.Framebuffer
}

type surfaceSupport struct {
	capabilities vk.SurfaceCapabilities
	formats      []vk.SurfaceFormat
	presentModes []vk.PresentMode
}

func querySurfaceSupport(dev vk.PhysicalDevice, surface vk.Surface) (surfaceSupport, error) {
	var s surfaceSupport

	if err := vkErr("query surface capabilities",
		vk.GetPhysicalDeviceSurfaceCapabilities(dev, surface, &s.capabilities)); err != nil {
		return s, err
	}
	s.capabilities.Deref()
	s.capabilities.CurrentExtent.Deref()
	s.capabilities.MinImageExtent.Deref()
	s.capabilities.MaxImageExtent.Deref()

	var n uint32
	if err := vkErr("query surface formats",
		vk.GetPhysicalDeviceSurfaceFormats(dev, surface, &n, nil)); err != nil {
		return s, err
	}
	if n > 0 {
		formats := make([]vk.SurfaceFormat, n)
		vk.GetPhysicalDeviceSurfaceFormats(dev, surface, &n, formats)
		for _, f := range formats[:n] {
			f.Deref()
			s.formats = append(s.formats, f)
		}
	}

	n = 0
	if err := vkErr("query present modes",
		vk.GetPhysicalDeviceSurfacePresentModes(dev, surface, &n, nil)); err != nil {
		return s, err
	}
	if n > 0 {
		s.presentModes = make([]vk.PresentMode, n)
		vk.GetPhysicalDeviceSurfacePresentModes(dev, surface, &n, s.presentModes)
		s.presentModes = s.presentModes[:n]
	}
	return s, nil
}

func (p *Presenter) createSwapchain() (func(), error) {
	support, err := querySurfaceSupport(p.gfx.PhysicalDevice, p.surface.Surface)
	if err != nil {
		return nil, err
	}

	format, ok := chooseSurfaceFormat(support.formats)
	if !ok {
		return nil, fmt.Errorf("%w: surface reports no formats", radial.ErrNoSuitableDevice)
	}
	mode := choosePresentMode(support.presentModes, p.config.PresentMode)
	alpha, opaque := chooseCompositeAlpha(support.capabilities.SupportedCompositeAlpha)
	if opaque {
		slogger().Warn("vulkan: surface only supports opaque compositing, overlay will not be transparent")
	}

	caps := support.capabilities
	w, h := p.window.FramebufferSize()
	extent := chooseExtent(caps.CurrentExtent, caps.MinImageExtent, caps.MaxImageExtent, w, h)
	count := chooseImageCount(caps.MinImageCount, caps.MaxImageCount)

	createInfo := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          p.surface.Surface,
		MinImageCount:    count,
		ImageFormat:      format.Format,
		ImageColorSpace:  format.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   alpha,
		PresentMode:      mode,
		Clipped:          vk.True,
		OldSwapchain:     vk.NullSwapchain,
	}

	var swapchain vk.Swapchain
	if err := vkErr("create swapchain", vk.CreateSwapchain(p.gfx.Device, &createInfo, nil, &swapchain)); err != nil {
		return nil, err
	}
	device := p.gfx.Device
	release := func() { vk.DestroySwapchain(device, swapchain, nil) }

	var n uint32
	if err := vkErr("get swapchain images", vk.GetSwapchainImages(device, swapchain, &n, nil)); err != nil {
		release()
		return nil, err
	}
	images := make([]vk.Image, n)
	if err := vkErr("get swapchain images", vk.GetSwapchainImages(device, swapchain, &n, images)); err != nil {
		release()
		return nil, err
	}

	p.surface.Swapchain = swapchain
	p.surface.Format = format
	p.surface.Extent = extent
	p.surface.PresentMode = mode
	p.surface.CompositeAlpha = alpha
	p.surface.Images = images[:n]

	slogger().Info("vulkan: swapchain created",
		"images", n, "width", extent.Width, "height", extent.Height,
		"present_mode", presentModeName(mode))
	return release, nil
}

func (p *Presenter) createImageViews() (func(), error) {
	device := p.gfx.Device
	views := make([]vk.ImageView, 0, len(p.surface.Images))
	release := func() {
		for _, v := range views {
			vk.DestroyImageView(device, v, nil)
		}
	}

	for i, img := range p.surface.Images {
		createInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: vk.ImageViewType2d,
			Format:   p.surface.Format.Format,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: vk.ImageAspectFlags(vk.ImageAspectColorBit),
				LevelCount: 1,
				LayerCount: 1,
			},
		}
		var view vk.ImageView
		if err := vkErr(fmt.Sprintf("create image view %d", i),
			vk.CreateImageView(device, &createInfo, nil, &view)); err != nil {
			release()
			return nil, err
		}
		views = append(views, view)
	}

	p.surface.Views = views
	return release, nil
}

// createRenderPass builds one subpass with a single color attachment that is
// cleared on load, stored, and left ready for presentation.
func (p *Presenter) createRenderPass() (func(), error) {
	attachment := vk.AttachmentDescription{
		Format:         p.surface.Format.Format,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}
	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments: []vk.AttachmentReference{{
			Attachment: 0,
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}},
	}
	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask: vk.AccessFlags(vk.AccessColorAttachmentWriteBit),
	}
	createInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments:    []vk.AttachmentDescription{attachment},
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
		DependencyCount: 1,
		PDependencies:   []vk.SubpassDependency{dependency},
	}

	var pass vk.RenderPass
	if err := vkErr("create render pass", vk.CreateRenderPass(p.gfx.Device, &createInfo, nil, &pass)); err != nil {
		return nil, err
	}
	p.surface.RenderPass = pass

	device := p.gfx.Device
	return func() { vk.DestroyRenderPass(device, pass, nil) }, nil
}

func (p *Presenter) createFramebuffers() (func(), error) {
	device := p.gfx.Device
	framebuffers := make([]vk.Framebuffer, 0, len(p.surface.Views))
	release := func() {
		for _, fb := range framebuffers {
			vk.DestroyFramebuffer(device, fb, nil)
		}
	}

	for i, view := range p.surface.Views {
		createInfo := vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      p.surface.RenderPass,
			AttachmentCount: 1,
			PAttachments:    []vk.ImageView{view},
			Width:           p.surface.Extent.Width,
			Height:          p.surface.Extent.Height,
			Layers:          1,
		}
		var fb vk.Framebuffer
		if err := vkErr(fmt.Sprintf("create framebuffer %d", i),
			vk.CreateFramebuffer(device, &createInfo, nil, &fb)); err != nil {
			release()
			return nil, err
		}
		framebuffers = append(framebuffers, fb)
	}

	p.surface.Framebuffers = framebuffers
	return release, nil
}
