// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

type commandResources struct {
	pool    vk.CommandPool
	buffers []vk.CommandBuffer
}

// createCommandBuffers creates the command pool and records one command
// buffer per swap chain image. Recording happens once; each frame only
// changes the uniform contents, so the buffers are replayed unchanged.
func (p *Presenter) createCommandBuffers() (func(), error) {
	device := p.gfx.Device
	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: p.gfx.QueueFamily,
	}
	var pool vk.CommandPool
	if err := vkErr("create command pool", vk.CreateCommandPool(device, &poolInfo, nil, &pool)); err != nil {
		return nil, err
	}
	// Destroying the pool frees its command buffers.
	release := func() { vk.DestroyCommandPool(device, pool, nil) }

	n := len(p.surface.Framebuffers)
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(n),
	}
	buffers := make([]vk.CommandBuffer, n)
	if err := vkErr("allocate command buffers", vk.AllocateCommandBuffers(device, &allocInfo, buffers)); err != nil {
		release()
		return nil, err
	}

	for i, cb := range buffers {
		if err := p.record(cb, i); err != nil {
			release()
			return nil, fmt.Errorf("vulkan: record image %d: %w", i, err)
		}
	}

	p.commands = commandResources{pool: pool, buffers: buffers}
	slogger().Debug("vulkan: command buffers recorded", "count", n)
	return release, nil
}

// record writes the draw for swap chain image i: clear to the configured
// color, bind the pipeline and image i's descriptor set, draw the quad.
func (p *Presenter) record(cb vk.CommandBuffer, i int) error {
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
	}
	if err := vkErr("begin command buffer", vk.BeginCommandBuffer(cb, &beginInfo)); err != nil {
		return err
	}

	c := p.config.ClearColor
	renderPassInfo := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  p.surface.RenderPass,
		Framebuffer: p.surface.Framebuffers[i],
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: p.surface.Extent,
		},
		ClearValueCount: 1,
		PClearValues:    []vk.ClearValue{vk.NewClearValue([]float32{c[0], c[1], c[2], c[3]})},
	}

	vk.CmdBeginRenderPass(cb, &renderPassInfo, vk.SubpassContentsInline)
	vk.CmdBindPipeline(cb, vk.PipelineBindPointGraphics, p.pipeline.pipeline)
	vk.CmdBindDescriptorSets(cb, vk.PipelineBindPointGraphics, p.pipeline.layout,
		0, 1, []vk.DescriptorSet{p.uniforms.sets[i]}, 0, nil)
	vk.CmdDraw(cb, quadVertices, 1, 0, 0)
	vk.CmdEndRenderPass(cb)

	return vkErr("end command buffer", vk.EndCommandBuffer(cb))
}
