// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"
	"math"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
)

// frameSync is the synchronization set for one frame-in-flight slot.
type frameSync struct {
	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
	inFlight       vk.Fence
}

// createSyncObjects creates both semaphores and the fence for every slot.
// Fences start signaled so the first wait on each slot returns at once.
func (p *Presenter) createSyncObjects() (func(), error) {
	device := p.gfx.Device
	var created []frameSync
	release := func() {
		for _, f := range created {
			vk.DestroySemaphore(device, f.imageAvailable, nil)
			vk.DestroySemaphore(device, f.renderFinished, nil)
			vk.DestroyFence(device, f.inFlight, nil)
		}
	}

	semInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	fenceInfo := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: vk.FenceCreateFlags(vk.FenceCreateSignaledBit),
	}

	for slot := range p.frames {
		var f frameSync
		if err := vkErr("create semaphore", vk.CreateSemaphore(device, &semInfo, nil, &f.imageAvailable)); err != nil {
			release()
			return nil, err
		}
		if err := vkErr("create semaphore", vk.CreateSemaphore(device, &semInfo, nil, &f.renderFinished)); err != nil {
			vk.DestroySemaphore(device, f.imageAvailable, nil)
			release()
			return nil, err
		}
		if err := vkErr("create fence", vk.CreateFence(device, &fenceInfo, nil, &f.inFlight)); err != nil {
			vk.DestroySemaphore(device, f.imageAvailable, nil)
			vk.DestroySemaphore(device, f.renderFinished, nil)
			release()
			return nil, err
		}
		p.frames[slot] = f
		created = append(created, f)
	}
	return release, nil
}

func (p *Presenter) checkSlot(slot int) error {
	if p.closed {
		return radial.ErrClosed
	}
	if slot < 0 || slot >= len(p.frames) {
		return fmt.Errorf("vulkan: slot %d out of range", slot)
	}
	return nil
}

func (p *Presenter) checkImage(image int) error {
	if p.closed {
		return radial.ErrClosed
	}
	if image < 0 || image >= len(p.surface.Images) {
		return fmt.Errorf("vulkan: image %d out of range", image)
	}
	return nil
}

// WaitFrame blocks on the slot's in-flight fence.
func (p *Presenter) WaitFrame(slot int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	fences := []vk.Fence{p.frames[slot].inFlight}
	return vkErr("wait for fence", vk.WaitForFences(p.gfx.Device, 1, fences, vk.True, math.MaxUint64))
}

// ResetFrame returns the slot's fence to the unsignaled state.
func (p *Presenter) ResetFrame(slot int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	return vkErr("reset fence", vk.ResetFences(p.gfx.Device, 1, []vk.Fence{p.frames[slot].inFlight}))
}

// AcquireImage takes the next swap chain image. A suboptimal swap chain is
// still usable and only logged; an out-of-date one fails with
// radial.ErrSurfaceOutOfDate.
func (p *Presenter) AcquireImage(slot int) (int, error) {
	if err := p.checkSlot(slot); err != nil {
		return 0, err
	}
	var index uint32
	res := vk.AcquireNextImage(p.gfx.Device, p.surface.Swapchain, math.MaxUint64,
		p.frames[slot].imageAvailable, vk.Fence(vk.NullHandle), &index)
	if res == vk.Suboptimal {
		slogger().Debug("vulkan: acquire: swapchain suboptimal", "image", index)
		return int(index), nil
	}
	if err := vkErr("acquire next image", res); err != nil {
		return 0, err
	}
	return int(index), nil
}

// WriteUniform copies data into the image's mapped uniform buffer.
func (p *Presenter) WriteUniform(image int, data []byte) error {
	if err := p.checkImage(image); err != nil {
		return err
	}
	if len(data) != radial.UniformSize {
		return fmt.Errorf("vulkan: uniform block is %d bytes, want %d", len(data), radial.UniformSize)
	}
	vk.Memcopy(p.uniforms.mapped[image], data)
	return nil
}

// Submit queues the image's recorded command buffer for slot.
func (p *Presenter) Submit(slot, image int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	if err := p.checkImage(image); err != nil {
		return err
	}
	f := p.frames[slot]
	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      []vk.Semaphore{f.imageAvailable},
		PWaitDstStageMask:    []vk.PipelineStageFlags{vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{p.commands.buffers[image]},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{f.renderFinished},
	}
	return vkErr("queue submit", vk.QueueSubmit(p.gfx.Queue, 1, []vk.SubmitInfo{submitInfo}, f.inFlight))
}

// Present queues image for display once slot's rendering has finished.
func (p *Presenter) Present(slot, image int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	if err := p.checkImage(image); err != nil {
		return err
	}
	presentInfo := vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{p.frames[slot].renderFinished},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{p.surface.Swapchain},
		PImageIndices:      []uint32{uint32(image)},
	}
	res := vk.QueuePresent(p.gfx.Queue, &presentInfo)
	if res == vk.Suboptimal {
		slogger().Debug("vulkan: present: swapchain suboptimal", "image", image)
		return nil
	}
	return vkErr("queue present", res)
}

// WaitIdle blocks until the device has finished all submitted work.
func (p *Presenter) WaitIdle() error {
	if p.closed {
		return radial.ErrClosed
	}
	return vkErr("device wait idle", vk.DeviceWaitIdle(p.gfx.Device))
}
