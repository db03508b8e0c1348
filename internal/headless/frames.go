// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package headless

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/radial"
)

// quadVertices is the vertex count of the full-target quad.
const quadVertices = 6

func (p *Presenter) checkSlot(slot int) error {
	if p.closed {
		return radial.ErrClosed
	}
	if slot < 0 || slot >= len(p.slots) {
		return fmt.Errorf("headless: slot %d out of range", slot)
	}
	return nil
}

func (p *Presenter) checkImage(image int) error {
	if p.closed {
		return radial.ErrClosed
	}
	if image < 0 || image >= len(p.targets) {
		return fmt.Errorf("headless: image %d out of range", image)
	}
	return nil
}

// WaitFrame blocks until the slot's last submission has completed, then
// frees its command buffers.
func (p *Presenter) WaitFrame(slot int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	return p.waitSlot(slot)
}

func (p *Presenter) waitSlot(slot int) error {
	s := &p.slots[slot]
	if s.value == 0 {
		return nil
	}
	ok, err := p.device.Wait(s.fence, s.value, p.timeout)
	if err != nil {
		return fmt.Errorf("headless: wait slot %d: %w", slot, err)
	}
	if !ok {
		return fmt.Errorf("%w: slot %d after %v", ErrTimeout, slot, p.timeout)
	}
	for _, cb := range s.cmdBufs {
		p.device.FreeCommandBuffer(cb)
	}
	s.cmdBufs = s.cmdBufs[:0]
	return nil
}

// ResetFrame is a no-op: slot fences are timeline values that only grow.
func (p *Presenter) ResetFrame(slot int) error {
	return p.checkSlot(slot)
}

// AcquireImage hands out images in ring order.
func (p *Presenter) AcquireImage(slot int) (int, error) {
	if err := p.checkSlot(slot); err != nil {
		return 0, err
	}
	image := p.next
	p.next = (p.next + 1) % len(p.targets)
	return image, nil
}

// WriteUniform uploads a uniform block for image.
func (p *Presenter) WriteUniform(image int, data []byte) error {
	if err := p.checkImage(image); err != nil {
		return err
	}
	if len(data) != radial.UniformSize {
		return fmt.Errorf("headless: uniform block is %d bytes, want %d", len(data), radial.UniformSize)
	}
	p.queue.WriteBuffer(p.targets[image].uniform, 0, data)
	return nil
}

// Submit encodes the clear and quad draw into image and queues it on the
// slot's fence.
func (p *Presenter) Submit(slot, image int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	if err := p.checkImage(image); err != nil {
		return err
	}

	t := &p.targets[image]
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "radial_frame"})
	if err != nil {
		return fmt.Errorf("headless: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("radial_frame"); err != nil {
		return fmt.Errorf("headless: begin encoding: %w", err)
	}

	c := p.config.ClearColor
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "radial_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       t.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])},
		}},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, t.bindGroup, nil)
	rp.Draw(quadVertices, 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("headless: end encoding: %w", err)
	}

	s := &p.slots[slot]
	s.value++
	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, s.fence, s.value); err != nil {
		s.value--
		p.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("headless: submit: %w", err)
	}
	s.cmdBufs = append(s.cmdBufs, cmdBuf)
	return nil
}

// Present records image as the latest finished frame.
func (p *Presenter) Present(slot, image int) error {
	if err := p.checkSlot(slot); err != nil {
		return err
	}
	if err := p.checkImage(image); err != nil {
		return err
	}
	p.presented = image
	return nil
}

// WaitIdle waits for every slot.
func (p *Presenter) WaitIdle() error {
	if p.closed {
		return radial.ErrClosed
	}
	for slot := range p.slots {
		if err := p.waitSlot(slot); err != nil {
			return err
		}
	}
	return nil
}

// Close waits for outstanding work and destroys every resource. The device
// is destroyed only when Open created it. A second Close is a no-op.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	err := p.WaitIdle()
	if err != nil {
		slogger().Warn("headless: wait idle before teardown failed", "err", err)
	}
	p.closed = true
	p.destroy()
	slogger().Info("headless: presenter closed")
	return err
}

// destroy releases resources newest first. It tolerates partially built
// presenters.
func (p *Presenter) destroy() {
	d := p.device
	if d == nil {
		return
	}
	for i := range p.slots {
		s := &p.slots[i]
		for _, cb := range s.cmdBufs {
			d.FreeCommandBuffer(cb)
		}
		s.cmdBufs = nil
		if s.fence != nil {
			d.DestroyFence(s.fence)
			s.fence = nil
		}
	}
	for i := len(p.targets) - 1; i >= 0; i-- {
		t := p.targets[i]
		if t.bindGroup != nil {
			d.DestroyBindGroup(t.bindGroup)
		}
		if t.uniform != nil {
			d.DestroyBuffer(t.uniform)
		}
		if t.view != nil {
			d.DestroyTextureView(t.view)
		}
		if t.texture != nil {
			d.DestroyTexture(t.texture)
		}
	}
	p.targets = nil
	if p.pipeline != nil {
		d.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLay != nil {
		d.DestroyPipelineLayout(p.pipeLay)
		p.pipeLay = nil
	}
	if p.layout != nil {
		d.DestroyBindGroupLayout(p.layout)
		p.layout = nil
	}
	if p.fragment != nil {
		d.DestroyShaderModule(p.fragment)
		p.fragment = nil
	}
	if p.vertex != nil {
		d.DestroyShaderModule(p.vertex)
		p.vertex = nil
	}
	if p.owned {
		d.Destroy()
		if p.instance != nil {
			p.instance.Destroy()
		}
	}
	p.device, p.queue, p.instance = nil, nil, nil
}
