// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/radial"
)

// copyPitchAlignment is the row alignment texture-to-buffer copies require.
const copyPitchAlignment = 256

// ErrNothingPresented is returned by Snapshot before the first Present.
var ErrNothingPresented = errors.New("headless: no image presented yet")

// Snapshot waits for outstanding work and reads the most recently presented
// image back into memory.
func (p *Presenter) Snapshot() (*image.RGBA, error) {
	if p.closed {
		return nil, radial.ErrClosed
	}
	if p.presented < 0 {
		return nil, ErrNothingPresented
	}
	if err := p.WaitIdle(); err != nil {
		return nil, err
	}
	return p.readback(p.targets[p.presented].texture)
}

func (p *Presenter) readback(tex hal.Texture) (*image.RGBA, error) {
	w, h := p.width, p.height
	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	size := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "radial_staging",
		Size:  size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("headless: create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(staging)

	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "radial_readback"})
	if err != nil {
		return nil, fmt.Errorf("headless: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("radial_readback"); err != nil {
		return nil, fmt.Errorf("headless: begin encoding: %w", err)
	}

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("headless: end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("headless: create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)

	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("headless: submit readback: %w", err)
	}
	ok, err := p.device.Wait(fence, 1, p.timeout)
	if err != nil {
		return nil, fmt.Errorf("headless: wait readback: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: readback after %v", ErrTimeout, p.timeout)
	}

	raw := make([]byte, size)
	if err := p.queue.ReadBuffer(staging, 0, raw); err != nil {
		return nil, fmt.Errorf("headless: read staging buffer: %w", err)
	}
	return unpadRows(raw, int(w), int(h), int(alignedBytesPerRow)), nil
}

// unpadRows copies a row-padded RGBA readback into a tightly packed image.
func unpadRows(raw []byte, w, h, pitch int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := w * 4
	for y := range h {
		copy(img.Pix[y*img.Stride:y*img.Stride+row], raw[y*pitch:y*pitch+row])
	}
	return img
}
