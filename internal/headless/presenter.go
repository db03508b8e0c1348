// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

// Package headless implements radial.Presenter on offscreen textures through
// the gogpu/wgpu HAL. It renders the same shaders as the windowed presenter
// into a ring of images that can be read back, which makes it suitable for
// snapshots and for running the frame loop without a display.
package headless

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/shader"
)

// Format is the pixel format of every offscreen image.
const Format = gputypes.TextureFormatRGBA8Unorm

// ErrTimeout is returned when a fence wait exceeds the configured timeout.
var ErrTimeout = errors.New("headless: fence wait timed out")

type target struct {
	texture   hal.Texture
	view      hal.TextureView
	uniform   hal.Buffer
	bindGroup hal.BindGroup
}

type slotState struct {
	fence   hal.Fence
	value   uint64
	cmdBufs []hal.CommandBuffer
}

// Presenter renders into offscreen images. It must be used from a single
// goroutine.
type Presenter struct {
	config  radial.Config
	width   uint32
	height  uint32
	timeout time.Duration

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	owned    bool

	vertex   hal.ShaderModule
	fragment hal.ShaderModule
	layout   hal.BindGroupLayout
	pipeLay  hal.PipelineLayout
	pipeline hal.RenderPipeline

	targets []target
	slots   [radial.FramesInFlight]slotState

	next      int
	presented int
	closed    bool
}

var _ radial.Presenter = (*Presenter)(nil)

// Open creates a presenter of cfg.Width by cfg.Height pixels. Without a
// device option it opens the first hardware adapter of the Vulkan HAL
// backend, which is linked only with CGO_ENABLED=0. Elsewhere Open needs
// WithDevice or WithDeviceProvider and otherwise reports
// radial.ErrNoSuitableDevice.
func Open(cfg radial.Config, opts ...Option) (*Presenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Presenter{
		config:    cfg,
		width:     uint32(cfg.Width),  //nolint:gosec // validated positive
		height:    uint32(cfg.Height), //nolint:gosec // validated positive
		timeout:   o.timeout,
		presented: -1,
	}
	if err := p.acquireDevice(o); err != nil {
		return nil, err
	}
	if err := p.createPipeline(); err != nil {
		p.destroy()
		return nil, err
	}
	if err := p.createTargets(o.imageCount); err != nil {
		p.destroy()
		return nil, err
	}
	if err := p.createFences(); err != nil {
		p.destroy()
		return nil, err
	}

	slogger().Info("headless: presenter ready",
		"images", len(p.targets), "width", p.width, "height", p.height, "shared_device", !p.owned)
	return p, nil
}

func (p *Presenter) acquireDevice(o options) error {
	switch {
	case o.device != nil:
		if o.queue == nil {
			return errors.New("headless: WithDevice requires a queue")
		}
		p.device, p.queue = o.device, o.queue
		return nil
	case o.provider != nil:
		return p.useProvider(o.provider)
	}

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan HAL backend not available", radial.ErrNoSuitableDevice)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("headless: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("%w: no adapters", radial.ErrNoSuitableDevice)
	}
	selected := &adapters[0]
	for i := range adapters {
		t := adapters[i].Info.DeviceType
		if t == gputypes.DeviceTypeDiscreteGPU || t == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("headless: open device: %w", err)
	}

	p.instance = instance
	p.device, p.queue = openDev.Device, openDev.Queue
	p.owned = true
	slogger().Info("headless: adapter selected", "adapter", selected.Info.Name)
	return nil
}

func (p *Presenter) useProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return errors.New("headless: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return errors.New("headless: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return errors.New("headless: provider HalQueue is not hal.Queue")
	}
	p.device, p.queue = device, queue
	return nil
}

// createPipeline compiles both stages to SPIR-V and builds a pipeline with
// one uniform binding, no vertex buffers and straight alpha blending.
func (p *Presenter) createPipeline() error {
	var err error
	if p.vertex, err = p.shaderModule(shader.Vertex); err != nil {
		return err
	}
	if p.fragment, err = p.shaderModule(shader.Fragment); err != nil {
		return err
	}

	p.layout, err = p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "radial_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		}},
	})
	if err != nil {
		return fmt.Errorf("headless: create bind group layout: %w", err)
	}

	p.pipeLay, err = p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "radial_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.layout},
	})
	if err != nil {
		return fmt.Errorf("headless: create pipeline layout: %w", err)
	}

	blend := gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
	p.pipeline, err = p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "radial_pipeline",
		Layout: p.pipeLay,
		Vertex: hal.VertexState{
			Module:     p.vertex,
			EntryPoint: p.config.VertexEntry,
		},
		Fragment: &hal.FragmentState{
			Module:     p.fragment,
			EntryPoint: p.config.FragmentEntry,
			Targets: []gputypes.ColorTargetState{{
				Format:    Format,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("headless: create render pipeline: %w", err)
	}
	return nil
}

func (p *Presenter) shaderModule(stage shader.Stage) (hal.ShaderModule, error) {
	code, err := shader.CompileStage(stage)
	if err != nil {
		return nil, err
	}
	m, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "radial_" + stage.String(),
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return nil, fmt.Errorf("headless: create %s module: %w", stage, err)
	}
	return m, nil
}

// createTargets allocates n images, each with its own uniform buffer and
// bind group.
func (p *Presenter) createTargets(n int) error {
	size := hal.Extent3D{Width: p.width, Height: p.height, DepthOrArrayLayers: 1}
	for i := range n {
		var t target
		var err error
		t.texture, err = p.device.CreateTexture(&hal.TextureDescriptor{
			Label:         fmt.Sprintf("radial_image_%d", i),
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        Format,
			Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			return fmt.Errorf("headless: create image %d: %w", i, err)
		}
		p.targets = append(p.targets, t)
		cur := &p.targets[len(p.targets)-1]

		cur.view, err = p.device.CreateTextureView(cur.texture, &hal.TextureViewDescriptor{
			Label:         fmt.Sprintf("radial_image_view_%d", i),
			Format:        Format,
			Dimension:     gputypes.TextureViewDimension2D,
			Aspect:        gputypes.TextureAspectAll,
			MipLevelCount: 1,
		})
		if err != nil {
			return fmt.Errorf("headless: create image view %d: %w", i, err)
		}

		cur.uniform, err = p.device.CreateBuffer(&hal.BufferDescriptor{
			Label: fmt.Sprintf("radial_uniform_%d", i),
			Size:  radial.UniformSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("headless: create uniform buffer %d: %w", i, err)
		}

		cur.bindGroup, err = p.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  fmt.Sprintf("radial_bind_%d", i),
			Layout: p.layout,
			Entries: []gputypes.BindGroupEntry{{
				Binding: 0,
				Resource: gputypes.BufferBinding{
					Buffer: cur.uniform.NativeHandle(), Offset: 0, Size: radial.UniformSize,
				},
			}},
		})
		if err != nil {
			return fmt.Errorf("headless: create bind group %d: %w", i, err)
		}
	}
	return nil
}

func (p *Presenter) createFences() error {
	for i := range p.slots {
		f, err := p.device.CreateFence()
		if err != nil {
			return fmt.Errorf("headless: create fence %d: %w", i, err)
		}
		p.slots[i].fence = f
	}
	return nil
}

// ImageCount returns the size of the image ring.
func (p *Presenter) ImageCount() int { return len(p.targets) }

// Size returns the image size in pixels.
func (p *Presenter) Size() (width, height int) { return int(p.width), int(p.height) }

// Presented returns the most recently presented image, or -1.
func (p *Presenter) Presented() int { return p.presented }
