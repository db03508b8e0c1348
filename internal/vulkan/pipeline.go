// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"

	vk "github.com/goki/vulkan"
)

// quadVertices is the vertex count of the full-window quad. Positions come
// from the vertex index; no vertex buffers are bound.
const quadVertices = 6

type pipelineObjects struct {
	descriptorSetLayout vk.DescriptorSetLayout
	layout              vk.PipelineLayout
	pipeline            vk.Pipeline
}

// createDescriptorSetLayout declares one uniform buffer at binding 0 read by
// the fragment stage.
func (p *Presenter) createDescriptorSetLayout() (func(), error) {
	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: 1,
		PBindings: []vk.DescriptorSetLayoutBinding{{
			Binding:         0,
			DescriptorType:  vk.DescriptorTypeUniformBuffer,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vk.ShaderStageFragmentBit),
		}},
	}

	var layout vk.DescriptorSetLayout
	if err := vkErr("create descriptor set layout",
		vk.CreateDescriptorSetLayout(p.gfx.Device, &createInfo, nil, &layout)); err != nil {
		return nil, err
	}
	p.pipeline.descriptorSetLayout = layout

	device := p.gfx.Device
	return func() { vk.DestroyDescriptorSetLayout(device, layout, nil) }, nil
}

func (p *Presenter) createPipelineLayout() (func(), error) {
	createInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: 1,
		PSetLayouts:    []vk.DescriptorSetLayout{p.pipeline.descriptorSetLayout},
	}

	var layout vk.PipelineLayout
	if err := vkErr("create pipeline layout",
		vk.CreatePipelineLayout(p.gfx.Device, &createInfo, nil, &layout)); err != nil {
		return nil, err
	}
	p.pipeline.layout = layout

	device := p.gfx.Device
	return func() { vk.DestroyPipelineLayout(device, layout, nil) }, nil
}

// createPipeline builds the graphics pipeline: no vertex input, triangle
// list, static viewport and scissor covering the swap chain, back-face
// culling with clockwise front faces, one sample, and straight alpha
// blending. Shader modules are destroyed once the pipeline exists.
func (p *Presenter) createPipeline() (func(), error) {
	device := p.gfx.Device

	vert, err := createShaderModule(device, p.vertexCode)
	if err != nil {
		return nil, fmt.Errorf("vulkan: vertex shader module: %w", err)
	}
	defer vk.DestroyShaderModule(device, vert, nil)

	frag, err := createShaderModule(device, p.fragmentCode)
	if err != nil {
		return nil, fmt.Errorf("vulkan: fragment shader module: %w", err)
	}
	defer vk.DestroyShaderModule(device, frag, nil)

	stages := []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: vert,
			PName:  p.config.VertexEntry + "\x00",
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: frag,
			PName:  p.config.FragmentEntry + "\x00",
		},
	}

	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
	}
	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}

	extent := p.surface.Extent
	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports: []vk.Viewport{{
			Width:    float32(extent.Width),
			Height:   float32(extent.Height),
			MinDepth: 0,
			MaxDepth: 1,
		}},
		ScissorCount: 1,
		PScissors: []vk.Rect2D{{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: extent,
		}},
	}

	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		LineWidth:               1,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
		MinSampleShading:     1,
	}

	blending := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpCopy,
		AttachmentCount: 1,
		PAttachments: []vk.PipelineColorBlendAttachmentState{{
			BlendEnable:         vk.True,
			SrcColorBlendFactor: vk.BlendFactorSrcAlpha,
			DstColorBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
			ColorBlendOp:        vk.BlendOpAdd,
			SrcAlphaBlendFactor: vk.BlendFactorOne,
			DstAlphaBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
			AlphaBlendOp:        vk.BlendOpAdd,
			ColorWriteMask: vk.ColorComponentFlags(
				vk.ColorComponentRBit | vk.ColorComponentGBit |
					vk.ColorComponentBBit | vk.ColorComponentABit),
		}},
	}

	createInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizer,
		PMultisampleState:   &multisample,
		PColorBlendState:    &blending,
		Layout:              p.pipeline.layout,
		RenderPass:          p.surface.RenderPass,
		Subpass:             0,
		BasePipelineHandle:  vk.Pipeline(vk.NullHandle),
		BasePipelineIndex:   -1,
	}

	pipelines := make([]vk.Pipeline, 1)
	if err := vkErr("create graphics pipeline", vk.CreateGraphicsPipelines(
		device, vk.PipelineCache(vk.NullHandle), 1,
		[]vk.GraphicsPipelineCreateInfo{createInfo}, nil, pipelines)); err != nil {
		return nil, err
	}
	pipeline := pipelines[0]
	p.pipeline.pipeline = pipeline

	return func() { vk.DestroyPipeline(device, pipeline, nil) }, nil
}

// shaderModuleInfo describes code for vkCreateShaderModule. CodeSize is in
// bytes.
func shaderModuleInfo(code []uint32) vk.ShaderModuleCreateInfo {
	return vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code) * 4),
		PCode:    code,
	}
}

func createShaderModule(device vk.Device, code []uint32) (vk.ShaderModule, error) {
	createInfo := shaderModuleInfo(code)
	var module vk.ShaderModule
	if err := vkErr("create shader module", vk.CreateShaderModule(device, &createInfo, nil, &module)); err != nil {
		return vk.ShaderModule(vk.NullHandle), err
	}
	return module, nil
}
