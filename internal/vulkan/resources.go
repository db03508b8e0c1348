// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
)

// uniformResources holds one uniform buffer and descriptor set per swap
// chain image. Buffers stay mapped for the presenter's lifetime.
type uniformResources struct {
	pool    vk.DescriptorPool
	sets    []vk.DescriptorSet
	buffers []vk.Buffer
	memory  []vk.DeviceMemory
	mapped  []unsafe.Pointer
}

func (p *Presenter) createDescriptorPool() (func(), error) {
	n := uint32(len(p.surface.Images))
	createInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       n,
		PoolSizeCount: 1,
		PPoolSizes: []vk.DescriptorPoolSize{{
			Type:            vk.DescriptorTypeUniformBuffer,
			DescriptorCount: n,
		}},
	}

	var pool vk.DescriptorPool
	if err := vkErr("create descriptor pool",
		vk.CreateDescriptorPool(p.gfx.Device, &createInfo, nil, &pool)); err != nil {
		return nil, err
	}
	p.uniforms.pool = pool

	device := p.gfx.Device
	return func() { vk.DestroyDescriptorPool(device, pool, nil) }, nil
}

// createUniformBuffers allocates a host-visible, coherent uniform buffer of
// radial.UniformSize bytes for every swap chain image, maps it, and points
// that image's descriptor set at it.
func (p *Presenter) createUniformBuffers() (func(), error) {
	device := p.gfx.Device
	u := &p.uniforms
	release := func() {
		for i := range u.buffers {
			if u.mapped[i] != nil {
				vk.UnmapMemory(device, u.memory[i])
			}
			vk.DestroyBuffer(device, u.buffers[i], nil)
			vk.FreeMemory(device, u.memory[i], nil)
		}
		u.buffers, u.memory, u.mapped = nil, nil, nil
	}

	for i := range p.surface.Images {
		buf, mem, ptr, err := p.newMappedBuffer(radial.UniformSize)
		if err != nil {
			release()
			return nil, fmt.Errorf("vulkan: uniform buffer %d: %w", i, err)
		}
		u.buffers = append(u.buffers, buf)
		u.memory = append(u.memory, mem)
		u.mapped = append(u.mapped, ptr)
	}

	if err := p.allocateDescriptorSets(); err != nil {
		release()
		return nil, err
	}
	return release, nil
}

func (p *Presenter) newMappedBuffer(size int) (vk.Buffer, vk.DeviceMemory, unsafe.Pointer, error) {
	device := p.gfx.Device
	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(size),
		Usage:       vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit),
		SharingMode: vk.SharingModeExclusive,
	}
	var buf vk.Buffer
	if err := vkErr("create buffer", vk.CreateBuffer(device, &createInfo, nil, &buf)); err != nil {
		return vk.NullBuffer, vk.NullDeviceMemory, nil, err
	}

	var reqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(device, buf, &reqs)
	reqs.Deref()

	want := vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit)
	typeIndex, ok := findMemoryType(p.gfx.PhysicalDevice, reqs.MemoryTypeBits, want)
	if !ok {
		vk.DestroyBuffer(device, buf, nil)
		return vk.NullBuffer, vk.NullDeviceMemory, nil,
			fmt.Errorf("%w: no host-visible coherent memory", radial.ErrNoSuitableDevice)
	}

	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  reqs.Size,
		MemoryTypeIndex: typeIndex,
	}
	var mem vk.DeviceMemory
	if err := vkErr("allocate memory", vk.AllocateMemory(device, &allocInfo, nil, &mem)); err != nil {
		vk.DestroyBuffer(device, buf, nil)
		return vk.NullBuffer, vk.NullDeviceMemory, nil, err
	}

	fail := func(err error) (vk.Buffer, vk.DeviceMemory, unsafe.Pointer, error) {
		vk.DestroyBuffer(device, buf, nil)
		vk.FreeMemory(device, mem, nil)
		return vk.NullBuffer, vk.NullDeviceMemory, nil, err
	}
	if err := vkErr("bind buffer memory", vk.BindBufferMemory(device, buf, mem, 0)); err != nil {
		return fail(err)
	}
	var ptr unsafe.Pointer
	if err := vkErr("map memory", vk.MapMemory(device, mem, 0, vk.DeviceSize(size), 0, &ptr)); err != nil {
		return fail(err)
	}
	return buf, mem, ptr, nil
}

func (p *Presenter) allocateDescriptorSets() error {
	u := &p.uniforms
	n := len(u.buffers)
	layouts := make([]vk.DescriptorSetLayout, n)
	for i := range layouts {
		layouts[i] = p.pipeline.descriptorSetLayout
	}

	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     u.pool,
		DescriptorSetCount: uint32(n),
		PSetLayouts:        layouts,
	}
	sets := make([]vk.DescriptorSet, n)
	if err := vkErr("allocate descriptor sets",
		vk.AllocateDescriptorSets(p.gfx.Device, &allocInfo, &sets[0])); err != nil {
		return err
	}

	for i, set := range sets {
		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set,
			DstBinding:      0,
			DescriptorCount: 1,
			DescriptorType:  vk.DescriptorTypeUniformBuffer,
			PBufferInfo: []vk.DescriptorBufferInfo{{
				Buffer: u.buffers[i],
				Offset: 0,
				Range:  vk.DeviceSize(radial.UniformSize),
			}},
		}
		vk.UpdateDescriptorSets(p.gfx.Device, 1, []vk.WriteDescriptorSet{write}, 0, nil)
	}
	// Sets return to the pool when it is destroyed.
	u.sets = sets
	return nil
}

func findMemoryType(dev vk.PhysicalDevice, typeBits uint32, want vk.MemoryPropertyFlags) (uint32, bool) {
	var props vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(dev, &props)
	props.Deref()

	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		mt := props.MemoryTypes[i]
		mt.Deref()
		if mt.PropertyFlags&want == want {
			return i, true
		}
	}
	return 0, false
}
