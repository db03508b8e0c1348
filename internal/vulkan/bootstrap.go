// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"fmt"
	"slices"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial"
)

const validationLayer = "VK_LAYER_KHRONOS_validation\x00"

// GraphicsContext is the device tier: created first, destroyed last.
type GraphicsContext struct {
	Instance       vk.Instance
	PhysicalDevice vk.PhysicalDevice
	Device         vk.Device
	QueueFamily    uint32
	Queue          vk.Queue
	DeviceName     string

	layers []string
}

func (p *Presenter) createInstance() (func(), error) {
	if p.config.Validation {
		if hasInstanceLayer(validationLayer) {
			p.gfx.layers = []string{validationLayer}
		} else {
			slogger().Warn("vulkan: validation requested but VK_LAYER_KHRONOS_validation is not installed")
		}
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   "radial\x00",
		ApplicationVersion: vk.MakeVersion(0, 1, 0),
		PEngineName:        "gogpu/radial\x00",
		EngineVersion:      vk.MakeVersion(0, 1, 0),
		ApiVersion:         vk.MakeVersion(1, 0, 0),
	}

	extensions := cstrings(p.window.RequiredInstanceExtensions())
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(p.gfx.layers)),
		PpEnabledLayerNames:     p.gfx.layers,
	}

	var instance vk.Instance
	if err := vkErr("create instance", vk.CreateInstance(&createInfo, nil, &instance)); err != nil {
		return nil, err
	}
	if err := vk.InitInstance(instance); err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("vulkan: init instance: %w", err)
	}
	p.gfx.Instance = instance

	return func() { vk.DestroyInstance(instance, nil) }, nil
}

func (p *Presenter) createSurface() (func(), error) {
	ptr, err := p.window.CreateSurface(p.gfx.Instance)
	if err != nil {
		return nil, fmt.Errorf("vulkan: create surface: %w", err)
	}
	surface := vk.SurfaceFromPointer(ptr)
	p.surface.Surface = surface

	instance := p.gfx.Instance
	return func() { vk.DestroySurface(instance, surface, nil) }, nil
}

// createDevice picks the first physical device with one queue family that
// supports both graphics and presentation to the surface, and that exposes
// VK_KHR_swapchain, then opens one logical device with one queue on it.
func (p *Presenter) createDevice() (func(), error) {
	devices, err := physicalDevices(p.gfx.Instance)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no Vulkan devices", radial.ErrNoSuitableDevice)
	}

	chosen := -1
	var family uint32
	var noQueue, noSwapchain int
	for i, dev := range devices {
		name := deviceName(dev)
		f, ok := findQueueFamily(dev, p.surface.Surface)
		if !ok {
			slogger().Debug("vulkan: skipping device without graphics+present queue", "device", name)
			noQueue++
			continue
		}
		if !hasDeviceExtension(dev, vk.KhrSwapchainExtensionName+"\x00") {
			slogger().Debug("vulkan: skipping device without swapchain", "device", name)
			noSwapchain++
			continue
		}
		chosen, family = i, f
		p.gfx.DeviceName = name
		break
	}
	if chosen < 0 {
		return nil, deviceSelectionError(len(devices), noQueue, noSwapchain)
	}

	p.gfx.PhysicalDevice = devices[chosen]
	p.gfx.QueueFamily = family

	extensions := []string{vk.KhrSwapchainExtensionName + "\x00"}
	createInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos: []vk.DeviceQueueCreateInfo{{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}},
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{{}},
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(p.gfx.layers)),
		PpEnabledLayerNames:     p.gfx.layers,
	}

	var device vk.Device
	if err := vkErr("create device", vk.CreateDevice(p.gfx.PhysicalDevice, &createInfo, nil, &device)); err != nil {
		return nil, err
	}
	p.gfx.Device = device

	var queue vk.Queue
	vk.GetDeviceQueue(device, family, 0, &queue)
	p.gfx.Queue = queue

	slogger().Info("vulkan: device selected", "device", p.gfx.DeviceName, "queue_family", family)
	return func() { vk.DestroyDevice(device, nil) }, nil
}

// deviceSelectionError explains why none of total devices qualified. When no
// device has a combined graphics+present queue family the error also matches
// radial.ErrNoQueueFamily.
func deviceSelectionError(total, noQueue, noSwapchain int) error {
	if total > 0 && noQueue == total {
		return fmt.Errorf("%w: %w on any of %d devices", radial.ErrNoSuitableDevice, radial.ErrNoQueueFamily, total)
	}
	return fmt.Errorf("%w: %d devices, %d without a graphics+present queue family, %d without %s",
		radial.ErrNoSuitableDevice, total, noQueue, noSwapchain, vk.KhrSwapchainExtensionName)
}

func physicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var count uint32
	if err := vkErr("enumerate devices", vk.EnumeratePhysicalDevices(instance, &count, nil)); err != nil {
		return nil, err
	}
	devices := make([]vk.PhysicalDevice, count)
	if count == 0 {
		return devices, nil
	}
	if err := vkErr("enumerate devices", vk.EnumeratePhysicalDevices(instance, &count, devices)); err != nil {
		return nil, err
	}
	return devices[:count], nil
}

// findQueueFamily returns the first queue family with graphics support that
// can also present to surface.
func findQueueFamily(dev vk.PhysicalDevice, surface vk.Surface) (uint32, bool) {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, nil)
	families := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, families)

	for i, fam := range families {
		fam.Deref()
		if fam.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) == 0 {
			continue
		}
		var present vk.Bool32
		if vk.GetPhysicalDeviceSurfaceSupport(dev, uint32(i), surface, &present) != vk.Success {
			continue
		}
		if present.B() {
			return uint32(i), true
		}
	}
	return 0, false
}

func hasDeviceExtension(dev vk.PhysicalDevice, name string) bool {
	var count uint32
	if vk.EnumerateDeviceExtensionProperties(dev, "", &count, nil) != vk.Success {
		return false
	}
	props := make([]vk.ExtensionProperties, count)
	if vk.EnumerateDeviceExtensionProperties(dev, "", &count, props) != vk.Success {
		return false
	}
	names := make([]string, 0, len(props))
	for _, ext := range props {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:])+"\x00")
	}
	return slices.Contains(names, name)
}

func hasInstanceLayer(name string) bool {
	var count uint32
	if vk.EnumerateInstanceLayerProperties(&count, nil) != vk.Success {
		return false
	}
	layers := make([]vk.LayerProperties, count)
	if vk.EnumerateInstanceLayerProperties(&count, layers) != vk.Success {
		return false
	}
	for _, l := range layers {
		l.Deref()
		if vk.ToString(l.LayerName[:])+"\x00" == name {
			return true
		}
	}
	return false
}

func deviceName(dev vk.PhysicalDevice) string {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(dev, &props)
	props.Deref()
	return vk.ToString(props.DeviceName[:])
}
