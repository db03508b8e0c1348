// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package headless

import (
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DefaultImageCount is the size of the offscreen image ring.
const DefaultImageCount = 3

// Option configures Open.
type Option func(*options)

type options struct {
	provider   gpucontext.DeviceProvider
	device     hal.Device
	queue      hal.Queue
	imageCount int
	timeout    time.Duration
}

func defaultOptions() options {
	return options{
		imageCount: DefaultImageCount,
		timeout:    5 * time.Second,
	}
}

// WithDeviceProvider renders on a device shared by the host application.
// The provider must also expose HalDevice() any and HalQueue() any.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithDevice renders on an already opened HAL device and queue. The caller
// keeps ownership of both.
func WithDevice(device hal.Device, queue hal.Queue) Option {
	return func(o *options) {
		o.device = device
		o.queue = queue
	}
}

// WithImageCount sets the number of offscreen images. Values below one are
// ignored.
func WithImageCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.imageCount = n
		}
	}
}

// WithTimeout bounds every fence wait.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}
