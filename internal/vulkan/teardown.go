// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import "time"

// Close waits for the device to go idle, then destroys every GPU object in
// reverse construction order. A second Close is a no-op.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}

	start := time.Now()
	err := p.WaitIdle()
	if err != nil {
		// Destruction still proceeds; the device is going away either way.
		slogger().Warn("vulkan: wait idle before teardown failed", "err", err)
	}

	p.closed = true
	released := p.release.unwind()
	slogger().Info("vulkan: presenter closed",
		"tiers", len(released), "elapsed", time.Since(start))
	return err
}
