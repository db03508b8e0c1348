// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package headless

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/radial"
)

// createNoopDevice creates a noop device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

func testConfig() radial.Config {
	cfg := radial.DefaultConfig()
	cfg.Width, cfg.Height = 96, 64
	return cfg
}

func openNoop(t *testing.T, opts ...Option) *Presenter {
	t.Helper()
	device, queue := createNoopDevice(t)
	p, err := Open(testConfig(), append([]Option{WithDevice(device, queue)}, opts...)...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestOpen(t *testing.T) {
	p := openNoop(t)

	if got := p.ImageCount(); got != DefaultImageCount {
		t.Errorf("ImageCount() = %d, want %d", got, DefaultImageCount)
	}
	if w, h := p.Size(); w != 96 || h != 64 {
		t.Errorf("Size() = %dx%d, want 96x64", w, h)
	}
	if p.Presented() != -1 {
		t.Errorf("Presented() = %d before any frame", p.Presented())
	}
	if p.owned {
		t.Error("presenter must not own a caller-provided device")
	}
}

func TestOpenImageCount(t *testing.T) {
	p := openNoop(t, WithImageCount(5))
	if got := p.ImageCount(); got != 5 {
		t.Errorf("ImageCount() = %d, want 5", got)
	}
}

func TestOpenInvalidConfig(t *testing.T) {
	device, queue := createNoopDevice(t)
	cfg := testConfig()
	cfg.Width = 0
	_, err := Open(cfg, WithDevice(device, queue))
	if !errors.Is(err, radial.ErrInvalidConfig) {
		t.Errorf("Open() error = %v, want ErrInvalidConfig", err)
	}
}

func TestOpenDeviceWithoutQueue(t *testing.T) {
	device, _ := createNoopDevice(t)
	if _, err := Open(testConfig(), WithDevice(device, nil)); err == nil {
		t.Error("Open() with nil queue succeeded")
	}
}

func TestAcquireRingOrder(t *testing.T) {
	p := openNoop(t)
	for i := range 2 * DefaultImageCount {
		img, err := p.AcquireImage(i % radial.FramesInFlight)
		if err != nil {
			t.Fatal(err)
		}
		if want := i % DefaultImageCount; img != want {
			t.Errorf("acquire %d = image %d, want %d", i, img, want)
		}
	}
}

func TestSchedulerFrames(t *testing.T) {
	p := openNoop(t)
	s := radial.NewScheduler(p, nil)

	produce := func() radial.UniformFrameState {
		g := radial.DefaultGeometry()
		return radial.UniformFrameState{
			Radius:       g.Radius,
			InnerRadius:  g.InnerRadius,
			Segments:     int32(g.Segments),
			SegmentGap:   g.SegmentGap,
			ItemSelected: 2,
		}
	}
	for i := range 7 {
		if err := s.Frame(produce); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if s.Frames() != 7 {
		t.Errorf("Frames() = %d, want 7", s.Frames())
	}
	// Seven frames over a ring of three end on image 0.
	if p.Presented() != 0 {
		t.Errorf("Presented() = %d, want 0", p.Presented())
	}

	img, err := p.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 96 || b.Dy() != 64 {
		t.Errorf("snapshot bounds = %v", b)
	}
}

func TestSnapshotBeforePresent(t *testing.T) {
	p := openNoop(t)
	if _, err := p.Snapshot(); !errors.Is(err, ErrNothingPresented) {
		t.Errorf("Snapshot() error = %v, want ErrNothingPresented", err)
	}
}

func TestWriteUniformRejectsWrongSize(t *testing.T) {
	p := openNoop(t)
	if err := p.WriteUniform(0, make([]byte, radial.UniformSize-4)); err == nil {
		t.Error("WriteUniform accepted a short block")
	}
	if err := p.WriteUniform(0, make([]byte, radial.UniformSize)); err != nil {
		t.Errorf("WriteUniform: %v", err)
	}
	if err := p.WriteUniform(DefaultImageCount, make([]byte, radial.UniformSize)); err == nil {
		t.Error("WriteUniform accepted an out-of-range image")
	}
}

func TestSlotRange(t *testing.T) {
	p := openNoop(t)
	for _, slot := range []int{-1, radial.FramesInFlight} {
		if err := p.WaitFrame(slot); err == nil {
			t.Errorf("WaitFrame(%d) succeeded", slot)
		}
		if _, err := p.AcquireImage(slot); err == nil {
			t.Errorf("AcquireImage(%d) succeeded", slot)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := openNoop(t)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := p.WaitFrame(0); !errors.Is(err, radial.ErrClosed) {
		t.Errorf("WaitFrame after Close = %v, want ErrClosed", err)
	}
	if _, err := p.Snapshot(); !errors.Is(err, radial.ErrClosed) {
		t.Errorf("Snapshot after Close = %v, want ErrClosed", err)
	}
}

type plainProvider struct{}

func (plainProvider) Device() gpucontext.Device             { return nil }
func (plainProvider) Queue() gpucontext.Queue               { return nil }
func (plainProvider) Adapter() gpucontext.Adapter           { return nil }
func (plainProvider) SurfaceFormat() gputypes.TextureFormat { return Format }

type halProvider struct {
	plainProvider
	device hal.Device
	queue  hal.Queue
}

func (h halProvider) HalDevice() any { return h.device }
func (h halProvider) HalQueue() any  { return h.queue }

func TestWithDeviceProvider(t *testing.T) {
	if _, err := Open(testConfig(), WithDeviceProvider(plainProvider{})); err == nil {
		t.Error("Open() accepted a provider without HAL access")
	}

	device, queue := createNoopDevice(t)
	p, err := Open(testConfig(), WithDeviceProvider(halProvider{device: device, queue: queue}))
	if err != nil {
		t.Fatalf("Open with provider: %v", err)
	}
	defer p.Close()
	if p.device != device {
		t.Error("provider device not used")
	}
}

func TestUnpadRows(t *testing.T) {
	const w, h, pitch = 2, 2, 12
	raw := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0,
		9, 10, 11, 12, 13, 14, 15, 16, 0, 0, 0, 0,
	}
	img := unpadRows(raw, w, h, pitch)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Fatalf("Pix = %v, want %v", img.Pix, want)
		}
	}
}
