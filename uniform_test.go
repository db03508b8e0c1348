// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestUniformLayout(t *testing.T) {
	if UniformSize%16 != 0 {
		t.Fatalf("UniformSize = %d, want a multiple of 16", UniformSize)
	}

	u := UniformFrameState{
		Radius:       0.25,
		InnerRadius:  0.08,
		Segments:     6,
		Time:         1.5,
		MousePos:     [2]float32{-0.5, 0.75},
		SegmentGap:   0.1,
		ItemSelected: -1,
	}
	b, err := u.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(b) != UniformSize {
		t.Fatalf("len = %d, want %d", len(b), UniformSize)
	}

	f32 := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[off:])) }
	i32 := func(off int) int32 { return int32(binary.LittleEndian.Uint32(b[off:])) }

	checks := []struct {
		name string
		off  int
		got  any
		want any
	}{
		{"radius", 0, f32(0), float32(0.25)},
		{"inner_radius", 4, f32(4), float32(0.08)},
		{"segments", 8, i32(8), int32(6)},
		{"time", 12, f32(12), float32(1.5)},
		{"mouse_pos.x", 16, f32(16), float32(-0.5)},
		{"mouse_pos.y", 20, f32(20), float32(0.75)},
		{"segment_gap", 24, f32(24), float32(0.1)},
		{"item_selected", 28, i32(28), int32(-1)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s at offset %d = %v, want %v", c.name, c.off, c.got, c.want)
		}
	}

	if !bytes.Equal(b[32:], make([]byte, 16)) {
		t.Errorf("padding = %x, want zeros", b[32:])
	}
}

func TestUniformRoundTripBitIdentical(t *testing.T) {
	tests := []UniformFrameState{
		{},
		{Radius: 0.25, InnerRadius: 0.08, Segments: 6, Time: 12.345, MousePos: [2]float32{0, 0.5}, SegmentGap: 0.1, ItemSelected: 4},
		{Radius: math.MaxFloat32, InnerRadius: math.SmallestNonzeroFloat32, Segments: math.MaxInt32, Time: float32(math.Inf(1)), ItemSelected: math.MinInt32},
		{MousePos: [2]float32{float32(math.Copysign(0, -1)), math.Float32frombits(0x7fc00001)}},
	}
	for i, want := range tests {
		b, err := want.MarshalBinary()
		if err != nil {
			t.Fatalf("case %d: MarshalBinary() error = %v", i, err)
		}
		// Copy through a separate buffer as a mapped GPU write would.
		mapped := make([]byte, UniformSize)
		copy(mapped, b)

		var got UniformFrameState
		if err := got.UnmarshalBinary(mapped); err != nil {
			t.Fatalf("case %d: UnmarshalBinary() error = %v", i, err)
		}
		if !bitsEqual(got, want) {
			t.Errorf("case %d: round trip = %+v, want %+v", i, got, want)
		}
	}
}

func TestUniformAppendBinary(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	u := UniformFrameState{Segments: 3, ItemSelected: 2}
	b, err := u.AppendBinary(prefix)
	if err != nil {
		t.Fatalf("AppendBinary() error = %v", err)
	}
	if len(b) != len(prefix)+UniformSize {
		t.Fatalf("len = %d, want %d", len(b), len(prefix)+UniformSize)
	}
	if b[0] != 0xAA || b[1] != 0xBB {
		t.Errorf("prefix clobbered: %x", b[:2])
	}
	var got UniformFrameState
	if err := got.UnmarshalBinary(b[2:]); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if got != u {
		t.Errorf("got %+v, want %+v", got, u)
	}
}

func TestUniformUnmarshalShort(t *testing.T) {
	var u UniformFrameState
	err := u.UnmarshalBinary(make([]byte, UniformSize-1))
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("UnmarshalBinary(short) = %v, want ErrShortBuffer", err)
	}
}

func bitsEqual(a, b UniformFrameState) bool {
	same := func(x, y float32) bool { return math.Float32bits(x) == math.Float32bits(y) }
	return same(a.Radius, b.Radius) &&
		same(a.InnerRadius, b.InnerRadius) &&
		a.Segments == b.Segments &&
		same(a.Time, b.Time) &&
		same(a.MousePos[0], b.MousePos[0]) &&
		same(a.MousePos[1], b.MousePos[1]) &&
		same(a.SegmentGap, b.SegmentGap) &&
		a.ItemSelected == b.ItemSelected
}
