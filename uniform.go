// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UniformSize is the byte size of the uniform block the fragment shader
// reads. The 32 bytes of fields are followed by 16 bytes of zero padding.
const UniformSize = 48

// Byte offsets of each field inside the uniform block.
const (
	offRadius       = 0
	offInnerRadius  = 4
	offSegments     = 8
	offTime         = 12
	offMousePos     = 16
	offSegmentGap   = 24
	offItemSelected = 28
	offPadding      = 32
)

// UniformFrameState is the per-frame uniform block consumed by the fragment
// shader. Field order and widths match the shader's std140 struct:
//
//	offset  0  radius         f32
//	offset  4  inner_radius   f32
//	offset  8  segments       i32
//	offset 12  time           f32
//	offset 16  mouse_pos      vec2<f32>
//	offset 24  segment_gap    f32
//	offset 28  item_selected  i32   (-1 = none)
//	offset 32  padding        16 bytes
type UniformFrameState struct {
	Radius       float32
	InnerRadius  float32
	Segments     int32
	Time         float32
	MousePos     [2]float32
	SegmentGap   float32
	ItemSelected int32
}

// AppendBinary appends the little-endian uniform encoding of u to b.
func (u UniformFrameState) AppendBinary(b []byte) ([]byte, error) {
	start := len(b)
	b = append(b, make([]byte, UniformSize)...)
	buf := b[start:]

	putF32(buf[offRadius:], u.Radius)
	putF32(buf[offInnerRadius:], u.InnerRadius)
	binary.LittleEndian.PutUint32(buf[offSegments:], uint32(u.Segments))
	putF32(buf[offTime:], u.Time)
	putF32(buf[offMousePos:], u.MousePos[0])
	putF32(buf[offMousePos+4:], u.MousePos[1])
	putF32(buf[offSegmentGap:], u.SegmentGap)
	binary.LittleEndian.PutUint32(buf[offItemSelected:], uint32(u.ItemSelected))
	return b, nil
}

// MarshalBinary returns the UniformSize-byte encoding of u.
func (u UniformFrameState) MarshalBinary() ([]byte, error) {
	return u.AppendBinary(make([]byte, 0, UniformSize))
}

// UnmarshalBinary decodes a uniform block. Bytes past the fields are ignored.
func (u *UniformFrameState) UnmarshalBinary(data []byte) error {
	if len(data) < UniformSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortBuffer, len(data), UniformSize)
	}
	u.Radius = getF32(data[offRadius:])
	u.InnerRadius = getF32(data[offInnerRadius:])
	u.Segments = int32(binary.LittleEndian.Uint32(data[offSegments:]))
	u.Time = getF32(data[offTime:])
	u.MousePos[0] = getF32(data[offMousePos:])
	u.MousePos[1] = getF32(data[offMousePos+4:])
	u.SegmentGap = getF32(data[offSegmentGap:])
	u.ItemSelected = int32(binary.LittleEndian.Uint32(data[offItemSelected:]))
	return nil
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
