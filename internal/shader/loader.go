// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gogpu/radial"
)

// Magic is the first word of every SPIR-V module.
const Magic uint32 = 0x07230203

// LoadError describes a shader file that could not be turned into SPIR-V
// words. It matches radial.ErrShaderLoad with errors.Is.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "shader " + e.Reason
	if e.Path != "" {
		msg = "shader " + e.Path + ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns radial.ErrShaderLoad and the underlying cause, if any.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{radial.ErrShaderLoad}
	}
	return []error{radial.ErrShaderLoad, e.Err}
}

// Load reads a SPIR-V file and returns its words.
func Load(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read failed", Err: err}
	}
	words, err := Words(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return words, nil
}

// Words converts raw little-endian SPIR-V bytes to words. The input must be
// non-empty, a whole number of words and start with Magic.
func Words(data []byte) ([]uint32, error) {
	switch {
	case len(data) == 0:
		return nil, &LoadError{Reason: "is empty"}
	case len(data)%4 != 0:
		return nil, &LoadError{Reason: fmt.Sprintf("length %d is not a multiple of 4", len(data))}
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	if words[0] != Magic {
		return nil, &LoadError{Reason: fmt.Sprintf("bad magic 0x%08x", words[0])}
	}
	return words, nil
}

// Bytes returns the little-endian encoding of words.
func Bytes(words []uint32) []byte {
	b := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}
