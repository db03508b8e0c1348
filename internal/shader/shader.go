// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader loads and produces the SPIR-V modules the radial menu
// pipeline is built from.
package shader

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources.

//go:embed shaders/radial_vert.wgsl
var vertexSource string

//go:embed shaders/radial_frag.wgsl
var fragmentSource string

// Stage identifies a pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// String returns the lower-case stage name.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// EntryPoint returns the entry point name of the embedded shader for s.
func (s Stage) EntryPoint() string {
	if s == Vertex {
		return "vs_main"
	}
	return "fs_main"
}

// Source returns the embedded WGSL source for s.
func Source(s Stage) string {
	if s == Vertex {
		return vertexSource
	}
	return fragmentSource
}

// Compile compiles WGSL source to SPIR-V words.
func Compile(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	return Words(spirvBytes)
}

// CompileStage compiles the embedded shader for s.
func CompileStage(s Stage) ([]uint32, error) {
	words, err := Compile(Source(s))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s, err)
	}
	return words, nil
}

// WriteSPIRV compiles both embedded stages and writes them to the given
// paths as raw little-endian SPIR-V, creating parent directories.
func WriteSPIRV(vertexPath, fragmentPath string) error {
	for _, out := range []struct {
		stage Stage
		path  string
	}{
		{Vertex, vertexPath},
		{Fragment, fragmentPath},
	} {
		words, err := CompileStage(out.stage)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
			return fmt.Errorf("create shader dir: %w", err)
		}
		if err := os.WriteFile(out.path, Bytes(words), 0o644); err != nil {
			return fmt.Errorf("write %s shader: %w", out.stage, err)
		}
	}
	return nil
}
