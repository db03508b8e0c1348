// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

import (
	"testing"

	vk "github.com/goki/vulkan"

	"github.com/gogpu/radial/internal/shader"
)

func TestShaderModuleInfo(t *testing.T) {
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		t.Run(stage.String(), func(t *testing.T) {
			code, err := shader.CompileStage(stage)
			if err != nil {
				t.Fatal(err)
			}
			info := shaderModuleInfo(code)
			if info.SType != vk.StructureTypeShaderModuleCreateInfo {
				t.Errorf("SType = %v", info.SType)
			}
			want := uint64(len(code)) * 4
			if info.CodeSize != want {
				t.Errorf("CodeSize = %d, want %d bytes", info.CodeSize, want)
			}
			if len(info.PCode) != len(code) || info.PCode[0] != shader.Magic {
				t.Errorf("PCode does not carry the SPIR-V words")
			}
		})
	}
}
