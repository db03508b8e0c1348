// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radial.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
geometry:
  segments: 8
  inner_radius: 0.1
present_mode: fifo
clear_color: [0, 0, 0, 0]
frame_interval: 8ms
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Geometry.Segments != 8 || cfg.Geometry.InnerRadius != 0.1 {
		t.Errorf("geometry = %+v", cfg.Geometry)
	}
	if cfg.Geometry.Radius != 0.25 {
		t.Errorf("radius = %v, want default 0.25", cfg.Geometry.Radius)
	}
	if cfg.PresentMode != PresentModeFIFO {
		t.Errorf("present_mode = %q", cfg.PresentMode)
	}
	if cfg.ClearColor != [4]float32{} {
		t.Errorf("clear_color = %v", cfg.ClearColor)
	}
	if cfg.FrameInterval != 8*time.Millisecond {
		t.Errorf("frame_interval = %v", cfg.FrameInterval)
	}
	if cfg.VertexShader != DefaultConfig().VertexShader {
		t.Errorf("vertex_shader = %q, want default", cfg.VertexShader)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"bad segments", "geometry:\n  segments: 0\n", ErrInvalidGeometry},
		{"bad present mode", "present_mode: vsync\n", ErrInvalidConfig},
		{"bad size", "width: 0\n", ErrInvalidConfig},
		{"empty shader", "fragment_shader: \"\"\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadConfig() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) = %v, want ErrNotExist", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "geometry: [unclosed\n")); err == nil {
		t.Error("LoadConfig(malformed) succeeded")
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Geometry.Segments = 5
	data, err := want.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(writeConfig(t, string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
