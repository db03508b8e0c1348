// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Present modes accepted by Config.PresentMode.
const (
	PresentModeAuto      = ""
	PresentModeFIFO      = "fifo"
	PresentModeMailbox   = "mailbox"
	PresentModeImmediate = "immediate"
)

// Config holds the startup settings of the overlay.
type Config struct {
	// Geometry is the menu shape.
	Geometry Geometry `yaml:"geometry"`

	// Width and Height are the window size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Title is the window title.
	Title string `yaml:"title"`

	// ClearColor is the RGBA the render pass clears to. The default magenta
	// doubles as the color key on compositors without per-pixel alpha.
	ClearColor [4]float32 `yaml:"clear_color"`

	// PresentMode requests a present mode. Empty prefers mailbox and falls
	// back to fifo.
	PresentMode string `yaml:"present_mode"`

	// VertexShader and FragmentShader are SPIR-V file paths.
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`

	// VertexEntry and FragmentEntry are the shader entry point names.
	VertexEntry   string `yaml:"vertex_entry"`
	FragmentEntry string `yaml:"fragment_entry"`

	// Validation enables the Khronos validation layer when installed.
	Validation bool `yaml:"validation"`

	// FrameInterval is the pause between loop iterations.
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Geometry:       DefaultGeometry(),
		Width:          400,
		Height:         400,
		Title:          "radial",
		ClearColor:     [4]float32{1, 0, 1, 1},
		PresentMode:    PresentModeAuto,
		VertexShader:   "shaders/radial.vert.spv",
		FragmentShader: "shaders/radial.frag.spv",
		VertexEntry:    "vs_main",
		FragmentEntry:  "fs_main",
		FrameInterval:  16 * time.Millisecond,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the
// result. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("radial: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("radial: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.PresentMode {
	case PresentModeAuto, PresentModeFIFO, PresentModeMailbox, PresentModeImmediate:
	default:
		return fmt.Errorf("%w: unknown present_mode %q", ErrInvalidConfig, c.PresentMode)
	}
	if c.VertexShader == "" || c.FragmentShader == "" {
		return fmt.Errorf("%w: shader paths must be set", ErrInvalidConfig)
	}
	if c.VertexEntry == "" || c.FragmentEntry == "" {
		return fmt.Errorf("%w: shader entry points must be set", ErrInvalidConfig)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("%w: negative frame_interval", ErrInvalidConfig)
	}
	return nil
}

// Marshal returns the YAML encoding of c.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
