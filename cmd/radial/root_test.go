// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/radial/internal/shader"
)

// execute runs the root command with args and returns its output. Flags
// keep their values between runs, so callers pass every flag they rely on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = rootCmd.PersistentFlags().Set("config", "")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range []string{"shaders", "hittest"} {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestHitTestCommand(t *testing.T) {
	tests := []struct {
		name    string
		x, y    string
		hit     bool
		segment int
	}{
		{"right of center", "300", "200", true, 0},
		{"center dead zone", "200", "200", false, -1},
		{"below center", "200", "300", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "hittest", "--log-level", "off", "--x", tt.x, "--y", tt.y)
			if err != nil {
				t.Fatalf("hittest: %v\n%s", err, out)
			}
			var res hitResult
			if err := yaml.Unmarshal([]byte(out), &res); err != nil {
				t.Fatalf("output is not YAML: %v\n%s", err, out)
			}
			if res.Hit != tt.hit || res.Segment != tt.segment {
				t.Errorf("hit=%v segment=%d, want hit=%v segment=%d", res.Hit, res.Segment, tt.hit, tt.segment)
			}
		})
	}
}

func TestHitTestUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radial.yaml")
	if err := os.WriteFile(path, []byte("geometry:\n  segments: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Straight down is a quarter turn: segment 0 of 2.
	out, err := execute(t, "hittest", "--config", path, "--x", "200", "--y", "390")
	if err != nil {
		t.Fatalf("hittest: %v\n%s", err, out)
	}
	var res hitResult
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Hit || res.Segment != 0 {
		t.Errorf("got %+v, want segment 0", res)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "hittest", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("err = %v, want log level error", err)
	}
	// Restore for later tests.
	_ = rootCmd.PersistentFlags().Set("log-level", "off")
}

func TestShadersCommand(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "out", "radial.vert.spv")
	frag := filepath.Join(dir, "out", "radial.frag.spv")

	out, err := execute(t, "shaders", "--vertex", vert, "--fragment", frag)
	if err != nil {
		t.Fatalf("shaders: %v\n%s", err, out)
	}
	for _, p := range []string{vert, frag} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) < 4 || binary.LittleEndian.Uint32(data) != shader.Magic {
			t.Errorf("%s does not start with the SPIR-V magic number", p)
		}
	}
}
