// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/cli"
)

var hittestCmd = &cobra.Command{
	Use:   "hittest",
	Short: "Print the segment under a window-relative cursor",
	RunE:  runHitTest,
}

func init() {
	rootCmd.AddCommand(hittestCmd)
	cli.AddGeometryFlags(hittestCmd)
	hittestCmd.Flags().Int("x", 0, "Cursor x in window pixels")
	hittestCmd.Flags().Int("y", 0, "Cursor y in window pixels")
}

// hitResult is the YAML document hittest prints.
type hitResult struct {
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	NX      float32 `yaml:"nx"`
	NY      float32 `yaml:"ny"`
	Hit     bool    `yaml:"hit"`
	Segment int     `yaml:"segment"`
}

func runHitTest(cmd *cobra.Command, _ []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	window := radial.Rect{Max: radial.Point{X: cfg.Width, Y: cfg.Height}}
	nx, ny := radial.Normalize(radial.Point{X: x, Y: y}, window)
	segment, hit := cfg.Geometry.Segment(nx, ny)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(hitResult{X: x, Y: y, NX: nx, NY: ny, Hit: hit, Segment: segment}); err != nil {
		return err
	}
	return enc.Close()
}
