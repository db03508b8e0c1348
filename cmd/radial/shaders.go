// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/radial/internal/cli"
	"github.com/gogpu/radial/internal/shader"
)

var shadersCmd = &cobra.Command{
	Use:   "shaders",
	Short: "Compile the built-in shaders to SPIR-V files",
	Long: `Compile the embedded WGSL shaders to SPIR-V and write them to the paths
named by the configuration (or --vertex and --fragment). The run command
loads these files at startup.`,
	RunE: runShaders,
}

func init() {
	rootCmd.AddCommand(shadersCmd)
	shadersCmd.Flags().String("vertex", "", "Vertex shader output path (default: config vertex_shader)")
	shadersCmd.Flags().String("fragment", "", "Fragment shader output path (default: config fragment_shader)")
}

func runShaders(cmd *cobra.Command, _ []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	vertex, _ := cmd.Flags().GetString("vertex")
	fragment, _ := cmd.Flags().GetString("fragment")
	if vertex == "" {
		vertex = cfg.VertexShader
	}
	if fragment == "" {
		fragment = cfg.FragmentShader
	}

	if err := shader.WriteSPIRV(vertex, fragment); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\nwrote %s\n", vertex, fragment)
	return nil
}
