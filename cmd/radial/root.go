// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/radial/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:          "radial",
	Short:        "Radial selection overlay",
	Long:         "Show a transparent radial menu around the cursor and report the segment selected when the modifier is released.",
	SilenceUsage: true,
}

func init() {
	cli.AddRootFlags(rootCmd)
}
