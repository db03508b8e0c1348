// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli holds the flag and configuration plumbing shared by the radial
// commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/radial"
)

// AddRootFlags registers --config and --log-level on root and installs the
// hook that applies the log level before any subcommand runs.
func AddRootFlags(root *cobra.Command) {
	root.PersistentFlags().String("config", "", "YAML configuration file (defaults apply when empty)")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error, off")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		level, _ := root.PersistentFlags().GetString("log-level")
		return SetupLogging(level)
	}
}

// SetupLogging routes radial's logger to stderr at level. "off" disables it.
func SetupLogging(level string) error {
	var l slog.Level
	switch strings.ToLower(level) {
	case "off", "":
		radial.SetLogger(nil)
		return nil
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unsupported log level: %s (use debug, info, warn, error or off)", level)
	}
	radial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

// LoadConfig returns the file named by --config layered over the defaults,
// then applies the geometry flags cmd defines.
func LoadConfig(cmd *cobra.Command) (radial.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := radial.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = radial.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("segments") {
		cfg.Geometry.Segments, _ = flags.GetInt("segments")
	}
	if flags.Changed("radius") {
		cfg.Geometry.Radius, _ = flags.GetFloat32("radius")
	}
	if flags.Changed("inner-radius") {
		cfg.Geometry.InnerRadius, _ = flags.GetFloat32("inner-radius")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// AddGeometryFlags registers the geometry overrides read by LoadConfig.
func AddGeometryFlags(cmd *cobra.Command) {
	d := radial.DefaultGeometry()
	cmd.Flags().Int("segments", d.Segments, "Number of menu segments")
	cmd.Flags().Float32("radius", d.Radius, "Outer radius in normalized units")
	cmd.Flags().Float32("inner-radius", d.InnerRadius, "Dead-zone radius in normalized units")
}
