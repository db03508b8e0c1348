// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/cli"
	"github.com/gogpu/radial/internal/window"
	"github.com/gogpu/radial/vulkan"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the overlay until the modifier is released",
	Long: `Open the overlay centered on the cursor and render it until Alt is released.
The selected segment, if any, is printed as "Selected Segment: N".
Alt+R re-centers the menu, Escape closes it without a selection.

Bind this command to Alt+R in the desktop's hotkey settings.`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)
	cli.AddGeometryFlags(runCmd)
	runCmd.Flags().Bool("validation", false, "Enable the Vulkan validation layer")
	runCmd.Flags().String("present-mode", "", "Present mode: fifo, mailbox, immediate (default: mailbox, else fifo)")
}

func runOverlay(cmd *cobra.Command, _ []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("validation") {
		cfg.Validation, _ = cmd.Flags().GetBool("validation")
	}
	if cmd.Flags().Changed("present-mode") {
		cfg.PresentMode, _ = cmd.Flags().GetString("present-mode")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	win, err := window.Open(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer win.Close()

	p, err := vulkan.Open(win, cfg)
	if err != nil {
		return err
	}

	state := radial.NewOverlayState()
	r := radial.NewRenderer(p, win, state, radial.WithGeometry(cfg.Geometry))
	defer func() {
		if err := r.Close(); err != nil {
			radial.Logger().Warn("radial: close renderer", "err", err)
		}
	}()

	out := cmd.OutOrStdout()
	g := radial.NewGesture(state, win, func(segment int) {
		fmt.Fprintf(out, "Selected Segment: %d\n", segment)
	})

	done := false
	win.OnKey(func(a window.KeyAction) {
		radial.Logger().Debug("radial: key", "action", a)
		switch a {
		case window.KeyShow:
			g.Press()
		case window.KeyRelease:
			g.Release()
			done = true
		case window.KeyCancel:
			state.ClearSelection()
			g.Release()
			done = true
		}
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	g.Press()
	return loop(ctx, win, r, cfg.FrameInterval, func() bool { return done })
}

// loop polls events and renders one frame per iteration, pausing interval
// between iterations, until finished reports true, the window is closed or
// ctx is canceled.
func loop(ctx context.Context, win *window.Window, r *radial.Renderer, interval time.Duration, finished func() bool) error {
	for !finished() && !win.ShouldClose() {
		win.PollEvents()
		if err := r.RenderFrame(); err != nil {
			if errors.Is(err, radial.ErrSurfaceOutOfDate) {
				return fmt.Errorf("%w (resizing is not supported)", err)
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
	return nil
}
