// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/internal/annotate"
	"github.com/gogpu/radial/internal/cli"
	"github.com/gogpu/radial/internal/headless"
)

var rootCmd = &cobra.Command{
	Use:   "radial-snapshot",
	Short: "Render the radial menu offscreen and save it as PNG",
	Long: `Render the menu offscreen with the cursor at a window-relative position
and write the last frame to a PNG file. Segment indices are drawn on top
unless --labels=false.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runSnapshot,
}

// openPresenter opens the offscreen presenter for cfg.
var openPresenter = func(cfg radial.Config) (*headless.Presenter, error) {
	return headless.Open(cfg)
}

func init() {
	cli.AddRootFlags(rootCmd)
	cli.AddGeometryFlags(rootCmd)
	rootCmd.Flags().StringP("output", "o", "radial.png", "Output PNG path")
	rootCmd.Flags().Int("cursor-x", 0, "Cursor x in window pixels (default: window center)")
	rootCmd.Flags().Int("cursor-y", 0, "Cursor y in window pixels (default: window center)")
	rootCmd.Flags().Int("frames", 3, "Number of frames to render before capture")
	rootCmd.Flags().Bool("labels", true, "Draw segment indices")
}

// staticWindow is a window fixed at the screen origin with a fixed cursor.
type staticWindow struct {
	rect   radial.Rect
	cursor radial.Point
}

func (w staticWindow) CursorPos() radial.Point { return w.cursor }
func (w staticWindow) Rect() radial.Rect       { return w.rect }

// frameClock advances by step on every call, so Time in the uniform block
// depends only on the frame number.
func frameClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		now := t
		t = t.Add(step)
		return now
	}
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	output, _ := flags.GetString("output")
	frames, _ := flags.GetInt("frames")
	labels, _ := flags.GetBool("labels")
	if frames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", frames)
	}

	win := staticWindow{rect: radial.Rect{Max: radial.Point{X: cfg.Width, Y: cfg.Height}}}
	win.cursor = win.rect.Center()
	if flags.Changed("cursor-x") {
		win.cursor.X, _ = flags.GetInt("cursor-x")
	}
	if flags.Changed("cursor-y") {
		win.cursor.Y, _ = flags.GetInt("cursor-y")
	}

	p, err := openPresenter(cfg)
	if err != nil {
		return err
	}

	state := radial.NewOverlayState()
	state.Visible = true
	r := radial.NewRenderer(p, win, state,
		radial.WithGeometry(cfg.Geometry),
		radial.WithClock(frameClock(cfg.FrameInterval)))
	defer r.Close()

	for range frames {
		if err := r.RenderFrame(); err != nil {
			return err
		}
	}
	img, err := p.Snapshot()
	if err != nil {
		return err
	}
	if labels {
		annotate.Segments(img, cfg.Geometry, state.Selected)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, selected %d)\n", output, cfg.Width, cfg.Height, state.Selected)
	return nil
}
