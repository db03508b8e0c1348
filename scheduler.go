// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package radial

import (
	"fmt"
	"log/slog"
)

// Scheduler paces CPU frame production against the GPU with FramesInFlight
// slots. It is not safe for concurrent use.
//
// Besides the per-slot fence, the scheduler remembers which frame last
// submitted each image. When an acquired image belongs to the latest,
// not yet waited submission of the other slot, that slot's fence is waited
// before the image's uniform buffer is rewritten.
type Scheduler struct {
	presenter Presenter
	logger    *slog.Logger

	frame uint64

	// imageFrame[i] is the frame that last submitted image i, or -1.
	imageFrame []int64

	// slotFrame[s] is the latest frame submitted from slot s.
	slotFrame [FramesInFlight]int64

	// pending[s] is true between a submission from slot s and the next wait
	// on its fence.
	pending [FramesInFlight]bool

	// aborted is the first failure after a fence reset. The loop cannot
	// resume from it.
	aborted error
}

// NewScheduler returns a scheduler driving p. A nil logger uses the package
// logger.
func NewScheduler(p Presenter, logger *slog.Logger) *Scheduler {
	imageFrame := make([]int64, p.ImageCount())
	for i := range imageFrame {
		imageFrame[i] = -1
	}
	return &Scheduler{presenter: p, logger: logger, imageFrame: imageFrame}
}

// Slot returns the slot the next frame will use.
func (s *Scheduler) Slot() int {
	return int(s.frame % FramesInFlight)
}

// Frames returns the number of frames completed successfully.
func (s *Scheduler) Frames() uint64 {
	return s.frame
}

// Frame runs one frame: wait and reset the slot, acquire an image, fill its
// uniform buffer from produce, submit and present. Errors are returned
// wrapped and the frame counter is left unchanged.
//
// A failed wait leaves the slot untouched and the frame may be retried. Any
// failure after the fence reset is final: this and every later call return
// an error matching ErrFrameAborted and the failure itself.
func (s *Scheduler) Frame(produce func() UniformFrameState) error {
	if s.aborted != nil {
		return fmt.Errorf("%w: %w", ErrFrameAborted, s.aborted)
	}
	slot := s.Slot()

	if err := s.wait(slot); err != nil {
		return err
	}
	if err := s.submitFrame(slot, produce); err != nil {
		s.aborted = err
		return fmt.Errorf("%w: %w", ErrFrameAborted, err)
	}
	s.frame++
	return nil
}

// submitFrame runs the steps between the fence reset and present for slot.
func (s *Scheduler) submitFrame(slot int, produce func() UniformFrameState) error {
	p := s.presenter
	if err := p.ResetFrame(slot); err != nil {
		return fmt.Errorf("radial: reset frame %d: %w", slot, err)
	}

	image, err := p.AcquireImage(slot)
	if err != nil {
		return fmt.Errorf("radial: acquire: %w", err)
	}
	if image < 0 || image >= len(s.imageFrame) {
		return fmt.Errorf("radial: acquire: image index %d out of range [0, %d)", image, len(s.imageFrame))
	}

	if owner, busy := s.imageOwner(image); busy && owner != slot {
		s.log().Debug("radial: waiting on image owner", "image", image, "owner", owner, "slot", slot)
		if err := s.wait(owner); err != nil {
			return err
		}
	}

	u := produce()
	data, err := u.MarshalBinary()
	if err != nil {
		return fmt.Errorf("radial: encode uniform: %w", err)
	}
	if err := p.WriteUniform(image, data); err != nil {
		return fmt.Errorf("radial: write uniform %d: %w", image, err)
	}

	if err := p.Submit(slot, image); err != nil {
		return fmt.Errorf("radial: submit: %w", err)
	}
	f := int64(s.frame)
	s.imageFrame[image] = f
	s.slotFrame[slot] = f
	s.pending[slot] = true

	if err := p.Present(slot, image); err != nil {
		return fmt.Errorf("radial: present: %w", err)
	}
	return nil
}

// imageOwner returns the slot that submitted image and whether that
// submission may still be executing. Older submissions from the same slot
// finished before the slot's fence was last waited.
func (s *Scheduler) imageOwner(image int) (int, bool) {
	f := s.imageFrame[image]
	if f < 0 {
		return 0, false
	}
	owner := int(f % FramesInFlight)
	return owner, s.pending[owner] && s.slotFrame[owner] == f
}

func (s *Scheduler) wait(slot int) error {
	if err := s.presenter.WaitFrame(slot); err != nil {
		return fmt.Errorf("radial: wait frame %d: %w", slot, err)
	}
	s.pending[slot] = false
	return nil
}

func (s *Scheduler) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}
