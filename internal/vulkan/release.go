// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package vulkan

// releaseStack records how to destroy each resource tier as it is created
// and destroys them in reverse. A failed Open unwinds whatever was built.
type releaseStack struct {
	entries []releaseEntry
}

type releaseEntry struct {
	name    string
	release func()
}

// push registers release for the tier called name.
func (s *releaseStack) push(name string, release func()) {
	s.entries = append(s.entries, releaseEntry{name: name, release: release})
}

// unwind runs every registered release in reverse order and empties the
// stack. It returns the tier names in the order they were released.
func (s *releaseStack) unwind() []string {
	names := make([]string, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		slogger().Debug("vulkan: release", "tier", e.name)
		if e.release != nil {
			e.release()
		}
		names = append(names, e.name)
	}
	s.entries = nil
	return names
}

// len returns the number of registered tiers.
func (s *releaseStack) len() int { return len(s.entries) }

// stage is one tier of presenter construction.
type stage[T any] struct {
	name  string
	build func(T) (release func(), err error)
}

// runStages builds each stage in order, pushing its release on success.
// On failure the error is returned and already built tiers stay on rs for
// the caller to unwind.
func runStages[T any](target T, stages []stage[T], rs *releaseStack) error {
	for _, st := range stages {
		release, err := st.build(target)
		if err != nil {
			return err
		}
		rs.push(st.name, release)
	}
	return nil
}
