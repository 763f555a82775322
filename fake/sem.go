// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides scriptable collaborators for testing ring
// failure paths without real contention.
package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/slotring/api"
)

// Semaphore is a scriptable api.Semaphore that counts its
// acquisitions. Use NewSemaphore for one that never fails on its own;
// the zero value fails every Acquire.
type Semaphore struct {
	// FailAfter makes Acquire fail once this many acquisitions have
	// succeeded. Negative means never fail.
	FailAfter int

	mu        sync.Mutex
	acquires  int
	releases  int
	destroyed bool
}

// NewSemaphore returns a fake that never fails on its own.
func NewSemaphore() *Semaphore {
	return &Semaphore{FailAfter: -1}
}

// FailingSemaphore returns a fake whose every Acquire fails,
// mimicking an abandoned primitive.
func FailingSemaphore() *Semaphore {
	return &Semaphore{FailAfter: 0}
}

func (s *Semaphore) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return fmt.Errorf("fake semaphore: %w", api.ErrLockFailed)
	}
	if s.FailAfter >= 0 && s.acquires >= s.FailAfter {
		return fmt.Errorf("fake semaphore: %w", api.ErrLockFailed)
	}
	s.acquires++
	return nil
}

func (s *Semaphore) Release() {
	s.mu.Lock()
	s.releases++
	s.mu.Unlock()
}

func (s *Semaphore) Name() string { return "fake" }

func (s *Semaphore) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return fmt.Errorf("fake semaphore: %w", api.ErrInvalidArgument)
	}
	s.destroyed = true
	return nil
}

// Acquires reports how many acquisitions succeeded.
func (s *Semaphore) Acquires() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquires
}

// Releases reports how many releases were made.
func (s *Semaphore) Releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releases
}

// Destroyed reports whether Destroy has run.
func (s *Semaphore) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

var _ api.Semaphore = (*Semaphore)(nil)
