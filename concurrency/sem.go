// File: concurrency/sem.go
// Package concurrency implements the binary semaphore primitives
// serializing slot ring operations.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/slotring/api"
)

// BinarySemaphore is a named, channel-backed binary semaphore.
// Acquire blocks with unbounded wait while another holder is inside;
// once Destroy has run, Acquire fails and waiters are woken with an
// error instead of a grant.
type BinarySemaphore struct {
	name      string
	ch        chan struct{}
	destroyed atomic.Bool
}

// NewSemaphore creates a named binary semaphore in the released state.
func NewSemaphore(name string) *BinarySemaphore {
	s := &BinarySemaphore{
		name: name,
		ch:   make(chan struct{}, 1),
	}
	s.ch <- struct{}{}
	return s
}

// Acquire takes the semaphore, blocking until it is available.
// Returns ErrLockFailed once the semaphore has been destroyed.
func (s *BinarySemaphore) Acquire() error {
	if s.destroyed.Load() {
		return s.failure()
	}
	if _, ok := <-s.ch; !ok {
		return s.failure()
	}
	return nil
}

// Release returns the semaphore. Releasing an already-released binary
// semaphore is a no-op rather than an overflow.
func (s *BinarySemaphore) Release() {
	if s.destroyed.Load() {
		return
	}
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Name returns the identifier given at creation.
func (s *BinarySemaphore) Name() string { return s.name }

// Destroy invalidates the semaphore and wakes blocked acquirers with
// an error. The caller must hold the semaphore or guarantee no
// concurrent Release is in flight.
func (s *BinarySemaphore) Destroy() error {
	if s.destroyed.Swap(true) {
		return fmt.Errorf("semaphore %q: %w", s.name, api.ErrInvalidArgument)
	}
	close(s.ch)
	return nil
}

func (s *BinarySemaphore) failure() error {
	return fmt.Errorf("semaphore %q: %w", s.name, api.ErrLockFailed)
}

var _ api.Semaphore = (*BinarySemaphore)(nil)
