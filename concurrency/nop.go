// File: concurrency/nop.go
// Author: momentics <momentics@gmail.com>
//
// No-op semaphore selected when locking is disabled. A ring built on
// it is not thread-safe; callers provide their own serialization.

package concurrency

import "github.com/momentics/slotring/api"

type nopSemaphore struct{}

func (nopSemaphore) Acquire() error { return nil }
func (nopSemaphore) Release()       {}
func (nopSemaphore) Name() string   { return "nop" }
func (nopSemaphore) Destroy() error { return nil }

var nop nopSemaphore

// Nop returns the shared no-op semaphore.
func Nop() api.Semaphore { return nop }
