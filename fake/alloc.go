// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/slotring/api"
)

// Allocator is an accounting api.Allocator over the Go heap. It tracks
// allocation and free counts so tests can assert the exactly-once
// storage lifecycle, and can be scripted to fail.
type Allocator struct {
	// FailAlloc makes every Alloc return an error.
	FailAlloc bool

	mu     sync.Mutex
	allocs int
	frees  int
	bytes  int
}

func (a *Allocator) Alloc(n int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.FailAlloc {
		return nil, fmt.Errorf("fake allocator: %w", api.ErrAllocFailed)
	}
	if n < 1 {
		return nil, fmt.Errorf("fake allocator: %w: size %d", api.ErrInvalidArgument, n)
	}
	a.allocs++
	a.bytes += n
	return make([]byte, n), nil
}

func (a *Allocator) Free(buf []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if buf == nil {
		return nil
	}
	a.frees++
	return nil
}

// Allocs reports how many regions were handed out.
func (a *Allocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// Frees reports how many regions were returned.
func (a *Allocator) Frees() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frees
}

// Bytes reports the total bytes handed out.
func (a *Allocator) Bytes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bytes
}

var _ api.Allocator = (*Allocator)(nil)
