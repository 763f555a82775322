// File: alloc/heap.go
// Package alloc implements the backing-storage allocators a slot ring
// can be constructed over.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"fmt"

	"github.com/momentics/slotring/api"
)

type heapAllocator struct{}

// Heap returns the Go-heap allocator. Free is a no-op; the garbage
// collector reclaims the region once the ring drops its reference.
func Heap() api.Allocator { return heapAllocator{} }

func (heapAllocator) Alloc(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: allocation size %d", api.ErrInvalidArgument, n)
	}
	return make([]byte, n), nil
}

func (heapAllocator) Free(buf []byte) error { return nil }
