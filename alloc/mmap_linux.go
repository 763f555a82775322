//go:build linux

// File: alloc/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux page-backed allocator. Regions come straight from anonymous
// mmap and bypass the Go heap, so a large ring neither grows the heap
// nor adds GC scan work.

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/slotring/api"
)

type mmapAllocator struct{}

// Mmap returns the anonymous-mmap allocator.
func Mmap() api.Allocator { return mmapAllocator{} }

func (mmapAllocator) Alloc(n int) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: allocation size %d", api.ErrInvalidArgument, n)
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", api.ErrAllocFailed, err)
	}
	return data, nil
}

func (mmapAllocator) Free(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}
