//go:build !linux

// File: alloc/mmap_stub.go
// Author: momentics <momentics@gmail.com>
//
// Non-Linux fallback: Mmap degrades to the heap allocator.

package alloc

import "github.com/momentics/slotring/api"

// Mmap returns the heap allocator on platforms without anonymous-mmap
// support wired in.
func Mmap() api.Allocator { return Heap() }
