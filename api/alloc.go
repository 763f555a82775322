// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Pluggable backing-storage allocation contract.

package api

// Allocator abstracts the memory provider backing a slot ring.
// Implementations may hand out Go-heap slices, mmap regions, or
// device-backed memory; the ring allocates exactly once at construction
// and frees exactly once at Close.
type Allocator interface {
	// Alloc returns a zeroed region of exactly n bytes.
	Alloc(n int) ([]byte, error)

	// Free returns a region previously obtained from Alloc.
	// Free of a nil region is a no-op.
	Free(buf []byte) error
}
