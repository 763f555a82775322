// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO slot allocator contract for single-producer,
// single-consumer zero-copy data exchange.

package api

// SlotRing hands out elemSize-byte slots of a preallocated ring region.
// Acquiring a slot both designates it and advances the corresponding
// index; there is no separate commit step. Safe for one producer
// concurrent with one consumer when backed by a real Semaphore, never
// for multiple concurrent producers or consumers.
type SlotRing interface {
	// AcquireWrite grants the next producer slot. ok is false when the
	// ring is full, closed, corrupted, or the lock cannot be taken.
	AcquireWrite() ([]byte, bool)

	// AcquireRead grants the oldest unread slot. ok is false under the
	// mirrored failure conditions of AcquireWrite.
	AcquireRead() ([]byte, bool)

	// Empty reports head == tail. A non-nil error means the answer
	// could not be determined and is distinct from both booleans.
	Empty() (bool, error)

	// Full reports (head+1) % capacity == tail.
	Full() (bool, error)

	// Remaining is the number of AcquireWrite calls guaranteed to
	// succeed before the ring reports full.
	Remaining() int

	// Len returns the number of occupied slots.
	Len() int

	// Cap returns the total slot count, including the sacrificial
	// full/empty disambiguation slot.
	Cap() int

	// ElemSize returns the byte width of one slot.
	ElemSize() int

	// Stats returns a consistent accounting snapshot.
	Stats() RingStats

	// Close releases the backing storage and the lock primitive.
	// Closing an already-closed ring fails with ErrInvalidArgument.
	Close() error
}

// RingStats aggregates a locked snapshot of ring accounting.
type RingStats struct {
	Capacity  int
	ElemSize  int
	Len       int
	Remaining int
	Corrupted bool
	Closed    bool
}
