// File: ring/ring.go
// Package ring implements the fixed-capacity FIFO slot allocator.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Ring owns one contiguous region of capacity*elemSize bytes and
// hands out elemSize-byte slots of it directly, so producers write and
// consumers read in place with no copying. Two circular indices track
// the next producer slot (head) and the next consumer slot (tail); one
// slot is permanently sacrificed so full and empty stay distinguishable
// from the indices alone. Every public operation runs as a single
// critical section under the injected semaphore.

package ring

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/slotring/api"
)

// minCapacity is the smallest ring worth building: one usable slot
// plus the full/empty disambiguation slot.
const minCapacity = 2

// Ring is a fixed-capacity slot allocator over a contiguous byte
// region. Safe for one producer concurrent with one consumer when
// locking is enabled; multiple concurrent producers or multiple
// concurrent consumers are not supported in any configuration.
type Ring struct {
	capacity int
	elemSize int
	storage  []byte

	head  int
	tail  int
	count int

	sem    api.Semaphore
	mem    api.Allocator
	tracer api.Tracer

	corrupted bool
	closed    atomic.Bool
}

var _ api.SlotRing = (*Ring)(nil)

// New builds a ring of capacity slots of elemSize bytes each.
// capacity must be at least 2 and elemSize at least 1; both are
// configuration errors reported as api.ErrInvalidArgument. Storage is
// allocated exactly once here. If the lock primitive cannot be
// created, the storage is freed before the error is returned.
func New(capacity, elemSize int, opts ...Option) (*Ring, error) {
	if capacity < minCapacity {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring capacity below minimum").
			WithCause(api.ErrInvalidArgument).
			WithContext("capacity", capacity).
			WithContext("min", minCapacity)
	}
	if elemSize < 1 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "ring element size below minimum").
			WithCause(api.ErrInvalidArgument).
			WithContext("elem_size", elemSize)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	storage, err := cfg.mem.Alloc(capacity * elemSize)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocFailed, "ring storage allocation").
			WithCause(err).
			WithContext("bytes", capacity*elemSize)
	}

	sem, err := cfg.semaphore()
	if err != nil {
		_ = cfg.mem.Free(storage)
		return nil, api.NewError(api.ErrCodeLockFailed, "ring lock creation").
			WithCause(err).
			WithContext("lock", cfg.lockName)
	}

	r := &Ring{
		capacity: capacity,
		elemSize: elemSize,
		storage:  storage,
		sem:      sem,
		mem:      cfg.mem,
		tracer:   cfg.tracer,
	}
	r.trace(api.EventCreated, map[string]any{
		"capacity":  capacity,
		"elem_size": elemSize,
		"lock":      sem.Name(),
	})
	return r, nil
}

// AcquireWrite grants the next producer slot and advances head. The
// returned slice addresses exactly elemSize bytes of the backing
// region; the producer owns them until the matching AcquireRead, and
// must populate them before capacity-1 further acquisitions wrap the
// ring back onto the same index. ok is false when the ring is full,
// closed, corrupted, or the lock cannot be taken — the caller polls
// Full to tell the cases apart.
func (r *Ring) AcquireWrite() ([]byte, bool) {
	if err := r.sem.Acquire(); err != nil {
		return nil, false
	}
	defer r.sem.Release()

	if r.closed.Load() || r.corrupted {
		return nil, false
	}
	if r.isFull() {
		r.trace(api.EventFull, nil)
		return nil, false
	}

	slot := r.slot(r.head)
	r.head = (r.head + 1) % r.capacity
	r.count++

	// count can only outrun the usable slot count if head overran tail,
	// which the fullness guard above rules out inside one critical
	// section. Seeing it anyway means the accounting is corrupted, and
	// the ring latches shut instead of handing out aliased slots.
	if r.count > r.capacity-1 {
		r.corrupted = true
		r.trace(api.EventOverrun, map[string]any{"count": r.count})
		return nil, false
	}
	return slot, true
}

// AcquireRead grants the oldest unread slot and advances tail. The
// returned slice holds one previously produced element; after this
// call the slot is logically free and will be recycled once the ring
// wraps. ok is false when the ring is empty, closed, corrupted, or the
// lock cannot be taken.
func (r *Ring) AcquireRead() ([]byte, bool) {
	if err := r.sem.Acquire(); err != nil {
		return nil, false
	}
	defer r.sem.Release()

	if r.closed.Load() || r.corrupted {
		return nil, false
	}
	if r.isEmpty() {
		r.trace(api.EventEmpty, nil)
		return nil, false
	}

	// The indices say there is an element; a zero count contradicts
	// them. Checked before the decrement so the counter never goes
	// negative.
	if r.count == 0 {
		r.corrupted = true
		r.trace(api.EventUnderrun, map[string]any{"head": r.head, "tail": r.tail})
		return nil, false
	}

	slot := r.slot(r.tail)
	r.tail = (r.tail + 1) % r.capacity
	r.count--
	return slot, true
}

// Empty reports whether the ring holds no elements. The error return
// is distinct from both boolean answers and set when the lock cannot
// be acquired, the ring is closed, or accounting is corrupted.
func (r *Ring) Empty() (bool, error) {
	if err := r.sem.Acquire(); err != nil {
		return false, err
	}
	defer r.sem.Release()
	if err := r.usable(); err != nil {
		return false, err
	}
	return r.isEmpty(), nil
}

// Full reports whether only the sacrificial slot separates head from
// tail. Same contract as Empty.
func (r *Ring) Full() (bool, error) {
	if err := r.sem.Acquire(); err != nil {
		return false, err
	}
	defer r.sem.Release()
	if err := r.usable(); err != nil {
		return false, err
	}
	return r.isFull(), nil
}

// Remaining returns the number of AcquireWrite calls guaranteed to
// succeed before the ring reports full: usable slots minus occupied
// ones, clamped to zero defensively. A fresh ring reports
// capacity-1.
func (r *Ring) Remaining() int {
	if err := r.sem.Acquire(); err != nil {
		return 0
	}
	defer r.sem.Release()
	if r.closed.Load() || r.corrupted {
		return 0
	}
	usable := r.capacity - 1
	if r.count > usable {
		return 0
	}
	return usable - r.count
}

// Len returns the number of occupied slots.
func (r *Ring) Len() int {
	if err := r.sem.Acquire(); err != nil {
		return 0
	}
	defer r.sem.Release()
	return r.count
}

// Cap returns the total slot count, including the sacrificial slot.
func (r *Ring) Cap() int { return r.capacity }

// ElemSize returns the byte width of one slot.
func (r *Ring) ElemSize() int { return r.elemSize }

// Stats returns a consistent accounting snapshot.
func (r *Ring) Stats() api.RingStats {
	st := api.RingStats{
		Capacity: r.capacity,
		ElemSize: r.elemSize,
	}
	if err := r.sem.Acquire(); err != nil {
		// The lock only fails once destroyed, so the ring is unusable;
		// report it closed.
		st.Closed = true
		return st
	}
	defer r.sem.Release()
	st.Len = r.count
	st.Corrupted = r.corrupted
	st.Closed = r.closed.Load()
	if usable := r.capacity - 1; !st.Closed && !r.corrupted && r.count <= usable {
		st.Remaining = usable - r.count
	}
	return st
}

// Close releases the backing storage through the allocator and
// destroys the lock primitive. The handle is validated before any
// field is touched: closing an already-closed ring fails with
// api.ErrInvalidArgument, while a lock primitive that cannot be
// acquired surfaces its own error, distinct from the invalid-handle
// outcome. Outstanding slot slices must not be used after Close; with
// the mmap allocator the region is gone.
func (r *Ring) Close() error {
	// The closed flag is atomic so this validation stays sound after
	// the first Close has destroyed the semaphore.
	if r.closed.Load() {
		return fmt.Errorf("close: %w", api.ErrInvalidArgument)
	}
	if err := r.sem.Acquire(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if r.closed.Load() {
		r.sem.Release()
		return fmt.Errorf("close: %w", api.ErrInvalidArgument)
	}
	r.closed.Store(true)

	var freeErr error
	if r.storage != nil {
		freeErr = r.mem.Free(r.storage)
		r.storage = nil
	}
	r.trace(api.EventClosed, nil)

	// The semaphore is destroyed while held; blocked acquirers wake
	// with an error instead of a grant.
	_ = r.sem.Destroy()
	return freeErr
}

func (r *Ring) isEmpty() bool { return r.head == r.tail }

func (r *Ring) isFull() bool { return (r.head+1)%r.capacity == r.tail }

// slot returns the bounds-checked view of slot i. The three-index
// slice pins the capacity so a caller cannot reslice into a neighbor.
func (r *Ring) slot(i int) []byte {
	lo := i * r.elemSize
	hi := lo + r.elemSize
	return r.storage[lo:hi:hi]
}

// usable maps the latched states onto the query error outcomes.
func (r *Ring) usable() error {
	if r.closed.Load() {
		return api.ErrRingClosed
	}
	if r.corrupted {
		return api.ErrCorrupted
	}
	return nil
}

func (r *Ring) trace(event string, fields map[string]any) {
	if r.tracer == nil {
		return
	}
	r.tracer.Trace(event, fields)
}
