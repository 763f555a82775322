// File: api/sem.go
// Author: momentics <momentics@gmail.com>
//
// Pluggable binary mutual-exclusion contract.

package api

// Semaphore is the binary mutual-exclusion primitive serializing ring
// operations. Acquire blocks according to the implementation's own
// policy and returns a non-nil error when the primitive is abandoned
// or destroyed; the ring treats that as "answer unknown", never as a
// boolean result.
type Semaphore interface {
	Acquire() error
	Release()

	// Name returns the identifier given at creation, for diagnostics.
	Name() string

	// Destroy invalidates the primitive. The caller must hold the
	// semaphore or otherwise guarantee no concurrent use.
	Destroy() error
}
