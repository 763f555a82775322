// File: ring/options.go
// Author: momentics <momentics@gmail.com>
//
// Construction-time configuration. Locking, allocation and diagnostics
// are all chosen per ring instance, so locked and lock-free rings can
// coexist in one binary.

package ring

import (
	"github.com/momentics/slotring/alloc"
	"github.com/momentics/slotring/api"
	"github.com/momentics/slotring/concurrency"
)

// DefaultLockName is used when no name is supplied.
const DefaultLockName = "slotring"

// SemaphoreFactory creates the lock primitive for a ring. A non-nil
// error aborts construction; New frees the already-allocated storage
// first.
type SemaphoreFactory func(name string) (api.Semaphore, error)

type config struct {
	mem      api.Allocator
	sem      api.Semaphore
	factory  SemaphoreFactory
	lockName string
	noLock   bool
	tracer   api.Tracer
}

func defaultConfig() config {
	return config{
		mem:      alloc.Heap(),
		lockName: DefaultLockName,
	}
}

// semaphore resolves the configured locking strategy, in precedence
// order: explicit instance, disabled, factory, default named
// semaphore.
func (c *config) semaphore() (api.Semaphore, error) {
	switch {
	case c.sem != nil:
		return c.sem, nil
	case c.noLock:
		return concurrency.Nop(), nil
	case c.factory != nil:
		return c.factory(c.lockName)
	default:
		return concurrency.NewSemaphore(c.lockName), nil
	}
}

// Option customizes ring construction.
type Option func(*config)

// WithAllocator selects the backing-storage allocator.
// Default: alloc.Heap().
func WithAllocator(a api.Allocator) Option {
	return func(c *config) { c.mem = a }
}

// WithSemaphore injects a ready lock primitive. The ring takes
// ownership and destroys it on Close.
func WithSemaphore(s api.Semaphore) Option {
	return func(c *config) { c.sem = s }
}

// WithSemaphoreFactory injects the lock constructor, mirroring an RTOS
// port layer whose semaphore creation can itself fail.
func WithSemaphoreFactory(fn SemaphoreFactory) Option {
	return func(c *config) { c.factory = fn }
}

// WithLockName names the default semaphore, for diagnostics.
func WithLockName(name string) Option {
	return func(c *config) { c.lockName = name }
}

// WithNoLock disables locking. The ring is then not thread-safe and
// callers must serialize all operations externally.
func WithNoLock() Option {
	return func(c *config) { c.noLock = true }
}

// WithTracer injects the diagnostic event hook. Default: none.
func WithTracer(t api.Tracer) Option {
	return func(c *config) { c.tracer = t }
}
