// Package api
// Author: momentics <momentics@gmail.com>
//
// Diagnostic event hook for ring internals.

package api

// Tracer receives diagnostic events from a ring. Injected at
// construction; a nil tracer disables diagnostics entirely, so the hot
// path carries no logging of its own.
type Tracer interface {
	Trace(event string, fields map[string]any)
}

// Event names emitted by the ring core.
const (
	EventCreated  = "ring.created"
	EventFull     = "ring.full"
	EventEmpty    = "ring.empty"
	EventOverrun  = "ring.count_overrun"
	EventUnderrun = "ring.count_underrun"
	EventClosed   = "ring.closed"
)
