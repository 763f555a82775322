// File: control/journal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded diagnostic event journal. Implements api.Tracer so a ring
// can record its lifecycle and defensive-check events in memory; when
// the journal is over capacity the oldest events are dropped first.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// Event is one recorded diagnostic occurrence.
type Event struct {
	Time   time.Time
	Name   string
	Fields map[string]any
}

// DefaultJournalCapacity bounds a journal when no capacity is given.
const DefaultJournalCapacity = 256

// Journal is a bounded FIFO of diagnostic events.
type Journal struct {
	mu  sync.Mutex
	q   *queue.Queue
	cap int
}

// NewJournal creates a journal keeping at most capacity events.
// Non-positive capacity selects DefaultJournalCapacity.
func NewJournal(capacity int) *Journal {
	if capacity < 1 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{
		q:   queue.New(),
		cap: capacity,
	}
}

// Trace records one event, evicting the oldest when over capacity.
func (j *Journal) Trace(event string, fields map[string]any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.q.Add(Event{
		Time:   time.Now(),
		Name:   event,
		Fields: fields,
	})
	for j.q.Length() > j.cap {
		j.q.Remove()
	}
}

// Drain removes and returns all recorded events, oldest first.
func (j *Journal) Drain() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.q.Length())
	for j.q.Length() > 0 {
		out = append(out, j.q.Remove().(Event))
	}
	return out
}

// Len returns the number of events currently held.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}
