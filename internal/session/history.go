// Package session tracks the results computed during one run of the
// calculator.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"geocalc/internal/geometry"
)

// Entry is one computed result with the time it was recorded.
type Entry struct {
	Result geometry.Result
	At     time.Time
}

// History is the mutex-guarded in-memory record of one session. It is never
// persisted; durable output belongs to the journal.
type History struct {
	mu      sync.Mutex
	id      string
	started time.Time
	entries []Entry
	now     func() time.Time
}

// NewHistory returns an empty History with a fresh short session id.
func NewHistory() *History {
	return &History{
		id:      uuid.New().String()[:8],
		started: time.Now(),
		now:     time.Now,
	}
}

// ID returns the session identifier stamped into journal blocks.
func (h *History) ID() string { return h.id }

// Started returns the session start time.
func (h *History) Started() time.Time { return h.started }

// Add records one result.
func (h *History) Add(res geometry.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, Entry{Result: res, At: h.now()})
}

// Entries returns a copy of the recorded entries in insertion order.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Tally returns how many times each shape was computed.
func (h *History) Tally() map[string]int {
	h.mu.Lock()
	defer h.mu.Unlock()
	tally := make(map[string]int, len(h.entries))
	for _, e := range h.entries {
		tally[e.Result.Shape]++
	}
	return tally
}
