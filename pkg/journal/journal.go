// Package journal owns the in-session mood entry collection. It is the
// single source of truth between rehydration and exit; the durable store is
// a best-effort mirror.
package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/store"
)

// ErrInvalidRating rejects ratings off the 1..5 scale before any state
// changes.
var ErrInvalidRating = errors.New("journal: rating must be between 1 and 5")

// ErrInvalidActivity rejects tags outside the fixed vocabulary.
var ErrInvalidActivity = errors.New("journal: unknown activity tag")

// Option customises Journal construction.
type Option func(*Journal)

// WithClock pins the creation timestamp source, so tests can supply a fixed
// instant.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		j.now = now
	}
}

// Journal keeps the entries newest-first in memory and flushes every
// mutation through the injected persistence.
type Journal struct {
	mu      sync.Mutex
	now     func() time.Time
	p       store.Persistence
	entries []*entry.Entry
}

// New rehydrates the collection from p. A nil, empty, or unreadable slot
// yields an empty journal, never an error.
func New(p store.Persistence, opts ...Option) *Journal {
	j := &Journal{now: time.Now, p: p}
	for _, opt := range opts {
		opt(j)
	}
	if p != nil {
		j.entries = p.List(context.Background())
	}
	return j
}

// Add creates an entry with a fresh id and the current clock time, prepends
// it, and flushes. A persistence failure is logged and the in-memory add
// still stands for the session.
func (j *Journal) Add(rating glyph.Rating, activities []glyph.Activity, notes string) (*entry.Entry, error) {
	if !rating.Valid() {
		return nil, ErrInvalidRating
	}
	for _, a := range activities {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidActivity, a)
		}
	}

	e := entry.New(rating, activities, notes, j.now())

	j.mu.Lock()
	j.entries = append([]*entry.Entry{e}, j.entries...)
	j.mu.Unlock()

	if j.p != nil {
		if err := j.p.Store(e); err != nil {
			fmt.Fprintf(os.Stderr, "journal: persist %s: %v\n", e.ID, err)
		}
	}
	return e, nil
}

// Delete removes the entry with the given id and reports whether a removal
// occurred. A missing id is a no-op, not an error.
func (j *Journal) Delete(id string) bool {
	j.mu.Lock()
	removed := false
	for i, e := range j.entries {
		if e.ID == id {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			removed = true
			break
		}
	}
	j.mu.Unlock()

	if removed && j.p != nil {
		if _, err := j.p.Delete(id); err != nil {
			fmt.Fprintf(os.Stderr, "journal: delete %s: %v\n", id, err)
		}
	}
	return removed
}

// List returns a copy of the collection, newest first.
func (j *Journal) List() []*entry.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]*entry.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len reports the number of entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
