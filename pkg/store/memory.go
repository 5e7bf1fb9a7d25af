package store

import (
	"context"
	"sync"

	"tableflip.dev/moodlog/pkg/entry"
)

// NewMemory returns a Persistence that lives entirely in process memory.
// It backs tests and keeps the journal usable when the durable slot cannot
// be opened.
func NewMemory() Persistence {
	return &memory{}
}

type memory struct {
	mu      sync.Mutex
	entries []*entry.Entry
	theme   bool
}

func (m *memory) List(_ context.Context) []*entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entry.Entry, len(m.entries))
	copy(out, m.entries)
	sortEntries(out)
	return out
}

func (m *memory) Store(e *entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.entries {
		if existing.ID == e.ID {
			m.entries[i] = e
			return nil
		}
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memory) Delete(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.entries {
		if existing.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memory) Theme() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme
}

func (m *memory) SetTheme(dark bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = dark
	return nil
}

// Watch on the in-memory store never emits; the channel closes with ctx.
func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
