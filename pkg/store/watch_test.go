package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
)

func TestWatchEmitsOnEntryWrites(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Keep writing until the watcher reports; the first write also creates
	// directories the watcher only picks up asynchronously.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	created := time.Date(2026, time.February, 7, 10, 0, 0, 0, time.UTC)
	for i := 0; ; i++ {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if ev.Type != EventEntriesChanged {
				t.Fatalf("event type = %v, want EventEntriesChanged", ev.Type)
			}
			return
		case <-deadline:
			t.Fatal("no event before deadline")
		case <-ticker.C:
			e := entry.New(glyph.Okay, nil, "ping", created.Add(time.Duration(i)*time.Second))
			if err := p.Store(e); err != nil {
				t.Fatalf("store: %v", err)
			}
		}
	}
}

func TestWatchClosesWithContext(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A buffered event may arrive first; the close must follow.
			if _, ok := <-ch; ok {
				t.Fatal("channel still open after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
