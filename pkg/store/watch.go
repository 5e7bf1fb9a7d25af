package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventEntriesChanged indicates the set of mood entries changed
	// (added, removed, or rewritten records).
	EventEntriesChanged EventType = iota

	// EventSettingsChanged signals that a settings value such as the theme
	// flag was written.
	EventSettingsChanged
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	addRecursive := func(root string) error {
		return filepath.Walk(root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
	}
	if err := addRecursive(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch base path: %w", err)
	}

	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer closeWatcher()
		for {
			select {
			case <-ctx.Done():
				return
			case fe, ok := <-watcher.Events:
				if !ok {
					return
				}
				if fe.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(fe.Name); err == nil && info.IsDir() {
						_ = addRecursive(fe.Name)
					}
				}
				ev := classify(p.basePath, fe.Name)
				select {
				case events <- ev:
				default:
					// A pending notification already tells the reader to
					// refresh; dropping duplicates keeps the watcher from
					// blocking.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			}
		}
	}()
	return events, nil
}

func classify(basePath, name string) Event {
	rel, err := filepath.Rel(basePath, name)
	if err == nil && strings.HasPrefix(rel, settingsCollection) {
		return Event{Type: EventSettingsChanged}
	}
	return Event{Type: EventEntriesChanged}
}
