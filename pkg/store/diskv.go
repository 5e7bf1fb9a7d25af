package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodlog/pkg/entry"
)

// Persistence is the durable slot behind the journal. Reads never fail to
// the caller; a corrupt or absent slot behaves like an empty one.
type Persistence interface {
	List(ctx context.Context) []*entry.Entry
	Store(e *entry.Entry) error
	Delete(id string) (bool, error)
	Theme() bool
	SetTheme(dark bool) error
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	layoutISO = "2006-01-02"

	moodsCollection    = "moods"
	settingsCollection = "settings"
	themeKey           = settingsCollection + "-theme"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	e.ID = pk.FileName
	if !e.Rating.Valid() {
		return nil, fmt.Errorf("rating %d outside 1..5", int(e.Rating))
	}
	return e, nil
}

// List returns every stored mood entry, newest first. Unreadable records are
// logged and skipped so one corrupt file never takes down the journal.
func (p *persistence) List(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != moodsCollection {
			continue
		}
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all
}

func (p *persistence) Store(e *entry.Entry) error {
	key := toKey(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// Delete removes the entry with the given id. Absence is a no-op, not an
// error.
func (p *persistence) Delete(id string) (bool, error) {
	for key := range p.d.Keys(nil) {
		pk := keyToPathTransform(key)
		if pk.Path[0] != moodsCollection || pk.FileName != id {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Theme reports the stored dark-mode flag. First run (no stored value)
// means light.
func (p *persistence) Theme() bool {
	val, err := p.d.Read(themeKey)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(val)) == "true"
}

func (p *persistence) SetTheme(dark bool) error {
	return p.d.Write(themeKey, []byte(fmt.Sprintf("%t", dark)))
}

// sortEntries orders newest first; equal timestamps fall back to ID so the
// order is deterministic across loads.
func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		lt := entries[i].Created.Time
		rt := entries[j].Created.Time
		if lt.Equal(rt) {
			return entries[i].ID > entries[j].ID
		}
		return lt.After(rt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `moods-date-id`
func toKey(e *entry.Entry) string {
	then := e.Created.Format(layoutISO)

	if e.ID == "" {
		b, _ := json.Marshal(e)
		id := md5.Sum(b)
		e.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s-%s", moodsCollection, then, e.ID)
}
