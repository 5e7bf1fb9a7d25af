package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/store"
)

func tickingClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestAddPrependsAndGrowsByOne(t *testing.T) {
	j := New(store.NewMemory(), WithClock(tickingClock(time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC))))

	if _, err := j.Add(glyph.Okay, nil, "first"); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := j.Len()
	e, err := j.Add(glyph.Good, []glyph.Activity{glyph.ActivityHobby}, "second")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if j.Len() != before+1 {
		t.Fatalf("len = %d, want %d", j.Len(), before+1)
	}
	if got := j.List(); got[0].ID != e.ID {
		t.Fatalf("newest entry not first: got %s, want %s", got[0].ID, e.ID)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	j := New(store.NewMemory())

	if _, err := j.Add(glyph.Rating(9), nil, ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := j.Add(glyph.Good, []glyph.Activity{"skydiving"}, ""); !errors.Is(err, ErrInvalidActivity) {
		t.Fatalf("expected ErrInvalidActivity, got %v", err)
	}
	if j.Len() != 0 {
		t.Fatalf("rejected input mutated the journal: len = %d", j.Len())
	}
}

func TestDelete(t *testing.T) {
	j := New(store.NewMemory(), WithClock(tickingClock(time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC))))
	e, err := j.Add(glyph.Bad, nil, "doomed")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if !j.Delete(e.ID) {
		t.Fatal("expected delete of existing entry to report true")
	}
	if j.Len() != 0 {
		t.Fatalf("len = %d after delete, want 0", j.Len())
	}
	if j.Delete(e.ID) {
		t.Fatal("delete of absent id reported true")
	}
	if j.Len() != 0 {
		t.Fatal("no-op delete changed length")
	}
}

func TestListIsIdempotentAndCopied(t *testing.T) {
	j := New(store.NewMemory(), WithClock(tickingClock(time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC))))
	for i := 0; i < 3; i++ {
		if _, err := j.Add(glyph.Okay, nil, "x"); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	a := j.List()
	b := j.List()
	if len(a) != len(b) {
		t.Fatalf("consecutive lists differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("consecutive lists differ at %d", i)
		}
	}

	a[0] = nil // caller mutations must not leak back
	if j.List()[0] == nil {
		t.Fatal("List exposed internal slice")
	}
}

func TestRehydrateFromPersistence(t *testing.T) {
	p := store.NewMemory()
	first := New(p, WithClock(tickingClock(time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC))))
	if _, err := first.Add(glyph.Excellent, nil, "persisted"); err != nil {
		t.Fatalf("add: %v", err)
	}

	second := New(p)
	if second.Len() != 1 {
		t.Fatalf("rehydrated len = %d, want 1", second.Len())
	}
	if second.List()[0].Notes != "persisted" {
		t.Fatalf("rehydrated entry = %+v", second.List()[0])
	}
}

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	j := New(&failing{}, WithClock(tickingClock(time.Date(2026, time.April, 2, 7, 0, 0, 0, time.UTC))))

	e, err := j.Add(glyph.Good, nil, "kept in memory")
	if err != nil {
		t.Fatalf("add against broken persistence: %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("len = %d, want 1", j.Len())
	}
	if !j.Delete(e.ID) {
		t.Fatal("delete against broken persistence failed")
	}
}

// failing refuses every write but otherwise behaves like an empty slot.
type failing struct{}

func (f *failing) List(_ context.Context) []*entry.Entry { return nil }
func (f *failing) Store(_ *entry.Entry) error            { return errors.New("disk full") }
func (f *failing) Delete(_ string) (bool, error)         { return false, errors.New("disk full") }
func (f *failing) Theme() bool                           { return false }
func (f *failing) SetTheme(_ bool) error                 { return errors.New("disk full") }
func (f *failing) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("disk full")
}
