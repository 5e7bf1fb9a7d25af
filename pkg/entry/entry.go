package entry

import (
	"crypto/md5"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/glyph"
)

// New builds a mood entry stamped with the provided creation time. The
// caller supplies now so tests can pin the clock.
func New(rating glyph.Rating, activities []glyph.Activity, notes string, now time.Time) *Entry {
	e := &Entry{
		Rating:     rating,
		Activities: activities,
		Notes:      notes,
		Created:    Timestamp{Time: now},
	}
	e.ID = newID(e)
	return e
}

// Entry is one journaled mood record. ID and Created are set once at
// creation and never change.
type Entry struct {
	ID         string           `json:"id,omitempty"`
	Rating     glyph.Rating     `json:"rating"`
	Activities []glyph.Activity `json:"activities,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	Created    Timestamp        `json:"created"`
}

func (e *Entry) Row() (string, string, string) {
	return e.Rating.String(), e.Created.UTC().Format("Jan 02"), e.Notes
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Rating.String(), e.Rating.Label(), e.Notes)
}

func newID(e *Entry) string {
	seed := fmt.Sprintf("%d|%s|%s", e.Rating, e.Notes, FormatTime(e.Created.Time))
	sum := md5.Sum([]byte(seed))
	return fmt.Sprintf("%x", sum[:8])
}
