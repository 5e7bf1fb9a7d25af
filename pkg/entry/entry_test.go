package entry

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/glyph"
)

func TestNewStampsCreation(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	e := New(glyph.Good, []glyph.Activity{glyph.ActivityExercise}, "long run", now)

	if e.ID == "" {
		t.Fatal("expected a generated id")
	}
	if !e.Created.Equal(now) {
		t.Fatalf("created = %v, want %v", e.Created, now)
	}

	later := New(glyph.Good, nil, "long run", now.Add(time.Nanosecond))
	if later.ID == e.ID {
		t.Fatalf("entries created at different instants share id %s", e.ID)
	}
}

func TestEntryRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 26, 53, 123456789, time.UTC)
	e := New(glyph.Terrible, []glyph.Activity{glyph.ActivityWork, glyph.ActivitySleep}, "rough one", now)

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Rating != glyph.Terrible {
		t.Errorf("rating = %d, want %d", got.Rating, glyph.Terrible)
	}
	if len(got.Activities) != 2 {
		t.Errorf("activities = %v, want 2 tags", got.Activities)
	}
	if !got.Created.Equal(now) {
		t.Errorf("created = %v, want %v", got.Created, now)
	}
}

func TestTimestampSameDay(t *testing.T) {
	noon := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.Local)
	ts := Timestamp{Time: noon}

	if !ts.SameDay(noon.Add(6 * time.Hour)) {
		t.Error("same calendar day reported different")
	}
	if ts.SameDay(noon.Add(24 * time.Hour)) {
		t.Error("next day reported same")
	}
}
