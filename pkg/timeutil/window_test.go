package timeutil

import (
	"testing"
	"time"
)

func TestResolveAnchorsAtNow(t *testing.T) {
	now := time.Date(2026, time.January, 10, 8, 30, 0, 0, time.UTC)

	cases := []struct {
		r    Range
		days int
	}{
		{RangeWeek, 7},
		{RangeMonth, 30},
		{RangeYear, 365},
	}
	for _, tc := range cases {
		w := Resolve(tc.r, now)
		if !w.End.Equal(now) {
			t.Errorf("%s: end = %v, want %v", tc.r, w.End, now)
		}
		if want := time.Duration(tc.days) * 24 * time.Hour; w.Duration() != want {
			t.Errorf("%s: span = %v, want %v", tc.r, w.Duration(), want)
		}
	}
}

func TestParseRangeFallsBackToWeek(t *testing.T) {
	cases := map[string]Range{
		"week":      RangeWeek,
		" Month ":   RangeMonth,
		"YEAR":      RangeYear,
		"":          RangeWeek,
		"fortnight": RangeWeek,
	}
	for input, want := range cases {
		if got := ParseRange(input); got != want {
			t.Errorf("ParseRange(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestWindowContainsInclusiveBounds(t *testing.T) {
	now := time.Date(2026, time.January, 10, 8, 30, 0, 0, time.UTC)
	w := Resolve(RangeWeek, now)

	if !w.Contains(w.Start) {
		t.Error("start boundary excluded")
	}
	if !w.Contains(w.End) {
		t.Error("end boundary excluded")
	}
	if w.Contains(w.Start.Add(-time.Second)) {
		t.Error("instant before start included")
	}
	if w.Contains(w.End.Add(time.Second)) {
		t.Error("instant after end included")
	}
}
