package timeutil

import (
	"strings"
	"time"
)

// Range is a symbolic report window token.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"

	// DefaultRange is the fallback window used when none is provided or the
	// token is not recognized. The original UI had no default branch beyond
	// week, so unknown tokens resolve to week rather than erroring.
	DefaultRange = RangeWeek
)

// ParseRange normalizes a user-supplied token. Unrecognized tokens fall back
// to DefaultRange.
func ParseRange(input string) Range {
	switch Range(strings.ToLower(strings.TrimSpace(input))) {
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	case RangeYear:
		return RangeYear
	default:
		return DefaultRange
	}
}

// Days returns the number of days the range spans.
func (r Range) Days() int {
	switch r {
	case RangeMonth:
		return 30
	case RangeYear:
		return 365
	default:
		return 7
	}
}

// Window is a concrete [Start, End] interval, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// Resolve anchors r at now: End is always now, Start is now minus the range
// span.
func Resolve(r Range, now time.Time) Window {
	return Window{
		Start: now.Add(-time.Duration(r.Days()) * 24 * time.Hour),
		End:   now,
	}
}

// Contains reports whether t falls inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration is the window span.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
