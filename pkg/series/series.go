// Package series turns journal entries into chart-ready parallel arrays so
// display layers can reason about rating-over-time without re-deriving the
// windowing rules all over the codebase.
package series

import (
	"sort"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/filter"
	"tableflip.dev/moodlog/pkg/timeutil"
)

const labelFormat = "Jan 02"

// Series holds the rating-over-time projection. Labels and Values are
// aligned by index and sorted ascending by source date.
type Series struct {
	Labels []string
	Values []int
}

// Empty reports whether there is nothing to chart; callers render a
// placeholder state instead of treating this as an error.
func (s Series) Empty() bool {
	return len(s.Values) == 0
}

// Build selects the entries inside w (boundaries included), sorts them
// ascending by creation time keeping the relative order of equal timestamps,
// and projects them to parallel label/value arrays.
func Build(entries []*entry.Entry, w timeutil.Window) Series {
	selected := filter.Apply(entries, filter.Stage[*entry.Entry]{
		Name: "window",
		Keep: func(e *entry.Entry) bool { return w.Contains(e.Created.Time) },
	})

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Created.Before(selected[j].Created.Time)
	})

	s := Series{
		Labels: make([]string, 0, len(selected)),
		Values: make([]int, 0, len(selected)),
	}
	for _, e := range selected {
		s.Labels = append(s.Labels, e.Created.Local().Format(labelFormat))
		s.Values = append(s.Values, int(e.Rating))
	}
	return s
}
