package glyph

import (
	"fmt"
	"sort"
	"strings"
)

// Activity tags an entry with something the author did that day. The
// vocabulary is fixed; unknown tags are rejected at the edge instead of
// being stored.
type Activity string

const (
	ActivityExercise Activity = "exercise"
	ActivityWork     Activity = "work"
	ActivitySocial   Activity = "social"
	ActivityFamily   Activity = "family"
	ActivityHobby    Activity = "hobby"
	ActivityRelax    Activity = "relax"
	ActivitySleep    Activity = "sleep"
	ActivityStudy    Activity = "study"
)

var activityLabels = map[Activity]string{
	ActivityExercise: "Exercise",
	ActivityWork:     "Work",
	ActivitySocial:   "Social",
	ActivityFamily:   "Family",
	ActivityHobby:    "Hobby",
	ActivityRelax:    "Relaxation",
	ActivitySleep:    "Sleep",
	ActivityStudy:    "Study",
}

// DefaultActivities returns the activity vocabulary sorted by tag.
func DefaultActivities() []Activity {
	out := make([]Activity, 0, len(activityLabels))
	for a := range activityLabels {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (a Activity) Valid() bool {
	_, ok := activityLabels[a]
	return ok
}

func (a Activity) Label() string {
	if label, ok := activityLabels[a]; ok {
		return label
	}
	return string(a)
}

// ActivityForAlias resolves an activity tag from user input.
func ActivityForAlias(alias string) (Activity, error) {
	a := Activity(strings.ToLower(strings.TrimSpace(alias)))
	if a.Valid() {
		return a, nil
	}
	return "", fmt.Errorf("unknown activity %q", alias)
}
