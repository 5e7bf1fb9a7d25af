// Package filter implements the ordered predicate pipeline shared by the
// mood-history window and the property search.
package filter

// Stage is one optional predicate in a pipeline. A nil Keep func imposes no
// constraint; the stage is a wildcard rather than a reject-all.
type Stage[T any] struct {
	Name string
	Keep func(T) bool
}

// When builds a stage that only constrains the pipeline if active is true.
// It keeps call sites close to the "empty criteria field means no filter"
// rule.
func When[T any](active bool, name string, keep func(T) bool) Stage[T] {
	if !active {
		return Stage[T]{Name: name}
	}
	return Stage[T]{Name: name, Keep: keep}
}

// Apply runs every present stage conjunctively over in, preserving the
// relative order of the survivors. With no active stages the full input is
// returned as a copy.
func Apply[T any](in []T, stages ...Stage[T]) []T {
	out := make([]T, 0, len(in))
next:
	for _, item := range in {
		for _, s := range stages {
			if s.Keep != nil && !s.Keep(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}
