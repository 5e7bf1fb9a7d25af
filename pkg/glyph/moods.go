package glyph

import (
	"fmt"
	"strings"
)

// Glyph describes how a mood rating is rendered and addressed on the
// command line.
type Glyph struct {
	Key     string
	Symbol  string
	Label   string
	Aliases []string
}

// Rating is a mood score on the fixed 1..5 scale.
type Rating int

const (
	Terrible Rating = iota + 1
	Bad
	Okay
	Good
	Excellent
)

// ratingGlyphs is indexed by Rating - 1. The vocabulary is closed: every
// valid rating has exactly one glyph and one label.
var ratingGlyphs = []Glyph{
	{Key: "1", Symbol: "--", Label: "Terrible", Aliases: []string{"terrible", "awful"}},
	{Key: "2", Symbol: "-", Label: "Bad", Aliases: []string{"bad"}},
	{Key: "3", Symbol: "~", Label: "Okay", Aliases: []string{"okay", "ok", "meh"}},
	{Key: "4", Symbol: "+", Label: "Good", Aliases: []string{"good"}},
	{Key: "5", Symbol: "++", Label: "Excellent", Aliases: []string{"excellent", "great"}},
}

// DefaultRatings returns the full rating vocabulary in ascending order.
func DefaultRatings() []Glyph {
	out := make([]Glyph, len(ratingGlyphs))
	copy(out, ratingGlyphs)
	return out
}

// Valid reports whether r is on the 1..5 scale.
func (r Rating) Valid() bool {
	return r >= Terrible && r <= Excellent
}

// Glyph resolves the rendering vocabulary for r. A rating outside the scale
// can only come from a bug upstream, never from user input that passed
// validation, so this panics rather than guessing a label.
func (r Rating) Glyph() Glyph {
	if !r.Valid() {
		panic(fmt.Sprintf("glyph: rating %d outside 1..5", int(r)))
	}
	return ratingGlyphs[r-1]
}

func (r Rating) Label() string {
	return r.Glyph().Label
}

func (r Rating) String() string {
	return r.Glyph().Symbol
}

// RatingForAlias resolves a rating from its numeric key or a label alias,
// for example "4" or "good".
func RatingForAlias(alias string) (Rating, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for i, g := range ratingGlyphs {
		if g.Key == needle {
			return Rating(i + 1), nil
		}
		for _, a := range g.Aliases {
			if a == needle {
				return Rating(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown rating %q, expected 1..5 or a label", alias)
}
