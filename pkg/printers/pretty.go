package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/series"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders the journal newest-first, one line per record.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		symbol, day, notes := e.Row()
		_, _ = d.Printf("%s ", day)
		_, _ = ratingColor(e.Rating).Printf("%-2s %-9s", symbol, e.Rating.Label())
		if len(e.Activities) > 0 {
			_, _ = d.Printf(" [%s]", joinActivities(e.Activities))
		}
		if notes != "" {
			_, _ = t.Printf("  %s", notes)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Chart renders the rating-over-time series as horizontal bars, oldest
// first, matching the order the series was built in.
func (pp *PrettyPrint) Chart(s series.Series) {
	if s.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entries in range\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	for i, v := range s.Values {
		rating := glyph.Rating(v)
		_, _ = d.Printf("%s ", s.Labels[i])
		_, _ = ratingColor(rating).Printf("%-10s", strings.Repeat("█", v*2))
		_, _ = t.Printf(" %d %s\n", v, rating.Label())
	}
	_, _ = t.Println("")
}

func ratingColor(r glyph.Rating) *color.Color {
	switch r {
	case glyph.Terrible:
		return color.New(color.FgRed)
	case glyph.Bad:
		return color.New(color.FgHiRed)
	case glyph.Okay:
		return color.New(color.FgYellow)
	case glyph.Good:
		return color.New(color.FgGreen)
	case glyph.Excellent:
		return color.New(color.FgHiGreen)
	default:
		return color.New()
	}
}

func joinActivities(activities []glyph.Activity) string {
	labels := make([]string, 0, len(activities))
	for _, a := range activities {
		labels = append(labels, a.Label())
	}
	return strings.Join(labels, ", ")
}
