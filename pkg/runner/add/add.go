package add

import (
	"context"

	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
)

type Add struct {
	Rating     glyph.Rating
	Activities []glyph.Activity
	Notes      string
	ShowID     bool

	Journal *journal.Journal
}

func (n *Add) Do(_ context.Context) error {
	if _, err := n.Journal.Add(n.Rating, n.Activities, n.Notes); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Mood Journal", n.Journal.Len())
	pp.Entries(n.Journal.List()...)
	return nil
}
