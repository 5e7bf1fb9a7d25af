package get

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
)

type Get struct {
	ShowID bool

	Journal *journal.Journal
}

func (n *Get) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Mood Journal", n.Journal.Len())
	pp.Entries(n.Journal.List()...)
	return nil
}
