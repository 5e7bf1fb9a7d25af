package history

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/series"
	"tableflip.dev/moodlog/pkg/timeutil"
)

type History struct {
	Range string
	Now   func() time.Time

	Journal *journal.Journal
}

func (n *History) Do(_ context.Context) error {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	r := timeutil.ParseRange(n.Range)
	w := timeutil.Resolve(r, now())
	s := series.Build(n.Journal.List(), w)

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Mood History - last %d days", r.Days()))
	pp.Chart(s)
	return nil
}
