package remove

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/journal"
)

type Remove struct {
	ID string

	Journal *journal.Journal
}

func (n *Remove) Do(_ context.Context) error {
	if !n.Journal.Delete(n.ID) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no entry with id %s\n", n.ID)
		return nil
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
