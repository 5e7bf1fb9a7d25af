package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/glyph"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/runner/add"
	"tableflip.dev/moodlog/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	io := &options.IDOptions{}

	var rating glyph.Rating

	cmd := &cobra.Command{
		Use:   "add <rating> [notes]",
		Short: "Record how you feel right now",
		Example: `
moodlog add 4 productive day at the office
moodlog add good --activity exercise --activity social
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a rating, 1..5 or a label")
			}
			var err error
			rating, err = glyph.RatingForAlias(args[0])
			if err != nil {
				return err
			}
			mo.Notes = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			activities, err := mo.GetActivities()
			if err != nil {
				return oo.HandleError(err)
			}

			s := add.Add{
				Rating:     rating,
				Activities: activities,
				Notes:      mo.Notes,
				ShowID:     io.ShowID,
				Journal:    journal.New(p),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
