package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/journal"
	"tableflip.dev/moodlog/pkg/runner/history"
	"tableflip.dev/moodlog/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Chart your mood over time",
		Example: `
moodlog history
moodlog history --range month
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := history.History{
				Range:   ro.Range,
				Journal: journal.New(p),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, ro)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
