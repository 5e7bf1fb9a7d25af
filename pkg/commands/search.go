package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/property"
	"tableflip.dev/moodlog/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	so := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <location>",
		Short: "Search the property catalog",
		Example: `
moodlog search "Chicago" --type house --min-price 400000
moodlog search "anywhere" --bedrooms 3 --bathrooms 2.5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a search location")
			}
			so.Location = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			s := search.Search{
				Criteria: so.Criteria(),
				Searcher: &property.Searcher{
					Catalog: property.Catalog(),
					Delay:   so.Delay,
				},
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSearchArgs(cmd, so)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
