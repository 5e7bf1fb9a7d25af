package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/theme"
	"tableflip.dev/moodlog/pkg/store"
)

func addTheme(topLevel *cobra.Command) {
	toggle := false

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the stored dark-mode flag",
		Example: `
moodlog theme
moodlog theme --toggle
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := theme.Theme{
				Toggle:      toggle,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&toggle, "toggle", false, "Flip the flag instead of printing it.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
