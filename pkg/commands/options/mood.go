package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/glyph"
)

// MoodOptions
type MoodOptions struct {
	Activities []string
	Notes      string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringArrayVarP(&o.Activities, "activity", "a", nil,
		`Tag the entry with an activity, repeatable, example: --activity exercise.`)
}

func (o *MoodOptions) GetActivities() ([]glyph.Activity, error) {
	if len(o.Activities) == 0 {
		return nil, nil
	}
	out := make([]glyph.Activity, 0, len(o.Activities))
	for _, raw := range o.Activities {
		a, err := glyph.ActivityForAlias(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
