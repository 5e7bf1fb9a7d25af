package options

import (
	"github.com/spf13/cobra"
)

// RangeOptions
type RangeOptions struct {
	Range string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVarP(&o.Range, "range", "r", "week",
		`Report window, one of "week", "month", or "year".`)
}
