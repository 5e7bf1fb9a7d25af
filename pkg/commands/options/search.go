package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/property"
)

// SearchOptions
type SearchOptions struct {
	Location     string
	Type         string
	MinPrice     int
	MaxPrice     int
	MinBedrooms  int
	MinBathrooms float64
	Delay        time.Duration
}

func AddSearchArgs(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		`Property type, example: --type house.`)
	cmd.Flags().IntVar(&o.MinPrice, "min-price", 0,
		"Minimum price in dollars.")
	cmd.Flags().IntVar(&o.MaxPrice, "max-price", 0,
		"Maximum price in dollars.")
	cmd.Flags().IntVar(&o.MinBedrooms, "bedrooms", 0,
		"Minimum number of bedrooms.")
	cmd.Flags().Float64Var(&o.MinBathrooms, "bathrooms", 0,
		"Minimum number of bathrooms.")
	cmd.Flags().DurationVar(&o.Delay, "delay", 0,
		"Simulated search latency.")
}

func (o *SearchOptions) Criteria() property.Criteria {
	return property.Criteria{
		Location:     o.Location,
		Type:         o.Type,
		MinPrice:     o.MinPrice,
		MaxPrice:     o.MaxPrice,
		MinBedrooms:  o.MinBedrooms,
		MinBathrooms: o.MinBathrooms,
	}
}
