package search

import (
	"context"

	"tableflip.dev/moodlog/pkg/printers"
	"tableflip.dev/moodlog/pkg/property"
)

type Search struct {
	Criteria property.Criteria

	Searcher *property.Searcher
}

func (n *Search) Do(ctx context.Context) error {
	results, err := n.Searcher.Search(ctx, n.Criteria)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Properties", len(results))
	pp.Listings(results...)
	return nil
}
