package property

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"tableflip.dev/moodlog/pkg/filter"
)

// Criteria describes an active search. Zero-valued fields impose no
// constraint.
type Criteria struct {
	Location     string
	Type         string
	MinPrice     int
	MaxPrice     int
	MinBedrooms  int
	MinBathrooms float64
}

// ErrLocationRequired rejects a search before any work happens; the catalog
// is never consulted without a location.
var ErrLocationRequired = errors.New("property: search location is required")

// ErrSuperseded reports that a newer search started while this one was in
// flight, and its result was discarded.
var ErrSuperseded = errors.New("property: search superseded by a newer request")

// Search applies the criteria conjunctively over the candidates, preserving
// their relative order. The stage order is fixed for determinism; every
// stage is a pure filter, so it does not affect the result.
func Search(candidates []Listing, c Criteria) []Listing {
	return filter.Apply(candidates,
		filter.When(c.Type != "", "type", func(l Listing) bool {
			return strings.EqualFold(l.Type, c.Type)
		}),
		filter.When(c.MinPrice > 0, "min-price", func(l Listing) bool {
			return l.Price >= c.MinPrice
		}),
		filter.When(c.MaxPrice > 0, "max-price", func(l Listing) bool {
			return l.Price <= c.MaxPrice
		}),
		filter.When(c.MinBedrooms > 0, "bedrooms", func(l Listing) bool {
			return l.Bedrooms >= c.MinBedrooms
		}),
		filter.When(c.MinBathrooms > 0, "bathrooms", func(l Listing) bool {
			return l.Bathrooms >= c.MinBathrooms
		}),
	)
}

// Searcher runs searches with the latency model of the original UI: a
// request suspends for Delay, and when requests overlap only the latest
// one's result is applied. Earlier in-flight requests finish with
// ErrSuperseded.
type Searcher struct {
	Catalog []Listing
	Delay   time.Duration

	mu  sync.Mutex
	seq uint64
}

// Search validates the criteria, waits out the simulated latency, and
// returns the filtered catalog. The wait is cut short by ctx cancellation.
func (s *Searcher) Search(ctx context.Context, c Criteria) ([]Listing, error) {
	if strings.TrimSpace(c.Location) == "" {
		return nil, ErrLocationRequired
	}

	s.mu.Lock()
	s.seq++
	ticket := s.seq
	s.mu.Unlock()

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}

	s.mu.Lock()
	latest := s.seq
	s.mu.Unlock()
	if ticket != latest {
		return nil, ErrSuperseded
	}

	return Search(s.Catalog, c), nil
}
