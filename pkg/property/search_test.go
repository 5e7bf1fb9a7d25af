package property

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSearchEmptyCriteriaReturnsCatalog(t *testing.T) {
	catalog := Catalog()

	got := Search(catalog, Criteria{})
	if len(got) != len(catalog) {
		t.Fatalf("got %d listings, want %d", len(got), len(catalog))
	}
	for i := range catalog {
		if got[i].ID != catalog[i].ID {
			t.Fatalf("order changed at %d: got id %d, want %d", i, got[i].ID, catalog[i].ID)
		}
	}
}

func TestSearchHouseAboveMinPrice(t *testing.T) {
	got := Search(Catalog(), Criteria{Type: "house", MinPrice: 400000})

	want := []int{1, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("got %d listings, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d = id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestSearchTypeIsCaseInsensitive(t *testing.T) {
	lower := Search(Catalog(), Criteria{Type: "condo"})
	upper := Search(Catalog(), Criteria{Type: "CONDO"})

	if len(lower) != 1 || len(upper) != 1 || lower[0].ID != upper[0].ID {
		t.Fatalf("case sensitivity leaked: %v vs %v", lower, upper)
	}
}

func TestSearchConjunction(t *testing.T) {
	got := Search(Catalog(), Criteria{
		Type:         "house",
		MaxPrice:     900000,
		MinBedrooms:  4,
		MinBathrooms: 3,
	})

	// Only the brownstone: 4bd/3.5ba at 875000.
	if len(got) != 1 || got[0].ID != 6 {
		t.Fatalf("got %v, want just listing 6", got)
	}
}

func TestSearcherRequiresLocation(t *testing.T) {
	s := &Searcher{Catalog: Catalog()}

	if _, err := s.Search(context.Background(), Criteria{}); !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("expected ErrLocationRequired, got %v", err)
	}
	if _, err := s.Search(context.Background(), Criteria{Location: "   "}); !errors.Is(err, ErrLocationRequired) {
		t.Fatalf("blank location accepted: %v", err)
	}
}

func TestSearcherLatestRequestWins(t *testing.T) {
	s := &Searcher{Catalog: Catalog(), Delay: 200 * time.Millisecond}

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.Search(context.Background(), Criteria{Location: "anywhere", Type: "condo"})
	}()

	// Let the first request take its ticket before the second starts.
	time.Sleep(50 * time.Millisecond)
	results, err := s.Search(context.Background(), Criteria{Location: "anywhere", Type: "house"})
	if err != nil {
		t.Fatalf("latest search failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("latest search got %d listings, want 4 houses", len(results))
	}

	wg.Wait()
	if !errors.Is(firstErr, ErrSuperseded) {
		t.Fatalf("stale search returned %v, want ErrSuperseded", firstErr)
	}
}

func TestSearcherHonorsCancellation(t *testing.T) {
	s := &Searcher{Catalog: Catalog(), Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.Search(ctx, Criteria{Location: "anywhere"})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled search did not return")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{
		1250000: "$1.3M",
		475000:  "$475K",
		900:     "$900",
		3500:    "$4K",
	}
	for price, want := range cases {
		if got := FormatPrice(price); got != want {
			t.Errorf("FormatPrice(%d) = %q, want %q", price, got, want)
		}
	}
}
