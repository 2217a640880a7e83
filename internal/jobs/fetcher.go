package jobs

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-recommender/internal/types"
)

// DefaultConcurrency is the default number of provider requests in flight.
const DefaultConcurrency = 3

// Fetcher runs planned queries against a Provider with bounded concurrency
// and deduplicates the combined results.
type Fetcher struct {
	provider    Provider
	concurrency int
}

// NewFetcher creates a Fetcher. concurrency <= 0 selects DefaultConcurrency.
func NewFetcher(provider Provider, concurrency int) *Fetcher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Fetcher{provider: provider, concurrency: concurrency}
}

// Fetch executes every query and returns the deduplicated results. A failed
// query logs and contributes zero results; it never aborts the other queries.
// Dedup is by job ID, first occurrence wins, scanning results in query order
// regardless of completion order.
func (f *Fetcher) Fetch(ctx context.Context, queries []types.SearchQuery) []types.JobRecord {
	perQuery := make([][]types.JobRecord, len(queries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, query := range queries {
		g.Go(func() error {
			records, err := f.provider.Search(gCtx, query)
			if err != nil {
				log.Printf("[fetcher] query %d failed: %v", i, err)
				return nil
			}
			perQuery[i] = records
			return nil
		})
	}

	// Worker funcs always return nil; Wait only surfaces context errors.
	if err := g.Wait(); err != nil {
		log.Printf("[fetcher] fetch interrupted: %v", err)
	}

	return Dedupe(perQuery)
}

// Dedupe flattens per-query results and removes duplicate job IDs, keeping
// the first occurrence in scan order.
func Dedupe(perQuery [][]types.JobRecord) []types.JobRecord {
	seen := make(map[string]bool)
	var out []types.JobRecord
	for _, records := range perQuery {
		for _, record := range records {
			if record.ID == "" || seen[record.ID] {
				continue
			}
			seen[record.ID] = true
			out = append(out, record)
		}
	}
	return out
}
