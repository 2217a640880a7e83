// Package recommend orchestrates the recommendation pipeline: extract
// preferences, plan queries, fetch jobs, score them, and assemble a top-N
// list.
package recommend

import "github.com/jonathan/job-recommender/internal/types"

// DefaultLimit is the number of recommendations returned to callers.
const DefaultLimit = 10

// Assemble returns the first limit entries of the already-sorted scored list.
// Pure slicing; the scorer owns sort order.
func Assemble(scored []types.ScoredJob, limit int) []types.ScoredJob {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(scored) <= limit {
		return scored
	}
	return scored[:limit]
}
