package recommend

import (
	"fmt"
	"sort"

	"github.com/jonathan/job-recommender/internal/types"
)

// maxTopCompanies bounds the companies listed in a run summary.
const maxTopCompanies = 3

// BuildSummary computes aggregate statistics over an assembled
// recommendation list. totalConsidered is the deduplicated job count before
// truncation; queryCount is how many provider queries produced it.
func BuildSummary(jobs []types.ScoredJob, totalConsidered, queryCount int) types.RecommendationSummary {
	summary := types.RecommendationSummary{
		TotalJobsConsidered: totalConsidered,
		Coverage:            fmt.Sprintf("Matched %d jobs across %d searches", totalConsidered, queryCount),
	}
	if len(jobs) == 0 {
		return summary
	}

	total := 0
	counts := make(map[string]int)
	for _, job := range jobs {
		total += job.AIScore
		if job.CompanyName != "" {
			counts[job.CompanyName]++
		}
	}
	summary.AverageScore = total / len(jobs)

	companies := make([]string, 0, len(counts))
	for name := range counts {
		companies = append(companies, name)
	}
	// Most frequent first; ties alphabetical so the summary is stable.
	sort.Slice(companies, func(i, j int) bool {
		if counts[companies[i]] != counts[companies[j]] {
			return counts[companies[i]] > counts[companies[j]]
		}
		return companies[i] < companies[j]
	})
	if len(companies) > maxTopCompanies {
		companies = companies[:maxTopCompanies]
	}
	summary.TopCompanies = companies

	return summary
}
