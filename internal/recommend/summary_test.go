package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/types"
)

func summaryJob(id, company string, score int) types.ScoredJob {
	return types.ScoredJob{
		JobRecord: types.JobRecord{ID: id, CompanyName: company},
		AIScore:   score,
	}
}

func TestBuildSummary_AverageAndCoverage(t *testing.T) {
	jobs := []types.ScoredJob{
		summaryJob("a", "Acme", 90),
		summaryJob("b", "Globex", 70),
		summaryJob("c", "Acme", 80),
	}

	s := BuildSummary(jobs, 24, 6)

	assert.Equal(t, 24, s.TotalJobsConsidered)
	assert.Equal(t, 80, s.AverageScore)
	assert.Equal(t, "Matched 24 jobs across 6 searches", s.Coverage)
}

func TestBuildSummary_TopCompaniesByFrequencyThenName(t *testing.T) {
	jobs := []types.ScoredJob{
		summaryJob("a", "Globex", 80),
		summaryJob("b", "Acme", 80),
		summaryJob("c", "Acme", 80),
		summaryJob("d", "Initech", 80),
		summaryJob("e", "Hooli", 80),
	}

	s := BuildSummary(jobs, 5, 2)

	// Acme has two postings; the remaining single-count companies tie and
	// sort alphabetically, truncated to three total.
	assert.Equal(t, []string{"Acme", "Globex", "Hooli"}, s.TopCompanies)
}

func TestBuildSummary_SkipsEmptyCompanyNames(t *testing.T) {
	jobs := []types.ScoredJob{
		summaryJob("a", "", 60),
		summaryJob("b", "Acme", 80),
	}

	s := BuildSummary(jobs, 2, 1)

	assert.Equal(t, []string{"Acme"}, s.TopCompanies)
	assert.Equal(t, 70, s.AverageScore)
}

func TestBuildSummary_NoJobs(t *testing.T) {
	s := BuildSummary(nil, 0, 4)

	assert.Equal(t, 0, s.TotalJobsConsidered)
	assert.Equal(t, 0, s.AverageScore)
	assert.Empty(t, s.TopCompanies)
	assert.Equal(t, "Matched 0 jobs across 4 searches", s.Coverage)
}
