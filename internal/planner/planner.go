// Package planner expands a preference profile into a bounded list of
// provider search queries.
package planner

import "github.com/jonathan/job-recommender/internal/types"

const (
	// maxQueries caps fan-out to bound external-call cost, not for correctness.
	maxQueries = 6
	// skillsPerTitleQuery is how many profile skills accompany each job title.
	skillsPerTitleQuery = 3
	// skillsPerBroadQuery is how many skills a title-less broad query carries.
	skillsPerBroadQuery = 4
)

// Plan generates search queries from a profile. Pure function, no I/O.
//
// For every (title, location) pair one query is emitted whose keywords are the
// title followed by the top skills in profile order. Each location then gets
// one broader skills-only query when the profile has any skills. Queries are
// generated titles-first and the result is truncated to the first maxQueries;
// no dedup is performed on the queries themselves.
func Plan(p *types.PreferenceProfile) []types.SearchQuery {
	if p == nil {
		return nil
	}

	seniority := string(p.ExperienceLevel)
	queries := make([]types.SearchQuery, 0, maxQueries)

	topSkills := p.Skills
	if len(topSkills) > skillsPerTitleQuery {
		topSkills = topSkills[:skillsPerTitleQuery]
	}

	for _, title := range p.JobTitles {
		for _, location := range p.Locations {
			keywords := make([]string, 0, 1+len(topSkills))
			keywords = append(keywords, title)
			keywords = append(keywords, topSkills...)
			queries = append(queries, types.SearchQuery{
				Keywords:  keywords,
				Location:  location,
				Seniority: seniority,
			})
		}
	}

	if len(p.Skills) > 0 {
		broadSkills := p.Skills
		if len(broadSkills) > skillsPerBroadQuery {
			broadSkills = broadSkills[:skillsPerBroadQuery]
		}
		for _, location := range p.Locations {
			keywords := make([]string, len(broadSkills))
			copy(keywords, broadSkills)
			queries = append(queries, types.SearchQuery{
				Keywords:  keywords,
				Location:  location,
				Seniority: seniority,
			})
		}
	}

	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}
	return queries
}
