package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

// Heuristic score shape: a base for any fetched job, a per-skill increment,
// and a location bonus, clamped to [30,95]. The ceiling stays below 100 so a
// heuristic result never outranks a strong provider score.
const (
	heuristicBase          = 40
	heuristicPerSkill      = 8
	heuristicLocationBonus = 10
	heuristicFloor         = 30
	heuristicCeiling       = 95
)

// HeuristicScore computes a deterministic fallback score from substring
// overlap between the profile's skills and the job text, plus a bonus when
// the job's location matches a preferred location.
func HeuristicScore(job types.JobRecord, p *types.PreferenceProfile) types.ScoredJob {
	jobText := strings.ToLower(job.Title + " " + job.DescriptionText)

	var matched, missing []string
	for _, skill := range p.Skills {
		if strings.Contains(jobText, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := heuristicBase + len(matched)*heuristicPerSkill
	if locationMatches(job.Location, p) {
		score += heuristicLocationBonus
	}
	if score < heuristicFloor {
		score = heuristicFloor
	}
	if score > heuristicCeiling {
		score = heuristicCeiling
	}

	percentage := 0
	if len(p.Skills) > 0 {
		percentage = len(matched) * 100 / len(p.Skills)
	}

	reasons := []string{"Scored using standard match criteria"}
	if len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Mentions %d of your skills", len(matched)))
	}
	if locationMatches(job.Location, p) {
		reasons = append(reasons, "Location matches your preferences")
	}

	return types.ScoredJob{
		JobRecord:            job,
		AIScore:              score,
		MatchReasons:         reasons,
		PersonalizedInsights: "This role looks like a reasonable match for your background; review the full posting for details.",
		SkillsMatch: types.SkillsMatch{
			Matched:    matched,
			Missing:    missing,
			Percentage: percentage,
		},
	}
}

// locationMatches reports whether the job's location overlaps any preferred
// location. A profile preferring "Remote" matches jobs that mention remote.
func locationMatches(jobLocation string, p *types.PreferenceProfile) bool {
	if jobLocation == "" {
		return false
	}
	jobLower := strings.ToLower(jobLocation)
	for _, loc := range p.Locations {
		if loc == "" {
			continue
		}
		if strings.Contains(jobLower, strings.ToLower(loc)) {
			return true
		}
	}
	return p.WorkPreferences.Remote && strings.Contains(jobLower, "remote")
}
