// Package types defines the shared data structures for the job recommendation pipeline.
package types

import "strings"

// ExperienceLevel represents the seniority signal extracted from user text.
type ExperienceLevel string

// Experience level constants
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// WorkPreferences holds six independent boolean flags. No invariant forces
// mutual exclusivity; a profile may declare both Remote and Onsite.
type WorkPreferences struct {
	Remote   bool `json:"remote"`
	Hybrid   bool `json:"hybrid"`
	Onsite   bool `json:"onsite"`
	FullTime bool `json:"full_time"`
	PartTime bool `json:"part_time"`
	Contract bool `json:"contract"`
}

// PreferenceProfile is the structured job-search preference record derived from
// a free-text bio or resume. Constructed once per recommendation request and
// immutable after construction.
type PreferenceProfile struct {
	JobTitles       []string        `json:"job_titles"` // 1-4 entries, most-preferred first
	Skills          []string        `json:"skills"`     // deduplicated case-insensitively, input order kept
	Locations       []string        `json:"locations"`  // the literal "Remote" is a valid location
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	WorkPreferences WorkPreferences `json:"work_preferences"`
	Industries      []string        `json:"industries"`
	Summary         string          `json:"summary"`
}

// DedupeSkills returns skills with case-insensitive duplicates removed,
// keeping the first occurrence in input order.
func DedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// SearchQuery is a single planned provider query. Created by the planner,
// consumed once by the fetcher.
type SearchQuery struct {
	Keywords  []string `json:"keywords"`
	Location  string   `json:"location"`
	Seniority string   `json:"seniority"`
}

// JobRecord is a raw job posting from the search provider. The data is
// semi-trusted: every field other than ID may be empty.
type JobRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location"`
	DescriptionText string   `json:"description_text"`
	SalaryInfo      []string `json:"salary_info,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	PostedAt        string   `json:"posted_at,omitempty"`
	ApplicantsCount string   `json:"applicants_count,omitempty"`
	CompanyLogo     string   `json:"company_logo,omitempty"`
	Link            string   `json:"link,omitempty"`
}

// SkillsMatch breaks a job's score down against the profile's skill set.
type SkillsMatch struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage int      `json:"percentage"`
}

// ScoredJob is a JobRecord with its fit assessment attached. Created by the
// scorer, never mutated afterwards.
type ScoredJob struct {
	JobRecord
	AIScore              int         `json:"ai_score"` // always clamped to [0,100]
	MatchReasons         []string    `json:"match_reasons"`
	PersonalizedInsights string      `json:"personalized_insights"`
	SkillsMatch          SkillsMatch `json:"skills_match"`
}

// RecommendationSummary carries aggregate statistics about a recommendation run.
type RecommendationSummary struct {
	TotalJobsConsidered int      `json:"total_jobs_considered"`
	AverageScore        int      `json:"average_score"`
	TopCompanies        []string `json:"top_companies"`
	Coverage            string   `json:"coverage"`
}

// ResumeRecommendations is the full response for a resume-driven run: the
// ranked jobs plus the derived profile, the queries that produced them, and
// aggregate statistics.
type ResumeRecommendations struct {
	Jobs          []ScoredJob           `json:"jobs"`
	Analysis      *PreferenceProfile    `json:"analysis"`
	SearchQueries []SearchQuery         `json:"search_queries"`
	Summary       RecommendationSummary `json:"summary"`
}
