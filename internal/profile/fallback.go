package profile

import (
	"strings"

	"github.com/jonathan/job-recommender/internal/types"
)

const (
	defaultJobTitle = "Software Engineer"
	// fallbackCity is used when the text gives no location signal at all.
	fallbackCity = "San Francisco"
)

// fallbackSkillVocabulary is the fixed set of common technical skill tokens
// scanned for on the heuristic path. Matching is case-insensitive substring
// search, so multi-word entries match as written.
var fallbackSkillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Ruby", "PHP",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"Spring", "SQL", "MongoDB", "PostgreSQL", "AWS", "Azure", "Docker",
	"Kubernetes", "Git", "Machine Learning",
}

// DefaultProfile returns the fixed profile used when the input text is too
// short to analyze. This is a deliberate short-circuit, not an error.
func DefaultProfile() *types.PreferenceProfile {
	return &types.PreferenceProfile{
		JobTitles:       []string{defaultJobTitle},
		Skills:          []string{"JavaScript", "React"},
		Locations:       []string{"Remote"},
		ExperienceLevel: types.LevelMid,
		WorkPreferences: types.WorkPreferences{
			Remote:   true,
			FullTime: true,
		},
		Industries: []string{"Technology"},
		Summary:    "General software engineering profile",
	}
}

// HeuristicProfile derives a profile from keyword scanning alone. It is the
// deterministic fallback for provider failures and never errors. The coarser
// entry/mid/senior levels are the only ones this path can infer.
func HeuristicProfile(text string) *types.PreferenceProfile {
	lower := strings.ToLower(text)

	var skills []string
	for _, skill := range fallbackSkillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	var titles []string
	switch {
	case strings.Contains(lower, "fullstack") || strings.Contains(lower, "full stack"):
		titles = []string{"Full Stack Developer"}
	case strings.Contains(lower, "frontend"):
		titles = []string{"Frontend Developer"}
	case strings.Contains(lower, "backend"):
		titles = []string{"Backend Developer"}
	default:
		titles = []string{defaultJobTitle}
	}

	level := types.LevelMid
	if strings.Contains(lower, "senior") {
		level = types.LevelSenior
	} else if strings.Contains(lower, "junior") {
		level = types.LevelEntry
	}

	locations := []string{fallbackCity}
	remote := strings.Contains(lower, "remote")
	if remote {
		locations = []string{"Remote"}
	}

	return &types.PreferenceProfile{
		JobTitles:       titles,
		Skills:          skills,
		Locations:       locations,
		ExperienceLevel: level,
		WorkPreferences: types.WorkPreferences{
			Remote:   remote,
			Hybrid:   strings.Contains(lower, "hybrid"),
			FullTime: true,
			Contract: strings.Contains(lower, "contract") || strings.Contains(lower, "freelance"),
		},
		Industries: []string{"Technology"},
		Summary:    "Profile derived from keyword analysis",
	}
}
