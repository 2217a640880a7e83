package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestHeuristicScore_SkillAndLocationMatch(t *testing.T) {
	job := types.JobRecord{
		ID:              "job-1",
		Title:           "Senior Go Engineer",
		Location:        "Remote (EU)",
		DescriptionText: "You will build Go services backed by PostgreSQL.",
	}

	scored := HeuristicScore(job, testProfile())

	// Base 40, two matched skills, location bonus.
	assert.Equal(t, 40+2*8+10, scored.AIScore)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, scored.SkillsMatch.Matched)
	assert.Empty(t, scored.SkillsMatch.Missing)
	assert.Equal(t, 100, scored.SkillsMatch.Percentage)
	assert.Contains(t, scored.MatchReasons, "Location matches your preferences")
}

func TestHeuristicScore_NoMatchesScoresBase(t *testing.T) {
	job := types.JobRecord{
		ID:              "job-1",
		Title:           "Pastry Chef",
		Location:        "Lyon",
		DescriptionText: "Croissants and laminated doughs.",
	}

	scored := HeuristicScore(job, testProfile())

	assert.Equal(t, 40, scored.AIScore)
	assert.Empty(t, scored.SkillsMatch.Matched)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, scored.SkillsMatch.Missing)
	assert.Equal(t, 0, scored.SkillsMatch.Percentage)
}

func TestHeuristicScore_CeilingAt95(t *testing.T) {
	skills := []string{"Go", "PostgreSQL", "Redis", "Kafka", "Docker", "Kubernetes", "Terraform", "AWS"}
	p := &types.PreferenceProfile{
		Skills:    skills,
		Locations: []string{"Remote"},
	}
	job := types.JobRecord{
		ID:              "job-1",
		Location:        "Remote",
		DescriptionText: strings.Join(skills, " "),
	}

	scored := HeuristicScore(job, p)

	// 40 + 8*8 + 10 = 114 before the clamp.
	assert.Equal(t, 95, scored.AIScore)
}

func TestHeuristicScore_PartialSkillPercentage(t *testing.T) {
	job := types.JobRecord{
		ID:              "job-1",
		Title:           "Backend Engineer",
		Location:        "Berlin",
		DescriptionText: "Go microservices.",
	}

	scored := HeuristicScore(job, testProfile())

	assert.Equal(t, []string{"Go"}, scored.SkillsMatch.Matched)
	assert.Equal(t, []string{"PostgreSQL"}, scored.SkillsMatch.Missing)
	assert.Equal(t, 50, scored.SkillsMatch.Percentage)
}

func TestHeuristicScore_AlwaysHasReason(t *testing.T) {
	scored := HeuristicScore(types.JobRecord{ID: "job-1"}, &types.PreferenceProfile{})
	assert.NotEmpty(t, scored.MatchReasons)
	assert.NotEmpty(t, scored.PersonalizedInsights)
}

func TestLocationMatches_RemotePreference(t *testing.T) {
	p := &types.PreferenceProfile{
		Locations:       []string{"Berlin"},
		WorkPreferences: types.WorkPreferences{Remote: true},
	}

	assert.True(t, locationMatches("Remote - Worldwide", p))
	assert.True(t, locationMatches("Berlin, Germany", p))
	assert.False(t, locationMatches("Paris, France", p))
	assert.False(t, locationMatches("", p))
}
