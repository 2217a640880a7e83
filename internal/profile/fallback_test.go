package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/types"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	require.NotNil(t, p)
	assert.Equal(t, []string{"Software Engineer"}, p.JobTitles)
	assert.Equal(t, []string{"JavaScript", "React"}, p.Skills)
	assert.Equal(t, []string{"Remote"}, p.Locations)
	assert.Equal(t, types.LevelMid, p.ExperienceLevel)
	assert.True(t, p.WorkPreferences.Remote)
	assert.True(t, p.WorkPreferences.FullTime)
}

func TestHeuristicProfile_SeniorRemoteGoDeveloper(t *testing.T) {
	// "Go" is not in the keyword vocabulary, so only the containerization
	// skills register; seniority and remote preference still come through.
	p := HeuristicProfile("Senior Go developer seeking remote work with Docker and Kubernetes")

	assert.Equal(t, types.LevelSenior, p.ExperienceLevel)
	assert.True(t, p.WorkPreferences.Remote)
	assert.Equal(t, []string{"Remote"}, p.Locations)
	assert.Contains(t, p.Skills, "Docker")
	assert.Contains(t, p.Skills, "Kubernetes")
	assert.NotContains(t, p.Skills, "Go")
}

func TestHeuristicProfile_TitleInference(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"frontend", "I am a frontend specialist with React", "Frontend Developer"},
		{"backend", "backend services in Python and PostgreSQL", "Backend Developer"},
		{"fullstack one word", "experienced fullstack engineer", "Full Stack Developer"},
		{"full stack two words", "full stack web development", "Full Stack Developer"},
		{"no signal", "I write software for embedded systems", "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := HeuristicProfile(tt.text)
			assert.Equal(t, []string{tt.expected}, p.JobTitles)
		})
	}
}

func TestHeuristicProfile_ExperienceLevels(t *testing.T) {
	assert.Equal(t, types.LevelSenior, HeuristicProfile("senior engineer").ExperienceLevel)
	assert.Equal(t, types.LevelEntry, HeuristicProfile("junior engineer").ExperienceLevel)
	assert.Equal(t, types.LevelMid, HeuristicProfile("software engineer").ExperienceLevel)
}

func TestHeuristicProfile_LocationDefaultsWhenNoRemoteSignal(t *testing.T) {
	p := HeuristicProfile("backend developer with Java experience")

	assert.Equal(t, []string{"San Francisco"}, p.Locations)
	assert.False(t, p.WorkPreferences.Remote)
}

func TestHeuristicProfile_WorkPreferenceFlags(t *testing.T) {
	p := HeuristicProfile("hybrid contract work as a frontend developer")

	assert.True(t, p.WorkPreferences.Hybrid)
	assert.True(t, p.WorkPreferences.Contract)
	assert.True(t, p.WorkPreferences.FullTime)
	assert.False(t, p.WorkPreferences.Remote)
}
