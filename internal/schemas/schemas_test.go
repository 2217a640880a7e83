package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"job_titles": ["Backend Engineer"],
	"skills": ["Go", "PostgreSQL"],
	"locations": ["Remote"],
	"experience_level": "senior",
	"work_preferences": {"remote": true, "hybrid": false, "onsite": false, "full_time": true, "part_time": false, "contract": false},
	"industries": ["Technology"],
	"summary": "Experienced backend engineer"
}`

func TestValidate_PreferenceProfile_Valid(t *testing.T) {
	err := Validate(PreferenceProfile, validProfile)
	assert.NoError(t, err)
}

func TestValidate_PreferenceProfile_MissingRequired(t *testing.T) {
	document := `{"skills": ["Go"]}`

	err := Validate(PreferenceProfile, document)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, PreferenceProfile, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_PreferenceProfile_TooManyTitles(t *testing.T) {
	document := `{
		"job_titles": ["a", "b", "c", "d", "e"],
		"skills": ["Go"],
		"locations": ["Remote"],
		"experience_level": "mid"
	}`

	err := Validate(PreferenceProfile, document)
	assert.Error(t, err)
}

func TestValidate_PreferenceProfile_BadExperienceLevel(t *testing.T) {
	document := `{
		"job_titles": ["Engineer"],
		"skills": ["Go"],
		"locations": ["Remote"],
		"experience_level": "wizard"
	}`

	err := Validate(PreferenceProfile, document)
	assert.Error(t, err)
}

func TestValidate_ScoredBatch_Valid(t *testing.T) {
	document := `[
		{"id": "job-1", "ai_score": 82, "match_reasons": ["Strong skill overlap"]},
		{"id": "job-2", "ai_score": 55}
	]`

	err := Validate(ScoredBatch, document)
	assert.NoError(t, err)
}

func TestValidate_ScoredBatch_MissingScore(t *testing.T) {
	document := `[{"id": "job-1"}]`

	err := Validate(ScoredBatch, document)
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidate_ScoredBatch_ObjectInsteadOfArray(t *testing.T) {
	document := `{"id": "job-1", "ai_score": 80}`

	err := Validate(ScoredBatch, document)
	assert.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope", `{}`)
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
