// Package profile turns free-text bios and resumes into structured
// job-search preference profiles.
package profile

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/job-recommender/internal/llm"
	"github.com/jonathan/job-recommender/internal/prompts"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/jonathan/job-recommender/internal/types"
)

// minMeaningfulLength is the trimmed input length below which extraction is
// skipped entirely and the default profile returned. Shorter text carries no
// signal worth a provider call.
const minMeaningfulLength = 10

// maxJobTitles bounds the number of titles kept from the provider response.
const maxJobTitles = 4

// Extractor derives PreferenceProfiles from user text. It makes exactly one
// provider attempt per extraction; any failure on that path degrades to the
// deterministic keyword heuristics in fallback.go rather than surfacing an
// error to the caller.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an Extractor backed by the given completion client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract returns a preference profile for the given bio or resume text.
// Inputs shorter than minMeaningfulLength characters (after trimming) return
// the fixed default profile without any network call.
func (e *Extractor) Extract(ctx context.Context, text string) *types.PreferenceProfile {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minMeaningfulLength {
		return DefaultProfile()
	}

	p, err := e.extractWithProvider(ctx, trimmed)
	if err != nil {
		log.Printf("[profile] provider extraction failed, using heuristics: %v", err)
		return HeuristicProfile(trimmed)
	}
	return p
}

func (e *Extractor) extractWithProvider(ctx context.Context, text string) (*types.PreferenceProfile, error) {
	template := prompts.MustGet("profile.json", "extract-preferences")
	prompt := prompts.Format(template, map[string]string{
		"Text": text,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, llm.TaskExtract)
	if err != nil {
		return nil, err
	}

	payload := llm.ExtractJSONObject(raw)
	if err := schemas.Validate(schemas.PreferenceProfile, payload); err != nil {
		return nil, err
	}

	var p types.PreferenceProfile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, err
	}

	normalizeProfile(&p)
	return &p, nil
}

// normalizeProfile enforces the profile invariants the schema cannot express:
// title count bounds, case-insensitive skill dedup, and a usable experience
// level.
func normalizeProfile(p *types.PreferenceProfile) {
	if len(p.JobTitles) > maxJobTitles {
		p.JobTitles = p.JobTitles[:maxJobTitles]
	}
	if len(p.JobTitles) == 0 {
		p.JobTitles = []string{defaultJobTitle}
	}
	p.Skills = types.DedupeSkills(p.Skills)
	if len(p.Locations) == 0 {
		p.Locations = []string{"Remote"}
	}
	switch p.ExperienceLevel {
	case types.LevelEntry, types.LevelMid, types.LevelSenior, types.LevelExecutive:
	default:
		p.ExperienceLevel = types.LevelMid
	}
}
