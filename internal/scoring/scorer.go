// Package scoring assigns each fetched job a 0-100 fit score against the
// user's preference profile, using batched completion calls with a
// deterministic heuristic fallback.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/job-recommender/internal/llm"
	"github.com/jonathan/job-recommender/internal/prompts"
	"github.com/jonathan/job-recommender/internal/schemas"
	"github.com/jonathan/job-recommender/internal/types"
)

const (
	// DefaultBatchSize is how many jobs share one scoring request. Bounds
	// prompt size and token cost.
	DefaultBatchSize = 5
	// maxSourceTextChars bounds the bio/resume prefix embedded in the prompt.
	maxSourceTextChars = 2000
	// maxDescriptionChars bounds each job description prefix in the prompt.
	maxDescriptionChars = 600
	// maxMatchReasons caps the reasons kept per job.
	maxMatchReasons = 4
)

// Scorer batches jobs through the completion provider. Batches dispatch in
// list order, paced by a limiter to stay under provider throttling.
type Scorer struct {
	client    llm.Client
	batchSize int
	limiter   *rate.Limiter
}

// NewScorer creates a Scorer. batchSize <= 0 selects DefaultBatchSize.
func NewScorer(client llm.Client, batchSize int) *Scorer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Scorer{
		client:    client,
		batchSize: batchSize,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// scoredEntry mirrors one element of the provider's scoring response array.
type scoredEntry struct {
	ID                   string            `json:"id"`
	AIScore              float64           `json:"ai_score"`
	MatchReasons         []string          `json:"match_reasons"`
	PersonalizedInsights string            `json:"personalized_insights"`
	SkillsMatch          scoredSkillsMatch `json:"skills_match"`
}

type scoredSkillsMatch struct {
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	Percentage float64  `json:"percentage"`
}

// Score assesses every job against the profile. The output always contains
// exactly len(jobs) entries: jobs whose batch fails scoring, and jobs the
// provider response skips, receive the deterministic heuristic score instead.
// Results are sorted descending by score (stable for ties).
func (s *Scorer) Score(ctx context.Context, jobList []types.JobRecord, p *types.PreferenceProfile, sourceText string) []types.ScoredJob {
	scored := make([]types.ScoredJob, 0, len(jobList))

	for start := 0; start < len(jobList); start += s.batchSize {
		end := start + s.batchSize
		if end > len(jobList) {
			end = len(jobList)
		}
		batch := jobList[start:end]

		if err := s.limiter.Wait(ctx); err != nil {
			// Context gone; heuristics for everything left.
			for _, job := range jobList[start:] {
				scored = append(scored, HeuristicScore(job, p))
			}
			break
		}

		entries, err := s.scoreBatch(ctx, batch, p, sourceText)
		if err != nil {
			log.Printf("[scorer] batch %d-%d failed, using heuristic scores: %v", start, end, err)
			for _, job := range batch {
				scored = append(scored, HeuristicScore(job, p))
			}
			continue
		}

		for _, job := range batch {
			entry, ok := entries[job.ID]
			if !ok {
				scored = append(scored, HeuristicScore(job, p))
				continue
			}
			scored = append(scored, mergeEntry(job, entry))
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].AIScore > scored[j].AIScore
	})
	return scored
}

// scoreBatch sends one batch to the provider and returns the parsed entries
// keyed by job ID. Entries whose ID matches no job in the batch are dropped
// by the caller's merge.
func (s *Scorer) scoreBatch(ctx context.Context, batch []types.JobRecord, p *types.PreferenceProfile, sourceText string) (map[string]scoredEntry, error) {
	prompt, err := buildScoringPrompt(batch, p, sourceText)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TaskScore)
	if err != nil {
		return nil, err
	}

	payload := llm.ExtractJSONArray(raw)
	if err := schemas.Validate(schemas.ScoredBatch, payload); err != nil {
		return nil, err
	}

	var parsed []scoredEntry
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}

	entries := make(map[string]scoredEntry, len(parsed))
	for _, entry := range parsed {
		if entry.ID == "" {
			continue
		}
		if _, dup := entries[entry.ID]; dup {
			continue
		}
		entries[entry.ID] = entry
	}
	return entries, nil
}

// mergeEntry attaches a provider score entry to its job, enforcing the
// [0,100] bounds the provider response cannot be trusted to respect.
func mergeEntry(job types.JobRecord, entry scoredEntry) types.ScoredJob {
	reasons := entry.MatchReasons
	if len(reasons) > maxMatchReasons {
		reasons = reasons[:maxMatchReasons]
	}
	return types.ScoredJob{
		JobRecord:            job,
		AIScore:              clampScore(int(entry.AIScore)),
		MatchReasons:         reasons,
		PersonalizedInsights: entry.PersonalizedInsights,
		SkillsMatch: types.SkillsMatch{
			Matched:    entry.SkillsMatch.Matched,
			Missing:    entry.SkillsMatch.Missing,
			Percentage: clampScore(int(entry.SkillsMatch.Percentage)),
		},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// buildScoringPrompt embeds the profile, a bounded source-text prefix, and
// the batch's job summaries into the scoring template.
func buildScoringPrompt(batch []types.JobRecord, p *types.PreferenceProfile, sourceText string) (string, error) {
	profileJSON, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	if len(sourceText) > maxSourceTextChars {
		sourceText = sourceText[:maxSourceTextChars]
	}

	var sb strings.Builder
	for i, job := range batch {
		description := job.DescriptionText
		if len(description) > maxDescriptionChars {
			description = description[:maxDescriptionChars]
		}
		sb.WriteString(fmt.Sprintf("Job %d (id: %s)\n", i+1, job.ID))
		sb.WriteString(fmt.Sprintf("  Title: %s\n", job.Title))
		sb.WriteString(fmt.Sprintf("  Company: %s\n", job.CompanyName))
		sb.WriteString(fmt.Sprintf("  Location: %s\n", job.Location))
		if len(job.SalaryInfo) > 0 {
			sb.WriteString(fmt.Sprintf("  Salary: %s\n", strings.Join(job.SalaryInfo, ", ")))
		}
		if job.EmploymentType != "" {
			sb.WriteString(fmt.Sprintf("  Employment type: %s\n", job.EmploymentType))
		}
		sb.WriteString(fmt.Sprintf("  Description: %s\n\n", description))
	}

	template := prompts.MustGet("scoring.json", "score-jobs-batch")
	return prompts.Format(template, map[string]string{
		"Profile":    string(profileJSON),
		"SourceText": sourceText,
		"Jobs":       sb.String(),
	}), nil
}
