package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/cache"
	"github.com/jonathan/job-recommender/internal/planner"
	"github.com/jonathan/job-recommender/internal/store"
	"github.com/jonathan/job-recommender/internal/types"
)

// ErrNoUserText is returned when the user has no bio or resume text to
// analyze. This precondition propagates to the caller; with no text at all
// there is no signal to even heuristically analyze.
var ErrNoUserText = errors.New("no text available for analysis; add a bio or upload a resume first")

// TextSource supplies the user text and persists results. Implemented by
// *store.Store.
type TextSource interface {
	GetProfileBio(ctx context.Context, userID uuid.UUID) (string, error)
	GetActiveResumeText(ctx context.Context, userID uuid.UUID) (string, error)
	SaveRecommendations(ctx context.Context, userID uuid.UUID, kind store.RecommendationKind, content any) error
}

// Extractor derives a preference profile from user text.
type Extractor interface {
	Extract(ctx context.Context, text string) *types.PreferenceProfile
}

// Fetcher executes planned queries and returns deduplicated job records.
type Fetcher interface {
	Fetch(ctx context.Context, queries []types.SearchQuery) []types.JobRecord
}

// Scorer assigns fit scores to fetched jobs.
type Scorer interface {
	Score(ctx context.Context, jobs []types.JobRecord, p *types.PreferenceProfile, sourceText string) []types.ScoredJob
}

// Service is the caller-facing entry point for recommendation runs.
type Service struct {
	source    TextSource
	extractor Extractor
	fetcher   Fetcher
	scorer    Scorer
	cache     *cache.Cache
	limit     int
}

// NewService wires the pipeline together. cache may be nil; limit <= 0
// selects DefaultLimit.
func NewService(source TextSource, extractor Extractor, fetcher Fetcher, scorer Scorer, c *cache.Cache, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		source:    source,
		extractor: extractor,
		fetcher:   fetcher,
		scorer:    scorer,
		cache:     c,
		limit:     limit,
	}
}

// FromBio generates recommendations from the user's stored bio. Cached
// results are served when fresh unless force is set.
func (s *Service) FromBio(ctx context.Context, userID uuid.UUID, force bool) ([]types.ScoredJob, error) {
	cacheKey := cache.Key(userID.String(), string(store.KindBio))
	if !force {
		var cached []types.ScoredJob
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	bio, err := s.source.GetProfileBio(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoUserText
		}
		return nil, fmt.Errorf("failed to load bio: %w", err)
	}

	jobs, _, _, _, err := s.run(ctx, bio)
	if err != nil {
		return nil, err
	}

	if err := s.source.SaveRecommendations(ctx, userID, store.KindBio, jobs); err != nil {
		log.Printf("[recommend] failed to persist bio recommendations for %s: %v", userID, err)
	}
	s.cache.Set(ctx, cacheKey, jobs)

	return jobs, nil
}

// FromResume generates the full resume-driven response: recommendations plus
// the derived profile, the planned queries, and summary statistics.
func (s *Service) FromResume(ctx context.Context, userID uuid.UUID, force bool) (*types.ResumeRecommendations, error) {
	cacheKey := cache.Key(userID.String(), string(store.KindResume))
	if !force {
		var cached types.ResumeRecommendations
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	resumeText, err := s.source.GetActiveResumeText(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoUserText
		}
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	jobs, profile, queries, considered, err := s.run(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	result := &types.ResumeRecommendations{
		Jobs:          jobs,
		Analysis:      profile,
		SearchQueries: queries,
		Summary:       BuildSummary(jobs, considered, len(queries)),
	}

	if err := s.source.SaveRecommendations(ctx, userID, store.KindResume, result); err != nil {
		log.Printf("[recommend] failed to persist resume recommendations for %s: %v", userID, err)
	}
	s.cache.Set(ctx, cacheKey, result)

	return result, nil
}

// run executes the pipeline stages for one piece of user text.
func (s *Service) run(ctx context.Context, text string) ([]types.ScoredJob, *types.PreferenceProfile, []types.SearchQuery, int, error) {
	profile := s.extractor.Extract(ctx, text)
	queries := planner.Plan(profile)
	fetched := s.fetcher.Fetch(ctx, queries)

	log.Printf("[recommend] %d queries returned %d unique jobs", len(queries), len(fetched))

	scored := s.scorer.Score(ctx, fetched, profile, text)
	jobs := Assemble(scored, s.limit)

	if err := ctx.Err(); err != nil {
		return nil, nil, nil, 0, err
	}
	return jobs, profile, queries, len(fetched), nil
}
