package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/job-recommender/internal/cache"
	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/jobs"
	"github.com/jonathan/job-recommender/internal/llm"
	"github.com/jonathan/job-recommender/internal/profile"
	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/scoring"
	"github.com/jonathan/job-recommender/internal/store"
)

// loadConfig reads the optional JSON config file, fills gaps from the
// environment, then from built-in defaults, and validates the result.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtime bundles everything a command needs to execute recommendation runs.
type runtime struct {
	service *recommend.Service
	store   *store.Store
	llm     llm.Client
	cache   *cache.Cache
}

// buildRuntime assembles the pipeline from config. Callers must invoke
// close() when done.
func buildRuntime(ctx context.Context, cfg config.Config) (*runtime, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.ProviderURL == "" {
		return nil, fmt.Errorf("JOB_PROVIDER_URL environment variable is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var recCache *cache.Cache
	if cfg.RedisAddr != "" {
		recCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
	}

	provider := jobs.NewHTTPProvider(cfg.ProviderURL, cfg.ProviderToken, time.Duration(cfg.TimeoutSeconds)*time.Second)
	fetcher := jobs.NewFetcher(provider, cfg.FetchConcurrency)
	scorer := scoring.NewScorer(client, cfg.BatchSize)
	extractor := profile.NewExtractor(client)

	service := recommend.NewService(st, extractor, fetcher, scorer, recCache, cfg.Limit)

	return &runtime{
		service: service,
		store:   st,
		llm:     client,
		cache:   recCache,
	}, nil
}

func (r *runtime) close() {
	_ = r.cache.Close()
	r.store.Close()
	_ = r.llm.Close()
}
