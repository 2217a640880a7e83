// Package refresh wires up the cron job that periodically regenerates bio
// recommendations for recently active users, so the feed stays warm without
// an explicit request.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/jonathan/job-recommender/internal/recommend"
)

// activityWindow is how far back a user's activity counts as "recent".
const activityWindow = 7 * 24 * time.Hour

// UserLister supplies the users eligible for a background refresh.
// Implemented by *store.Store.
type UserLister interface {
	ListActiveUsers(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}

// Refresher wraps robfig/cron and manages the periodic regeneration loop.
type Refresher struct {
	cron    *cron.Cron
	users   UserLister
	service *recommend.Service
	spec    string // cron spec, e.g. "@every 6h"
}

// New creates a Refresher that fires every intervalHours hours.
func New(users UserLister, service *recommend.Service, intervalHours int) *Refresher {
	if intervalHours <= 0 {
		intervalHours = 6
	}
	return &Refresher{
		cron:    cron.New(cron.WithLogger(cron.DefaultLogger)),
		users:   users,
		service: service,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so the cache is populated without waiting for the first tick.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		r.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	r.cron.Start()
	log.Printf("[refresh] Cron started with spec %s", r.spec)

	// Run immediately on startup (non-blocking)
	go r.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (r *Refresher) Stop() {
	r.cron.Stop()
	log.Println("[refresh] Cron stopped")
}

// runRefresh regenerates bio recommendations for each recently active user.
// Per-user failures are logged and skipped; users without a bio are expected
// and not an error worth surfacing.
func (r *Refresher) runRefresh(ctx context.Context) {
	users, err := r.users.ListActiveUsers(ctx, time.Now().Add(-activityWindow))
	if err != nil {
		log.Printf("[refresh] failed to list active users: %v", err)
		return
	}

	log.Printf("[refresh] refreshing recommendations for %d users", len(users))
	for _, userID := range users {
		if ctx.Err() != nil {
			return
		}
		if _, err := r.service.FromBio(ctx, userID, true); err != nil {
			if errors.Is(err, recommend.ErrNoUserText) {
				continue
			}
			log.Printf("[refresh] skipping user %s: %v", userID, err)
		}
	}
}
