// Package store provides PostgreSQL access for user text and generated
// recommendations. The surrounding application owns the CRUD surface for
// profiles and resumes; this service reads their text and records results.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecommendationKind distinguishes bio-driven from resume-driven runs.
type RecommendationKind string

// Recommendation kinds
const (
	KindBio    RecommendationKind = "bio"
	KindResume RecommendationKind = "resume"
)

// ErrNotFound is returned when a user has no stored bio, resume, or
// recommendation set.
var ErrNotFound = errors.New("not found")

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetProfileBio returns the user's stored bio text.
// Returns ErrNotFound when the user has no profile or the bio is empty.
func (s *Store) GetProfileBio(ctx context.Context, userID uuid.UUID) (string, error) {
	var bio string
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(bio, '') FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&bio)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load profile bio: %w", err)
	}
	if strings.TrimSpace(bio) == "" {
		return "", ErrNotFound
	}
	return bio, nil
}

// GetActiveResumeText returns the text of the user's active resume.
// Returns ErrNotFound when no active resume exists or its text is empty.
func (s *Store) GetActiveResumeText(ctx context.Context, userID uuid.UUID) (string, error) {
	var text string
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(resume_text, '') FROM resumes
		 WHERE user_id = $1 AND is_active = true
		 ORDER BY updated_at DESC
		 LIMIT 1`,
		userID,
	).Scan(&text)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load active resume: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNotFound
	}
	return text, nil
}

// SaveRecommendations persists a generated recommendation set as a JSON
// document, replacing any previous set of the same kind for the user.
func (s *Store) SaveRecommendations(ctx context.Context, userID uuid.UUID, kind RecommendationKind, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO recommendations (user_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		userID, string(kind), jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s recommendations: %w", kind, err)
	}
	return nil
}

// GetRecommendations loads the most recent stored recommendation set of the
// given kind into dest (a pointer to the JSON-decodable result type).
func (s *Store) GetRecommendations(ctx context.Context, userID uuid.UUID, kind RecommendationKind, dest any) (time.Time, error) {
	var content []byte
	var createdAt time.Time
	err := s.pool.QueryRow(ctx,
		`SELECT content, created_at FROM recommendations
		 WHERE user_id = $1 AND kind = $2`,
		userID, string(kind),
	).Scan(&content, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load %s recommendations: %w", kind, err)
	}

	if err := json.Unmarshal(content, dest); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode stored recommendations: %w", err)
	}
	return createdAt, nil
}

// ListActiveUsers returns users with profile activity since the cutoff, for
// the background refresher.
func (s *Store) ListActiveUsers(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT user_id FROM profiles WHERE last_seen_at >= $1`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var users []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		users = append(users, id)
	}
	return users, rows.Err()
}
