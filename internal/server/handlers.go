package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/server/middleware"
	"github.com/jonathan/job-recommender/internal/store"
)

// GenerateRequest is the optional body for recommendation generation calls.
type GenerateRequest struct {
	Force bool `json:"force"`
}

// GetRecommendationsQuery validates the kind query parameter.
type GetRecommendationsQuery struct {
	Kind string `validate:"required,oneof=bio resume"`
}

var validate = validator.New()

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// authorizedUserID parses the path user ID and checks it matches the
// authenticated token. Users can only generate recommendations for themselves.
func (s *Server) authorizedUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	if authedID != userID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return uuid.Nil, false
	}
	return userID, true
}

// decodeGenerateRequest parses the optional request body. An empty body is
// valid and means default options.
func decodeGenerateRequest(r *http.Request) (GenerateRequest, error) {
	var req GenerateRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, nil
	}
	err = json.Unmarshal(body, &req)
	return req, err
}

func (s *Server) handleGenerateBio(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUserID(w, r)
	if !ok {
		return
	}

	req, err := decodeGenerateRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	jobs, err := s.service.FromBio(r.Context(), userID, req.Force)
	if err != nil {
		if errors.Is(err, recommend.ErrNoUserText) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Recommendation run failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUserID(w, r)
	if !ok {
		return
	}

	req, err := decodeGenerateRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.FromResume(r.Context(), userID, req.Force)
	if err != nil {
		if errors.Is(err, recommend.ErrNoUserText) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Recommendation run failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUserID(w, r)
	if !ok {
		return
	}

	query := GetRecommendationsQuery{Kind: r.URL.Query().Get("kind")}
	if query.Kind == "" {
		query.Kind = string(store.KindBio)
	}
	if err := validate.Struct(&query); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "kind must be 'bio' or 'resume'")
		return
	}

	var content json.RawMessage
	createdAt, err := s.store.GetRecommendations(r.Context(), userID, store.RecommendationKind(query.Kind), &content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "No stored recommendations; generate them first")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"kind":       query.Kind,
		"created_at": createdAt.Format(time.RFC3339),
		"content":    content,
	})
}
