// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cosinerec/internal/middleware"
	"github.com/tomtom215/cosinerec/internal/recommend"
	"github.com/tomtom215/cosinerec/internal/validation"
)

// Handler serves the recommendation endpoints for one engine.
type Handler struct {
	engine      *recommend.Engine
	defaultTopN int
	startTime   time.Time
}

// NewHandler creates a Handler. defaultTopN is used when a request omits n.
func NewHandler(engine *recommend.Engine, defaultTopN int) *Handler {
	return &Handler{
		engine:      engine,
		defaultTopN: defaultTopN,
		startTime:   time.Now(),
	}
}

// HealthStatus is the data of GET /api/v1/health.
type HealthStatus struct {
	Status        string                `json:"status"`
	Algorithm     string                `json:"algorithm"`
	Users         int                   `json:"users"`
	Items         int                   `json:"items"`
	UptimeSeconds float64               `json:"uptime_seconds"`
	Engine        recommend.EngineStats `json:"engine"`
}

// SimilarityData is the data of GET /api/v1/similarity/user/{userIndex}.
type SimilarityData struct {
	UserIndex    int                        `json:"user_index"`
	Similarities recommend.SimilarityVector `json:"similarities"`
}

// Health handles GET /api/v1/health.
//
// @Summary Get service health
// @Description Returns the loaded matrix dimensions, the algorithm name, uptime and engine counters.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Service is healthy"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	users, items := h.engine.Dimensions()

	respondSuccess(w, HealthStatus{
		Status:        "healthy",
		Algorithm:     h.engine.AlgorithmName(),
		Users:         users,
		Items:         items,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Engine:        h.engine.Stats(),
	}, start, false)
}

// Recommendations handles GET /api/v1/recommendations/user/{userIndex}?n=.
//
// @Summary Get top-N recommendations for a user
// @Description Predicts ratings for the items the user has not rated, ranked by score descending with ties by ascending item index.
// @Tags Recommendations
// @Produce json
// @Param userIndex path int true "0-based user index"
// @Param n query int false "Maximum number of recommendations (defaults to request.top_n)"
// @Success 200 {object} APIResponse{data=recommend.Response} "Ranked recommendations"
// @Failure 400 {object} APIResponse "Invalid user index or n"
// @Failure 404 {object} APIResponse "User index out of range"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /recommendations/user/{userIndex} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, err := userIndexParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidParameter, err.Error(), nil)
		return
	}

	topN, err := intQueryParam(r, "n", h.defaultTopN)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidParameter, err.Error(), nil)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		UserIndex: user,
		TopN:      topN,
		RequestID: middleware.GetRequestID(r.Context()),
	})
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, resp, start, resp.Metadata.CacheHit)
}

// Similarity handles GET /api/v1/similarity/user/{userIndex}.
//
// @Summary Get a user's similarity vector
// @Description Returns the cosine similarity of the user to every user; the user's own entry is 0.
// @Tags Recommendations
// @Produce json
// @Param userIndex path int true "0-based user index"
// @Success 200 {object} APIResponse{data=SimilarityData} "Similarity vector"
// @Failure 400 {object} APIResponse "Invalid user index"
// @Failure 404 {object} APIResponse "User index out of range"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /similarity/user/{userIndex} [get]
func (h *Handler) Similarity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, err := userIndexParam(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, CodeInvalidParameter, err.Error(), nil)
		return
	}

	sims, err := h.engine.Similarities(r.Context(), user)
	if err != nil {
		h.respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, SimilarityData{UserIndex: user, Similarities: sims}, start, false)
}

// NotFound handles unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
}

// MethodNotAllowed handles known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}

// respondEngineError maps engine errors to HTTP statuses.
func (h *Handler) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrInvalidUserIndex):
		respondError(w, r, http.StatusNotFound, CodeInvalidUserIndex, err.Error(), nil)
	case errors.Is(err, recommend.ErrInvalidRequest):
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			apiErr := verr.ToAPIError()
			respondErrorDetails(w, r, http.StatusBadRequest, &APIError{
				Code:    CodeInvalidRequest,
				Message: apiErr.Message,
				Details: apiErr.Details,
			}, nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, CodeInvalidRequest, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, CodeRequestCanceled, "Request canceled", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternalError, "Failed to compute recommendations", err)
	}
}

// userIndexParam parses the {userIndex} path parameter as a non-negative integer.
func userIndexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "userIndex")
	user, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("userIndex must be an integer, got %q", sanitizeLogValue(raw))
	}
	if user < 0 {
		return 0, fmt.Errorf("userIndex must be non-negative, got %d", user)
	}
	return user, nil
}

// intQueryParam parses a non-negative integer query parameter, returning
// defaultValue when it is absent.
func intQueryParam(r *http.Request, key string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, sanitizeLogValue(raw))
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", key, value)
	}
	return value, nil
}
