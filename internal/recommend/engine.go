// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cosinerec/internal/cache"
	"github.com/tomtom215/cosinerec/internal/logging"
	"github.com/tomtom215/cosinerec/internal/metrics"
	"github.com/tomtom215/cosinerec/internal/validation"
)

// Engine serves recommendations for one immutable RatingMatrix.
// It is safe for concurrent use.
type Engine struct {
	config    *Config
	logger    zerolog.Logger
	matrix    RatingMatrix
	algorithm Algorithm

	// cache maps a user to its full ranked prediction list; nil when disabled.
	// Requests for different TopN values of the same user share one entry.
	cache *cache.LRUCache[RecommendationList]

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// EngineStats is a point-in-time snapshot of engine counters.
type EngineStats struct {
	Requests    int64 `json:"requests"`
	Errors      int64 `json:"errors"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheSize   int   `json:"cache_size"`
}

// NewEngine creates a recommendation engine over matrix.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, matrix RatingMatrix, algorithm Algorithm, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if algorithm == nil {
		return nil, errors.New("algorithm is required")
	}
	if err := matrix.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix: %w", err)
	}

	e := &Engine{
		config:    cfg,
		logger:    logger.With().Str("component", "recommend").Logger(),
		matrix:    matrix,
		algorithm: algorithm,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRUCache[RecommendationList](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.logger.Info().
		Str("algorithm", algorithm.Name()).
		Int("users", matrix.Users()).
		Int("items", matrix.Items()).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("recommendation engine ready")

	return e, nil
}

// Recommend returns at most req.TopN predictions for items the user has not rated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(ctx, req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	if err := ctx.Err(); err != nil {
		e.fail(metrics.OutcomeError, start)
		return nil, err
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		e.fail(metrics.OutcomeInvalid, start)
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, verr)
	}

	if !e.matrix.HasUser(req.UserIndex) {
		e.fail(metrics.OutcomeInvalidUser, start)
		logger.Debug().Msg("user index out of range")
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidUserIndex, req.UserIndex, e.matrix.Users())
	}

	ranked, cacheHit, err := e.rankedFor(req.UserIndex)
	if err != nil {
		e.fail(metrics.OutcomeError, start)
		return nil, fmt.Errorf("predict: %w", err)
	}

	resp := e.buildResponse(req, ranked, cacheHit, start)
	metrics.RecordRecommendation(e.algorithm.Name(), metrics.OutcomeSuccess, time.Since(start), len(resp.Recommendations))

	logger.Debug().
		Int("candidates", resp.Metadata.Candidates).
		Int("returned", len(resp.Recommendations)).
		Bool("cache_hit", cacheHit).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// Similarities returns the similarity of user to every user in the matrix.
func (e *Engine) Similarities(ctx context.Context, user int) (SimilarityVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sims, err := e.algorithm.Similarities(e.matrix, user)
	if err != nil {
		return nil, fmt.Errorf("similarities: %w", err)
	}
	return sims, nil
}

// Dimensions returns the number of users and items in the matrix.
func (e *Engine) Dimensions() (users, items int) {
	return e.matrix.Users(), e.matrix.Items()
}

// AlgorithmName returns the name of the wrapped algorithm.
func (e *Engine) AlgorithmName() string {
	return e.algorithm.Name()
}

// Stats returns a snapshot of request and cache counters.
func (e *Engine) Stats() EngineStats {
	stats := EngineStats{
		Requests: e.requestCount.Load(),
		Errors:   e.errorCount.Load(),
	}
	if e.cache != nil {
		stats.CacheHits, stats.CacheMisses, stats.CacheSize = e.cache.Stats()
	}
	return stats
}

// PurgeExpired drops cache entries older than the cache TTL and returns how
// many were removed.
func (e *Engine) PurgeExpired() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.CleanupExpired()
}

// CacheTTL returns the configured cache TTL, or 0 when caching is disabled.
func (e *Engine) CacheTTL() time.Duration {
	if e.cache == nil {
		return 0
	}
	return e.config.Cache.TTL
}

// prepareRequest fills in the request ID from context or generates one.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("user_index", req.UserIndex).
		Int("top_n", req.TopN).
		Logger()
}

// rankedFor returns the complete ranked list for user, from cache when possible.
func (e *Engine) rankedFor(user int) (RecommendationList, bool, error) {
	key := cacheKey(user)
	if e.cache != nil {
		if ranked, ok := e.cache.Get(key); ok {
			metrics.RecordCacheLookup(true)
			return ranked, true, nil
		}
		metrics.RecordCacheLookup(false)
	}

	// Every unrated item fits in a list of Items() entries, so this is the
	// untruncated ranking; truncating it later gives the same prefix as
	// asking the algorithm for fewer.
	ranked, err := e.algorithm.Predict(e.matrix, user, e.matrix.Items())
	if err != nil {
		return nil, false, err
	}

	if e.cache != nil {
		e.cache.Add(key, ranked)
	}
	return ranked, false, nil
}

// buildResponse truncates ranked to req.TopN and fills in metadata.
// The returned list never aliases the cached one.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, ranked RecommendationList, cacheHit bool, start time.Time) *Response {
	n := req.TopN
	if n > len(ranked) {
		n = len(ranked)
	}
	recs := make(RecommendationList, n)
	copy(recs, ranked[:n])

	return &Response{
		Recommendations: recs,
		Metadata: ResponseMetadata{
			RequestID:  req.RequestID,
			UserIndex:  req.UserIndex,
			TopN:       req.TopN,
			Algorithm:  e.algorithm.Name(),
			Users:      e.matrix.Users(),
			Items:      e.matrix.Items(),
			Candidates: len(ranked),
			LatencyMS:  time.Since(start).Milliseconds(),
			CacheHit:   cacheHit,
			Timestamp:  time.Now().UTC(),
		},
	}
}

// fail counts a failed request.
func (e *Engine) fail(outcome string, start time.Time) {
	e.errorCount.Add(1)
	metrics.RecordRecommendation(e.algorithm.Name(), outcome, time.Since(start), 0)
}

// cacheKey generates a cache key for a user.
func cacheKey(user int) string {
	return "rec:" + strconv.Itoa(user)
}
