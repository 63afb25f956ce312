// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package recommend

import (
	"fmt"
	"time"
)

// RatingMatrix is a dense user-by-item rating table.
// Rows are users, columns are items. A value of 0 means "unrated".
//
// A RatingMatrix built with NewRatingMatrix owns its rows and must be
// treated as read-only afterwards.
type RatingMatrix [][]int

// NewRatingMatrix copies rows into a new RatingMatrix and validates it.
func NewRatingMatrix(rows [][]int) (RatingMatrix, error) {
	m := make(RatingMatrix, len(rows))
	for i, row := range rows {
		m[i] = append([]int(nil), row...)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Users returns the number of rows.
func (m RatingMatrix) Users() int {
	return len(m)
}

// Items returns the number of columns.
func (m RatingMatrix) Items() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Row returns the rating vector of a user. The slice must not be modified.
func (m RatingMatrix) Row(user int) []int {
	return m[user]
}

// HasUser reports whether user is a legal row index.
func (m RatingMatrix) HasUser(user int) bool {
	return user >= 0 && user < len(m)
}

// Validate checks that the matrix is non-empty, rectangular and non-negative.
func (m RatingMatrix) Validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}

	width := len(m[0])
	for i, row := range m {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d items, want %d", ErrRaggedMatrix, i, len(row), width)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: user %d item %d has rating %d", ErrNegativeRating, i, j, v)
			}
		}
	}
	return nil
}

// SimilarityVector holds one similarity per user, aligned with RatingMatrix rows.
// The entry of the target user itself is always 0.
type SimilarityVector []float64

// Recommendation is a predicted rating for an item the user has not rated.
type Recommendation struct {
	// Item is the 0-based column index in the RatingMatrix.
	Item int `json:"item_index"`

	// Score is the similarity-weighted average rating.
	Score float64 `json:"predicted_score"`
}

// ItemNumber returns the 1-based item number used when reporting to humans.
func (r Recommendation) ItemNumber() int {
	return r.Item + 1
}

// RecommendationList is sorted by Score descending, ties by ascending Item.
type RecommendationList []Recommendation

// Items returns the item indices in ranked order.
func (l RecommendationList) Items() []int {
	items := make([]int, len(l))
	for i, r := range l {
		items[i] = r.Item
	}
	return items
}

// Request represents a recommendation request.
type Request struct {
	// UserIndex is the 0-based row of the target user.
	UserIndex int `json:"user_index" validate:"min=0"`

	// TopN is the maximum number of recommendations to return.
	TopN int `json:"top_n" validate:"min=0"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Recommendations is the ranked, truncated list.
	Recommendations RecommendationList `json:"recommendations"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// UserIndex is the user the recommendations are for.
	UserIndex int `json:"user_index"`

	// TopN is the requested list length.
	TopN int `json:"top_n"`

	// Algorithm is the name of the algorithm that produced the list.
	Algorithm string `json:"algorithm"`

	// Users and Items are the matrix dimensions.
	Users int `json:"users"`
	Items int `json:"items"`

	// Candidates is the number of unrated items with a prediction,
	// before truncation to TopN.
	Candidates int `json:"candidates"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates whether the result was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Algorithm is a rating predictor over a RatingMatrix.
// Implementations must be pure: the same inputs always give the same output
// and the matrix is never modified.
type Algorithm interface {
	// Name returns the algorithm identifier (e.g., "usercf").
	Name() string

	// Similarities returns the similarity of user to every row of m.
	Similarities(m RatingMatrix, user int) (SimilarityVector, error)

	// Predict returns at most topN predictions for items user has not rated.
	Predict(m RatingMatrix, user, topN int) (RecommendationList, error)
}
