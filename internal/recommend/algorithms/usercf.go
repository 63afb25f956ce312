// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package algorithms

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/cosinerec/internal/recommend"
)

// UserBasedCF implements user-based collaborative filtering with cosine similarity.
// It recommends items that similar users have rated.
//
// For a target user u and unrated item i:
// score(u, i) = sum_{v} sim(u, v) * r(v, i) / sum_{v} |sim(u, v)|
//
// where v ranges over every other user who rated i.
type UserBasedCF struct {
	name string
}

// NewUserBasedCF creates a new user-based CF algorithm.
func NewUserBasedCF() *UserBasedCF {
	return &UserBasedCF{name: "usercf"}
}

// Name returns the algorithm identifier.
func (u *UserBasedCF) Name() string {
	return u.name
}

// Similarities computes the cosine similarity between user and every other user.
// The entry for user itself is left at 0. A matrix that fails
// RatingMatrix.Validate is rejected with its validation error.
func (u *UserBasedCF) Similarities(m recommend.RatingMatrix, user int) (recommend.SimilarityVector, error) {
	if !m.HasUser(user) {
		return nil, invalidUser(m, user)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	target := m.Row(user)
	similarities := make(recommend.SimilarityVector, m.Users())
	for other := range m {
		if other == user {
			continue
		}
		similarities[other] = CosineSimilarity(target, m.Row(other))
	}

	return similarities, nil
}

// Predict returns the topN highest predicted ratings for items user has not rated.
//
// Items no neighbor has rated, or whose contributing similarities are all
// zero, receive no prediction. A topN of zero or less yields an empty list.
func (u *UserBasedCF) Predict(m recommend.RatingMatrix, user, topN int) (recommend.RecommendationList, error) {
	similarities, err := u.Similarities(m, user)
	if err != nil {
		return nil, err
	}

	recs := predictUnrated(m, user, similarities)

	// Emission order is ascending item index, so a stable sort keeps ties in that order.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return truncate(recs, topN), nil
}

// predictUnrated computes the similarity-weighted average for every unrated item
// that has signal.
func predictUnrated(m recommend.RatingMatrix, user int, similarities recommend.SimilarityVector) recommend.RecommendationList {
	target := m.Row(user)
	recs := make(recommend.RecommendationList, 0, len(target))

	for item, own := range target {
		if own != 0 {
			continue
		}

		var weightedSum, similaritySum float64
		for other := range m {
			if other == user {
				continue
			}
			rating := m[other][item]
			if rating <= 0 {
				continue
			}
			weightedSum += similarities[other] * float64(rating)
			similaritySum += math.Abs(similarities[other])
		}

		if similaritySum > 0 {
			recs = append(recs, recommend.Recommendation{
				Item:  item,
				Score: weightedSum / similaritySum,
			})
		}
	}

	return recs
}

// truncate keeps at most n entries.
func truncate(recs recommend.RecommendationList, n int) recommend.RecommendationList {
	if n <= 0 {
		return recommend.RecommendationList{}
	}
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}

func invalidUser(m recommend.RatingMatrix, user int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", recommend.ErrInvalidUserIndex, user, m.Users())
}

// Ensure interface compliance.
var _ recommend.Algorithm = (*UserBasedCF)(nil)
