// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package algorithms implements rating predictors for the recommendation engine.
//
// # Similarity
//
// CosineSimilarity compares two rating rows:
//
//	sim(a, b) = (a . b) / (|a| * |b|)
//
// A row without ratings has zero norm and gets a similarity of 0 with every
// other row, so it contributes no signal.
//
// # User-Based Collaborative Filtering
//
// For a target user u and an item i that u has not rated:
//
//	score(u, i) = sum_{v != u, r(v,i) > 0} sim(u, v) * r(v, i) / sum_{v != u, r(v,i) > 0} |sim(u, v)|
//
// Items whose denominator is 0 have no signal and are left out of the
// result. The remaining predictions are sorted by score descending, ties by
// ascending item index, and truncated to the requested length.
//
// # Usage
//
//	cf := algorithms.NewUserBasedCF()
//	recs, err := cf.Predict(matrix, 0, 5)
//	if errors.Is(err, recommend.ErrInvalidUserIndex) {
//	    // report to the caller
//	}
//
// # Thread Safety
//
// UserBasedCF holds no mutable state. Concurrent calls over the same
// read-only matrix are safe.
package algorithms
