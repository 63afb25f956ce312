// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package algorithms

import "math"

// CosineSimilarity computes cosine similarity between two rating vectors.
// Returns 0 if either vector has zero norm or the lengths differ.
func CosineSimilarity(a, b []int) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dotProduct += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dotProduct / math.Sqrt(normA*normB)

	// Rounding can push identical vectors a hair past 1.
	if sim > 1 {
		return 1
	}
	return sim
}
