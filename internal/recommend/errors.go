// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package recommend

import "errors"

var (
	// ErrInvalidUserIndex is returned when the target user is not a row of the matrix.
	ErrInvalidUserIndex = errors.New("invalid user index")

	// ErrEmptyMatrix is returned for a matrix without rows or columns.
	ErrEmptyMatrix = errors.New("ratings matrix is empty")

	// ErrRaggedMatrix is returned when rows differ in length.
	ErrRaggedMatrix = errors.New("inconsistent row lengths")

	// ErrInvalidRequest is returned when a Request fails validation.
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrNegativeRating is returned when a rating is below zero.
	ErrNegativeRating = errors.New("negative rating")
)
