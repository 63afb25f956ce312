// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package recommend implements user-based collaborative filtering over a
// dense ratings matrix.
//
// # Architecture
//
// The package defines the data model (RatingMatrix, Recommendation, Request,
// Response) and the Algorithm interface. The cosine-similarity predictor lives
// in the algorithms subpackage; the Engine wraps an Algorithm with request
// validation, a TTL cache, structured logging and Prometheus metrics.
//
// # Design Principles
//
//   - Deterministic: equal scores are ordered by ascending item index
//   - Immutable: the matrix is never modified after loading
//   - Observable: every request is counted and timed
//   - Traceable: request IDs propagate through context
//
// # Usage
//
//	matrix, err := ratings.Load("ratings.csv")
//	if err != nil {
//	    return err
//	}
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), matrix,
//	    algorithms.NewUserBasedCF(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, recommend.Request{UserIndex: 0, TopN: 5})
//
// # Thread Safety
//
// The Engine is safe for concurrent use. The matrix is read-only and the
// cache is internally synchronized, so independent requests never block
// each other on the prediction itself.
package recommend
