// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// @title Cosinerec API
// @version 1.0
// @description User-based collaborative filtering over a dense rating matrix.
// @description Similarity between users is the cosine of their rating vectors; a
// @description prediction is the similarity-weighted average of other users' ratings.
// @description
// @description ## Indices
// @description
// @description User and item indices are 0-based.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "INVALID_USER_INDEX", "message": "..."},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z", "query_time_ms": 0}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cosinerec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Service health
//
// @tag.name Recommendations
// @tag.description Rating predictions and user similarity
package main
