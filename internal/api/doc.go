// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

/*
Package api serves recommendations over HTTP using the chi router.

Endpoints:

	GET /api/v1/health                              engine status and matrix size
	GET /api/v1/recommendations/user/{userIndex}?n= top-N predictions for a user
	GET /api/v1/similarity/user/{userIndex}         similarity of a user to every user
	GET /metrics                                    Prometheus exposition

User indices are 0-based in the URL, as in the library API. Every JSON body
uses the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 0},
	  "error": {"code": "INVALID_USER_INDEX", "message": "..."}
	}

Middleware stack, in order: request ID, real IP, panic recovery, CORS, then
per-IP rate limiting (go-chi/httprate) and Prometheus instrumentation on the
/api/v1 group.
*/
package api
