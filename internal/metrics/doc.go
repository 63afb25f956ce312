// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto, so
the HTTP server exposes them with promhttp.Handler at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - recommend_requests_total: Requests by algorithm and outcome (counter)
  - recommend_duration_seconds: Request latency (histogram)
  - recommend_list_length: Returned list length (histogram)
  - recommend_empty_results_total: Requests with no recommendation (counter)
  - recommend_cache_hits_total / recommend_cache_misses_total (counters)

Ratings Matrix Metrics:
  - ratings_matrix_users, ratings_matrix_items (gauges)
  - ratings_matrix_load_duration_seconds (histogram)

API Metrics:
  - api_requests_total: Labels method, endpoint, status_code (counter)
  - api_request_duration_seconds: Labels method, endpoint (histogram)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total: Label endpoint (counter)
*/
package metrics
