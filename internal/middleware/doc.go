// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

/*
Package middleware provides HTTP middleware for the serve-mode API.

Key Components:

  - Request ID: X-Request-ID propagation into the logging context
  - Prometheus Metrics: per-route request counts, latency and in-flight gauge

Both are plain func(http.Handler) http.Handler values and plug straight into
chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Metrics are labeled by the chi route pattern (for example
"/api/v1/recommendations/user/{userIndex}") rather than the raw path, so user
indices do not create one time series each.
*/
package middleware
