// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package services adapts serve-mode components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - CacheJanitorService: periodic removal of expired cached predictions
//
// Each wrapper depends on a small interface rather than the concrete type,
// so tests drive them with mocks.
package services
