// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// minJanitorInterval keeps a tiny TTL from turning the janitor into a busy loop.
const minJanitorInterval = time.Second

// CachePurger removes expired cache entries and reports how many went.
// Satisfied by *recommend.Engine.
type CachePurger interface {
	PurgeExpired() int
}

// CacheJanitorService periodically drops expired predictions so a long-running
// server does not keep rankings for users nobody asks about any more.
type CacheJanitorService struct {
	purger   CachePurger
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheJanitorService sweeps purger every interval, floored at one second.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(purger CachePurger, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval < minJanitorInterval {
		interval = minJanitorInterval
	}
	return &CacheJanitorService{
		purger:   purger,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
	}
}

// Interval returns the sweep period.
func (s *CacheJanitorService) Interval() time.Duration {
	return s.interval
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	if removed := s.purger.PurgeExpired(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired predictions purged")
	}
}

// String names the service in suture events.
func (s *CacheJanitorService) String() string {
	return "cache-janitor"
}
