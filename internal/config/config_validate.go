// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/cosinerec/internal/validation"
)

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateCache checks cache limits only when the cache is enabled.
func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if err := c.RecommendConfig().Validate(); err != nil {
		return fmt.Errorf("CACHE_TTL and CACHE_MAX_ENTRIES must be positive when CACHE_ENABLED=true: %w", err)
	}
	return nil
}

// validateSecurity rejects blank CORS origins and a wildcard mixed with
// explicit origins.
func (c *Config) validateSecurity() error {
	wildcard := false
	for _, origin := range c.Security.CORSOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			return fmt.Errorf("CORS_ORIGINS contains an empty origin")
		}
		if origin == "*" {
			wildcard = true
		}
	}
	if wildcard && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("CORS_ORIGINS: \"*\" cannot be combined with explicit origins")
	}
	return nil
}
