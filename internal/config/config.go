// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package config loads Cosinerec configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	logging.Init(cfg.LoggingConfig())
//
// Command-line flags are applied by the binary on top of the loaded values,
// after which Validate must be called again.
//
// # Environment Variables
//
//	RATINGS_PATH          ratings.path
//	TARGET_USER           request.target_user
//	TOP_N                 request.top_n
//	OUTPUT_FORMAT         output.format
//	OUTPUT_COLOR          output.color
//	HTTP_HOST             server.host
//	HTTP_PORT             server.port
//	HTTP_TIMEOUT          server.timeout
//	SHUTDOWN_TIMEOUT      server.shutdown_timeout
//	RATE_LIMIT_REQUESTS   security.rate_limit_reqs
//	RATE_LIMIT_WINDOW     security.rate_limit_window
//	DISABLE_RATE_LIMIT    security.rate_limit_disabled
//	CORS_ORIGINS          security.cors_origins (comma-separated)
//	CACHE_ENABLED         cache.enabled
//	CACHE_TTL             cache.ttl
//	CACHE_MAX_ENTRIES     cache.max_entries
//	LOG_LEVEL             logging.level
//	LOG_FORMAT            logging.format
//	LOG_CALLER            logging.caller
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/tomtom215/cosinerec/internal/logging"
	"github.com/tomtom215/cosinerec/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Ratings  RatingsConfig  `koanf:"ratings"`
	Request  RequestConfig  `koanf:"request"`
	Output   OutputConfig   `koanf:"output"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// RatingsConfig locates the ratings matrix.
type RatingsConfig struct {
	// Path is the CSV file to load.
	// Default: ratings.csv
	Path string `koanf:"path" validate:"required"`
}

// RequestConfig holds the defaults of a recommendation request.
type RequestConfig struct {
	// TargetUser is the 0-based user index used by the recommend command.
	TargetUser int `koanf:"target_user" validate:"min=0"`

	// TopN is the number of recommendations to return.
	// Default: 5
	TopN int `koanf:"top_n" validate:"min=0"`
}

// OutputConfig controls the recommend command's report.
type OutputConfig struct {
	// Format is text or json.
	Format string `koanf:"format" validate:"oneof=text json"`

	// Color styles the text report header when stdout is a terminal.
	Color bool `koanf:"color"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds HTTP rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CacheConfig controls the per-user prediction cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"loglevel"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. These are applied
// first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Ratings: RatingsConfig{
			Path: "ratings.csv",
		},
		Request: RequestConfig{
			TargetUser: 0,
			TopN:       5,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoggingConfig converts the logging section into a logging.Config.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		Caller:    c.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// RecommendConfig converts the cache section into an engine configuration.
func (c *Config) RecommendConfig() *recommend.Config {
	return &recommend.Config{
		Cache: recommend.CacheConfig{
			Enabled:    c.Cache.Enabled,
			TTL:        c.Cache.TTL,
			MaxEntries: c.Cache.MaxEntries,
		},
	}
}
