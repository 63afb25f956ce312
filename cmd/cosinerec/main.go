// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package main is the entry point of the cosinerec binary.
//
// Cosinerec predicts how a user would rate the movies they have not rated yet
// from the ratings of similar users (cosine similarity, user-based
// collaborative filtering) and reports the best candidates.
//
// # Commands
//
//	cosinerec [recommend] [flags]   print the top-N report for one user (default)
//	cosinerec serve [flags]         serve recommendations over HTTP
//
// # Configuration
//
// Settings are layered, highest priority last:
//   - Built-in defaults
//   - Config file (CONFIG_PATH, cosinerec.yaml, config.yaml, /etc/cosinerec/config.yaml)
//   - Environment variables (RATINGS_PATH, TARGET_USER, TOP_N, HTTP_PORT, ...)
//   - Command-line flags
//
// # Example Usage
//
//	cosinerec -ratings ratings.csv -user 0 -n 5
//	Top 5 recommended movies for User 1:
//	Movie 2 with predicted rating 5.00
//
//	RATINGS_PATH=/data/ratings.csv HTTP_PORT=9000 cosinerec serve
//	curl localhost:9000/api/v1/recommendations/user/0?n=3
//
// Users and movies are 0-based on the command line and in the API, and
// 1-based in the text report.
//
// # Exit Codes
//
//	0  success
//	1  configuration, load or recommendation error
//	2  invalid command line
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/cosinerec/docs" // Import generated swagger docs
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
