// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

/*
Package supervisor runs the long-lived parts of serve mode under suture v4.

# Overview

	RootSupervisor ("cosinerec")
	├── EngineSupervisor ("engine-layer")
	│   └── CacheJanitorService (when the prediction cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in one layer is restarted without touching the other; a stuck
janitor never takes the HTTP server down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddEngineService(services.NewCacheJanitorService(engine, engine.CacheTTL(), logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Failure Handling

suture counts failures with exponential decay (FailureDecay seconds). Past
FailureThreshold the supervisor waits FailureBackoff before the next restart.
Events are logged through sutureslog into the zerolog-backed slog handler.

# Service Interface

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return nil to stop cleanly, an error to be restarted, and return promptly
once ctx is canceled.
*/
package supervisor
