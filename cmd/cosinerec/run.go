// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/cosinerec/internal/api"
	"github.com/tomtom215/cosinerec/internal/config"
	"github.com/tomtom215/cosinerec/internal/logging"
	"github.com/tomtom215/cosinerec/internal/ratings"
	"github.com/tomtom215/cosinerec/internal/recommend"
	"github.com/tomtom215/cosinerec/internal/recommend/algorithms"
	"github.com/tomtom215/cosinerec/internal/report"
	"github.com/tomtom215/cosinerec/internal/supervisor"
	"github.com/tomtom215/cosinerec/internal/supervisor/services"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	cmdRecommend = "recommend"
	cmdServe     = "serve"
)

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	bootstrap := logging.DefaultConfig()
	bootstrap.Output = stderr
	logging.Init(bootstrap)

	command, args := splitCommand(args)
	if command == "" {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Err(err).Msg("failed to load configuration")
		return exitError
	}

	fs := newFlagSet(command, cfg, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	// Flags may have broken what Load validated.
	if err := cfg.Validate(); err != nil {
		logging.Err(err).Msg("invalid configuration")
		return exitError
	}

	logCfg := cfg.LoggingConfig()
	logCfg.Output = stderr
	logging.Init(logCfg)

	switch command {
	case cmdServe:
		err = runServe(ctx, cfg)
	default:
		err = runRecommend(ctx, cfg, stdout)
	}
	if err != nil {
		logging.Err(err).Str("command", command).Msg("command failed")
		return exitError
	}
	return exitOK
}

// splitCommand returns the subcommand and its arguments. Without a
// subcommand, or when args start with a flag, the command is recommend.
// An unknown subcommand yields "".
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return cmdRecommend, args
	}
	switch args[0] {
	case cmdRecommend, cmdServe:
		return args[0], args[1:]
	default:
		return "", args
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cosinerec [recommend] [flags]   print the top-N report for one user")
	fmt.Fprintln(w, "  cosinerec serve [flags]         serve recommendations over HTTP")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cosinerec <command> -h' for the flags of a command.")
}

// newFlagSet binds flags directly to cfg, using the loaded values as defaults
// so that only flags given on the command line override them.
func newFlagSet(command string, cfg *config.Config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("cosinerec "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Ratings.Path, "ratings", cfg.Ratings.Path, "ratings CSV file")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format (json, console)")
	fs.IntVar(&cfg.Request.TopN, "n", cfg.Request.TopN, "number of recommendations")

	switch command {
	case cmdServe:
		fs.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "listen host")
		fs.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "listen port")
		fs.BoolVar(&cfg.Cache.Enabled, "cache", cfg.Cache.Enabled, "cache ranked predictions per user")
	default:
		fs.IntVar(&cfg.Request.TargetUser, "user", cfg.Request.TargetUser, "0-based index of the target user")
		fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "report format (text, json)")
		fs.BoolVar(&cfg.Output.Color, "color", cfg.Output.Color, "color the report header on a terminal")
	}

	return fs
}

// newEngine loads the ratings matrix and builds the engine around it.
func newEngine(cfg *config.Config) (*recommend.Engine, error) {
	m, err := ratings.Load(cfg.Ratings.Path)
	if err != nil {
		return nil, err
	}
	return recommend.NewEngine(cfg.RecommendConfig(), m, algorithms.NewUserBasedCF(), logging.Logger())
}

// runRecommend prints the report for the configured target user.
func runRecommend(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	resp, err := engine.Recommend(ctx, recommend.Request{
		UserIndex: cfg.Request.TargetUser,
		TopN:      cfg.Request.TopN,
	})
	if err != nil {
		return err
	}

	return report.NewWriter(stdout, format, cfg.Output.Color).Write(resp)
}

// runServe serves the HTTP API under the supervisor tree until ctx ends.
func runServe(ctx context.Context, cfg *config.Config) error {
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, cfg.Request.TopN)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	server := api.NewServer(cfg, api.NewRouter(handler, mw).SetupChi())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	logger := logging.Logger()
	if ttl := engine.CacheTTL(); ttl > 0 {
		tree.AddEngineService(services.NewCacheJanitorService(engine, ttl, logger))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	users, items := engine.Dimensions()
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Int("users", users).
		Int("items", items).
		Msg("starting cosinerec server")

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logging.Info().Msg("server stopped")
	return nil
}
