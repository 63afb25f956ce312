// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id1 := GenerateCorrelationID()
	id2 := GenerateCorrelationID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character correlation ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique correlation IDs")
	}
}

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 {
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestContextIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if CorrelationIDFromContext(ctx) != "" || RequestIDFromContext(ctx) != "" {
		t.Fatal("expected empty IDs on background context")
	}

	ctx = ContextWithCorrelationID(ctx, "corr1234")
	ctx = ContextWithRequestID(ctx, "req-1")

	if got := CorrelationIDFromContext(ctx); got != "corr1234" {
		t.Errorf("CorrelationIDFromContext() = %q, want corr1234", got)
	}
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}

	ctx = ContextWithNewCorrelationID(context.Background())
	if len(CorrelationIDFromContext(ctx)) != 8 {
		t.Errorf("generated correlation ID = %q", CorrelationIDFromContext(ctx))
	}
}

func TestCtx(t *testing.T) {
	tests := []struct {
		name        string
		ctx         func() context.Context
		contains    []string
		notContains []string
	}{
		{
			name:        "no ids",
			ctx:         context.Background,
			notContains: []string{"correlation_id", "request_id"},
		},
		{
			name: "both ids",
			ctx: func() context.Context {
				ctx := ContextWithCorrelationID(context.Background(), "abc12345")
				return ContextWithRequestID(ctx, "req-42")
			},
			contains: []string{`"correlation_id":"abc12345"`, `"request_id":"req-42"`},
		},
		{
			name: "request id only",
			ctx: func() context.Context {
				return ContextWithRequestID(context.Background(), "req-7")
			},
			contains:    []string{`"request_id":"req-7"`},
			notContains: []string{"correlation_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := ContextWithLogger(tt.ctx(), zerolog.New(&buf))

			Ctx(ctx).Info().Msg("hello")

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("expected %s in output: %s", want, output)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(output, unwanted) {
					t.Errorf("unexpected %s in output: %s", unwanted, output)
				}
			}
		})
	}
}

func TestCtxWith(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))
	ctx = ContextWithRequestID(ctx, "req-9")

	logger := CtxWith(ctx).Int("user_index", 3).Logger()
	logger.Info().Msg("extra fields")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-9"`) || !strings.Contains(output, `"user_index":3`) {
		t.Errorf("unexpected output: %s", output)
	}
}

func TestCtxErr(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf))

	CtxErr(ctx, errors.New("failed")).Msg("oops")

	if !strings.Contains(buf.String(), `"error":"failed"`) {
		t.Errorf("expected error field: %s", buf.String())
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	logger := LoggerFromContext(context.Background())
	logger.Info().Msg("global")

	if !strings.Contains(buf.String(), "global") {
		t.Errorf("expected global logger output: %s", buf.String())
	}
}
