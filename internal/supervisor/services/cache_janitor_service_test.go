// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type mockPurger struct {
	calls   atomic.Int32
	removed int
}

func (m *mockPurger) PurgeExpired() int {
	m.calls.Add(1)
	return m.removed
}

func TestCacheJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheJanitorService)(nil)
}

func TestNewCacheJanitorService_Interval(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{name: "cache ttl", in: 5 * time.Minute, want: 5 * time.Minute},
		{name: "floored", in: 10 * time.Millisecond, want: minJanitorInterval},
		{name: "disabled cache ttl", in: 0, want: minJanitorInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCacheJanitorService(&mockPurger{}, tt.in, zerolog.Nop())
			if svc.Interval() != tt.want {
				t.Errorf("Interval() = %v, want %v", svc.Interval(), tt.want)
			}
		})
	}
}

func TestCacheJanitorService_Serve(t *testing.T) {
	purger := &mockPurger{removed: 2}
	svc := NewCacheJanitorService(purger, time.Minute, zerolog.Nop())
	svc.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for purger.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if purger.calls.Load() < 3 {
		t.Errorf("PurgeExpired calls = %d, want at least 3", purger.calls.Load())
	}
}

func TestCacheJanitorService_SweepLogging(t *testing.T) {
	tests := []struct {
		name    string
		removed int
		wantLog bool
	}{
		{name: "entries removed", removed: 4, wantLog: true},
		{name: "nothing expired", removed: 0, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			svc := NewCacheJanitorService(&mockPurger{removed: tt.removed}, time.Minute, zerolog.New(&buf).Level(zerolog.DebugLevel))

			svc.sweep()

			logged := strings.Contains(buf.String(), "expired predictions purged")
			if logged != tt.wantLog {
				t.Errorf("logged = %v, want %v: %s", logged, tt.wantLog, buf.String())
			}
		})
	}
}

func TestCacheJanitorService_String(t *testing.T) {
	svc := NewCacheJanitorService(&mockPurger{}, time.Minute, zerolog.Nop())
	if svc.String() != "cache-janitor" {
		t.Errorf("String() = %q, want cache-janitor", svc.String())
	}
}
