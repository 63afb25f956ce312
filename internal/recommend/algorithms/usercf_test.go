// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package algorithms

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/cosinerec/internal/recommend"
)

func TestNewUserBasedCF(t *testing.T) {
	t.Parallel()

	u := NewUserBasedCF()
	if u == nil {
		t.Fatal("NewUserBasedCF() returned nil")
	}
	if u.Name() != "usercf" {
		t.Errorf("Name() = %q, want %q", u.Name(), "usercf")
	}
}

func TestUserBasedCF_Similarities(t *testing.T) {
	t.Parallel()

	m := recommend.RatingMatrix{
		{5, 0, 3},
		{4, 0, 0},
		{0, 5, 4},
		{0, 0, 0},
	}

	u := NewUserBasedCF()
	sims, err := u.Similarities(m, 0)
	if err != nil {
		t.Fatalf("Similarities() error = %v", err)
	}

	want := recommend.SimilarityVector{
		0,
		20 / (math.Sqrt(34) * 4),
		12 / (math.Sqrt(34) * math.Sqrt(41)),
		0,
	}
	if len(sims) != len(want) {
		t.Fatalf("len(Similarities()) = %d, want %d", len(sims), len(want))
	}
	for i := range want {
		if math.Abs(sims[i]-want[i]) > epsilon {
			t.Errorf("sims[%d] = %v, want %v", i, sims[i], want[i])
		}
	}

	// An all-zero user is similar to nobody.
	zero, err := u.Similarities(m, 3)
	if err != nil {
		t.Fatalf("Similarities() error = %v", err)
	}
	for i, s := range zero {
		if s != 0 {
			t.Errorf("zero user sims[%d] = %v, want 0", i, s)
		}
	}
}

func TestUserBasedCF_InvalidUser(t *testing.T) {
	t.Parallel()

	m := recommend.RatingMatrix{{1, 0}, {0, 1}}
	u := NewUserBasedCF()

	for _, user := range []int{-1, 2, 100} {
		if _, err := u.Predict(m, user, 5); !errors.Is(err, recommend.ErrInvalidUserIndex) {
			t.Errorf("Predict(user=%d) error = %v, want ErrInvalidUserIndex", user, err)
		}
		if _, err := u.Similarities(m, user); !errors.Is(err, recommend.ErrInvalidUserIndex) {
			t.Errorf("Similarities(user=%d) error = %v, want ErrInvalidUserIndex", user, err)
		}
	}
}

func TestUserBasedCF_InvalidMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		matrix recommend.RatingMatrix
		wantIs error
	}{
		{name: "short later row", matrix: recommend.RatingMatrix{{5, 0, 0}, {4}}, wantIs: recommend.ErrRaggedMatrix},
		{name: "long later row", matrix: recommend.RatingMatrix{{5, 0}, {4, 1, 2}}, wantIs: recommend.ErrRaggedMatrix},
		{name: "negative rating", matrix: recommend.RatingMatrix{{5, 0}, {-1, 2}}, wantIs: recommend.ErrNegativeRating},
	}

	u := NewUserBasedCF()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := u.Predict(tt.matrix, 0, 3); !errors.Is(err, tt.wantIs) {
				t.Errorf("Predict() error = %v, want %v", err, tt.wantIs)
			}
			if _, err := u.Similarities(tt.matrix, 0); !errors.Is(err, tt.wantIs) {
				t.Errorf("Similarities() error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestUserBasedCF_Predict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		matrix    recommend.RatingMatrix
		user      int
		topN      int
		wantItems []int
		wantScore map[int]float64
	}{
		{
			name: "single unrated item gets neighbour rating",
			matrix: recommend.RatingMatrix{
				{5, 0, 3},
				{4, 0, 0},
				{0, 5, 4},
			},
			user:      0,
			topN:      2,
			wantItems: []int{1},
			wantScore: map[int]float64{1: 5.0},
		},
		{
			name: "no neighbour rated the unrated item",
			matrix: recommend.RatingMatrix{
				{5, 0},
				{3, 0},
			},
			user:      0,
			topN:      10,
			wantItems: []int{},
		},
		{
			name: "user without ratings has no signal",
			matrix: recommend.RatingMatrix{
				{0, 0},
				{4, 5},
			},
			user:      0,
			topN:      10,
			wantItems: []int{},
		},
		{
			name: "zero topN returns empty list",
			matrix: recommend.RatingMatrix{
				{5, 0, 3},
				{4, 0, 0},
				{0, 5, 4},
			},
			user:      0,
			topN:      0,
			wantItems: []int{},
		},
		{
			name: "negative topN returns empty list",
			matrix: recommend.RatingMatrix{
				{5, 0, 3},
				{4, 2, 0},
			},
			user:      0,
			topN:      -3,
			wantItems: []int{},
		},
		{
			name: "ranks by score and omits items without signal",
			matrix: recommend.RatingMatrix{
				{5, 0, 0, 0},
				{5, 4, 2, 0},
				{1, 1, 5, 0},
			},
			user:      0,
			topN:      10,
			wantItems: []int{1, 2},
		},
		{
			name: "truncates to topN",
			matrix: recommend.RatingMatrix{
				{5, 0, 0, 0},
				{5, 4, 2, 0},
				{1, 1, 5, 0},
			},
			user:      0,
			topN:      1,
			wantItems: []int{1},
		},
		{
			name: "equal scores ordered by item index",
			matrix: recommend.RatingMatrix{
				{5, 0, 0},
				{4, 3, 3},
			},
			user:      0,
			topN:      5,
			wantItems: []int{1, 2},
			wantScore: map[int]float64{1: 3.0, 2: 3.0},
		},
		{
			name: "fully rated user gets nothing",
			matrix: recommend.RatingMatrix{
				{1, 2},
				{2, 1},
			},
			user:      1,
			topN:      5,
			wantItems: []int{},
		},
		{
			name: "single user matrix",
			matrix: recommend.RatingMatrix{
				{0, 4, 0},
			},
			user:      0,
			topN:      3,
			wantItems: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := NewUserBasedCF()
			got, err := u.Predict(tt.matrix, tt.user, tt.topN)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if got == nil {
				t.Fatal("Predict() returned nil list")
			}

			if items := got.Items(); !reflect.DeepEqual(items, tt.wantItems) {
				t.Errorf("Predict() items = %v, want %v", items, tt.wantItems)
			}

			for _, rec := range got {
				want, ok := tt.wantScore[rec.Item]
				if !ok {
					continue
				}
				if math.Abs(rec.Score-want) > epsilon {
					t.Errorf("score for item %d = %v, want %v", rec.Item, rec.Score, want)
				}
			}
		})
	}
}

func TestUserBasedCF_PredictInvariants(t *testing.T) {
	t.Parallel()

	m := recommend.RatingMatrix{
		{5, 3, 0, 1, 0, 0, 2},
		{4, 0, 0, 1, 3, 0, 0},
		{1, 1, 0, 5, 0, 4, 0},
		{1, 0, 0, 4, 4, 0, 5},
		{0, 1, 5, 4, 0, 2, 0},
		{0, 0, 0, 0, 0, 0, 0},
	}
	u := NewUserBasedCF()

	for user := range m {
		for _, topN := range []int{0, 1, 2, 3, 10} {
			got, err := u.Predict(m, user, topN)
			if err != nil {
				t.Fatalf("Predict(%d, %d) error = %v", user, topN, err)
			}

			if len(got) > topN {
				t.Errorf("Predict(%d, %d) returned %d entries", user, topN, len(got))
			}

			seen := make(map[int]struct{}, len(got))
			for i, rec := range got {
				if m[user][rec.Item] > 0 {
					t.Errorf("user %d already rated item %d", user, rec.Item)
				}
				if _, dup := seen[rec.Item]; dup {
					t.Errorf("duplicate item %d for user %d", rec.Item, user)
				}
				seen[rec.Item] = struct{}{}

				if i > 0 && got[i-1].Score < rec.Score {
					t.Errorf("user %d: list not sorted at %d: %v < %v", user, i, got[i-1].Score, rec.Score)
				}
			}

			again, err := u.Predict(m, user, topN)
			if err != nil {
				t.Fatalf("second Predict() error = %v", err)
			}
			if !reflect.DeepEqual(got, again) {
				t.Errorf("Predict(%d, %d) not idempotent: %v vs %v", user, topN, got, again)
			}
		}
	}

	// The all-zero user gets nothing regardless of topN.
	if got, _ := u.Predict(m, 5, 100); len(got) != 0 {
		t.Errorf("zero user got %v, want empty", got)
	}
}

func TestUserBasedCF_DoesNotMutateMatrix(t *testing.T) {
	t.Parallel()

	m := recommend.RatingMatrix{
		{5, 0, 3},
		{4, 0, 0},
		{0, 5, 4},
	}
	before := recommend.RatingMatrix{
		{5, 0, 3},
		{4, 0, 0},
		{0, 5, 4},
	}

	if _, err := NewUserBasedCF().Predict(m, 0, 3); err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if !reflect.DeepEqual(m, before) {
		t.Errorf("matrix modified: %v", m)
	}
}

func BenchmarkUserBasedCF_Predict(b *testing.B) {
	const users, items = 200, 500
	m := make(recommend.RatingMatrix, users)
	for i := range m {
		m[i] = make([]int, items)
		for j := range m[i] {
			if (i*31+j*17)%4 == 0 {
				m[i][j] = 1 + (i+j)%5
			}
		}
	}
	u := NewUserBasedCF()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = u.Predict(m, i%users, 10)
	}
}
