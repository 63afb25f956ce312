// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package recommend

import (
	"errors"
	"testing"
)

func TestNewRatingMatrix(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{name: "valid", rows: [][]int{{5, 0, 3}, {4, 0, 0}}},
		{name: "single cell", rows: [][]int{{0}}},
		{name: "nil", rows: nil, wantErr: ErrEmptyMatrix},
		{name: "no columns", rows: [][]int{{}}, wantErr: ErrEmptyMatrix},
		{name: "ragged", rows: [][]int{{1, 2, 3}, {1, 2}}, wantErr: ErrRaggedMatrix},
		{name: "negative", rows: [][]int{{1, -2}}, wantErr: ErrNegativeRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewRatingMatrix(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewRatingMatrix() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRatingMatrix() error = %v", err)
			}
			if m.Users() != len(tt.rows) || m.Items() != len(tt.rows[0]) {
				t.Errorf("dimensions = %dx%d", m.Users(), m.Items())
			}
		})
	}
}

func TestNewRatingMatrix_Copies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m, err := NewRatingMatrix(rows)
	if err != nil {
		t.Fatalf("NewRatingMatrix() error = %v", err)
	}

	rows[0][0] = 99
	if m.Row(0)[0] != 1 {
		t.Errorf("matrix changed after caller modified input: %v", m.Row(0))
	}
}

func TestRatingMatrix_HasUser(t *testing.T) {
	m := RatingMatrix{{1}, {2}}
	for _, tt := range []struct {
		user int
		want bool
	}{{-1, false}, {0, true}, {1, true}, {2, false}} {
		if got := m.HasUser(tt.user); got != tt.want {
			t.Errorf("HasUser(%d) = %v, want %v", tt.user, got, tt.want)
		}
	}
}

func TestRatingMatrix_EmptyDimensions(t *testing.T) {
	var m RatingMatrix
	if m.Users() != 0 || m.Items() != 0 {
		t.Errorf("empty matrix dimensions = %dx%d, want 0x0", m.Users(), m.Items())
	}
}

func TestRecommendation_ItemNumber(t *testing.T) {
	r := Recommendation{Item: 0, Score: 4.5}
	if r.ItemNumber() != 1 {
		t.Errorf("ItemNumber() = %d, want 1", r.ItemNumber())
	}
}

func TestRecommendationList_Items(t *testing.T) {
	l := RecommendationList{{Item: 4, Score: 3}, {Item: 2, Score: 1}}
	got := l.Items()
	if len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("Items() = %v, want [4 2]", got)
	}

	if got := (RecommendationList{}).Items(); len(got) != 0 {
		t.Errorf("empty Items() = %v", got)
	}
}
