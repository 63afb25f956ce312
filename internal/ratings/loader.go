// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package ratings loads a dense user-by-item rating matrix from CSV.
//
// The format is one user per line, comma-separated non-negative integers,
// 0 meaning "unrated". Blank lines are skipped, whitespace around values
// is ignored and one trailing comma per line is tolerated. Every row must
// have the same number of values as the first.
//
//	5,0,3
//	4,0,0
//	0,5,4
//
// Errors are returned as *LoadError; the loader never terminates the process.
package ratings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cosinerec/internal/logging"
	"github.com/tomtom215/cosinerec/internal/metrics"
	"github.com/tomtom215/cosinerec/internal/recommend"
)

// Load reads the ratings matrix stored at path.
func Load(path string) (recommend.RatingMatrix, error) {
	start := time.Now()
	logger := logging.Component("ratings")

	f, err := os.Open(path) //nolint:gosec // path is operator-supplied configuration
	if err != nil {
		return nil, &LoadError{Path: path, Kind: KindOpen, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("path", path).Msg("failed to close ratings file")
		}
	}()

	m, err := Parse(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RecordMatrixLoad(m.Users(), m.Items(), elapsed)
	logger.Debug().
		Str("path", path).
		Int("users", m.Users()).
		Int("items", m.Items()).
		Dur("duration", elapsed).
		Msg("ratings matrix loaded")

	return m, nil
}

// Parse reads a ratings matrix from r.
func Parse(r io.Reader) (recommend.RatingMatrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		matrix recommend.RatingMatrix
		width  int
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		record = trimTrailingEmpty(record)

		row, err := parseRow(record, line, cr)
		if err != nil {
			return nil, err
		}

		if len(matrix) == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &LoadError{
				Line: line,
				Kind: KindInconsistentRows,
				Err:  fmt.Errorf("%w: row %d has %d items, want %d", recommend.ErrRaggedMatrix, len(matrix), len(row), width),
			}
		}
		matrix = append(matrix, row)
	}

	if len(matrix) == 0 {
		return nil, &LoadError{Kind: KindEmpty, Err: recommend.ErrEmptyMatrix}
	}
	return matrix, nil
}

// parseRow converts one CSV record into ratings.
func parseRow(record []string, line int, cr *csv.Reader) ([]int, error) {
	row := make([]int, len(record))
	for i, field := range record {
		value := strings.TrimSpace(field)
		v, err := strconv.Atoi(value)
		if err != nil {
			_, col := cr.FieldPos(i)
			return nil, &LoadError{
				Line:   line,
				Column: col,
				Kind:   KindNonNumeric,
				Err:    fmt.Errorf("value %q: %w", value, err),
			}
		}
		if v < 0 {
			_, col := cr.FieldPos(i)
			return nil, &LoadError{
				Line:   line,
				Column: col,
				Kind:   KindNegative,
				Err:    fmt.Errorf("%w: %d", recommend.ErrNegativeRating, v),
			}
		}
		row[i] = v
	}
	return row, nil
}

// isBlank reports whether a record came from a whitespace-only line.
func isBlank(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// trimTrailingEmpty drops the single empty field a trailing comma leaves
// behind, so "5,0,3," reads as three ratings.
func trimTrailingEmpty(record []string) []string {
	if n := len(record); n > 1 && strings.TrimSpace(record[n-1]) == "" {
		return record[:n-1]
	}
	return record
}

// csvError converts an encoding/csv error into a LoadError.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &LoadError{Line: pe.Line, Column: pe.Column, Kind: KindMalformed, Err: pe.Err}
	}
	return &LoadError{Kind: KindOpen, Err: err}
}
