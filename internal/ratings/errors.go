// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

package ratings

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a LoadError.
type ErrorKind string

const (
	// KindOpen means the file could not be opened or read.
	KindOpen ErrorKind = "open"

	// KindMalformed means the input is not valid CSV (e.g. a stray quote).
	KindMalformed ErrorKind = "malformed"

	// KindNonNumeric means a field is not a base-10 integer.
	KindNonNumeric ErrorKind = "non_numeric"

	// KindNegative means a field is a negative integer.
	KindNegative ErrorKind = "negative"

	// KindInconsistentRows means a row's length differs from the first row.
	KindInconsistentRows ErrorKind = "inconsistent_rows"

	// KindEmpty means the input contained no rows.
	KindEmpty ErrorKind = "empty"
)

// LoadError describes why a ratings file could not be loaded.
// Line and Column are 1-based; zero means "not applicable".
type LoadError struct {
	Path   string
	Line   int
	Column int
	Kind   ErrorKind
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
	} else {
		b.WriteString("ratings")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ":%d", e.Column)
		}
	}
	fmt.Fprintf(&b, ": %s", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error so errors.Is can match the
// recommend package sentinels and os errors.
func (e *LoadError) Unwrap() error {
	return e.Err
}
