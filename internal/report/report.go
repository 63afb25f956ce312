// Cosinerec - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cosinerec

// Package report renders recommendation responses for the command line.
//
// The text format numbers users and items from 1:
//
//	Top 5 recommended movies for User 1:
//	Movie 2 with predicted rating 5.00
//
// The json format writes the full recommend.Response, metadata included.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cosinerec/internal/recommend"
)

// Format selects the report layout.
type Format string

const (
	// FormatText is the human-readable listing.
	FormatText Format = "text"

	// FormatJSON is the indented JSON encoding of the response.
	FormatJSON Format = "json"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Writer renders responses to an output stream.
type Writer struct {
	out    io.Writer
	format Format

	// header is nil when output is not styled.
	header *lipgloss.Style
}

// NewWriter returns a Writer for format. When styled is true the text header
// is colored; lipgloss drops the color when out is not a terminal.
func NewWriter(out io.Writer, format Format, styled bool) *Writer {
	w := &Writer{out: out, format: format}
	if styled {
		style := lipgloss.NewRenderer(out).NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
		w.header = &style
	}
	return w
}

// Write renders resp.
func (w *Writer) Write(resp *recommend.Response) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(resp)
	case FormatText, "":
		return w.writeText(resp)
	default:
		return fmt.Errorf("unknown output format %q", w.format)
	}
}

func (w *Writer) writeText(resp *recommend.Response) error {
	header := fmt.Sprintf("Top %d recommended movies for User %d:",
		resp.Metadata.TopN, resp.Metadata.UserIndex+1)
	if w.header != nil {
		header = w.header.Render(header)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, rec := range resp.Recommendations {
		fmt.Fprintf(&b, "Movie %d with predicted rating %.2f\n", rec.ItemNumber(), rec.Score)
	}

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (w *Writer) writeJSON(resp *recommend.Response) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
