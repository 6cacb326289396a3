// Copyright (c) 2026 FFI-Example Team
// FFI-Example - native integer routines over the C ABI
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
)

// Renderer writes batches of records in a fixed format.
type Renderer struct {
	Format Format
	Color  bool
}

// NewRenderer returns a Renderer for format, deciding colour for w.
func NewRenderer(format Format, color ColorMode, w io.Writer) *Renderer {
	return &Renderer{Format: format, Color: color.Enabled(w)}
}

// Render writes records to w. A single record is written as an object,
// several as a list.
func (r *Renderer) Render(w io.Writer, records []Record) error {
	switch r.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload(records))
	case FormatYAML:
		data, err := yaml.Marshal(payload(records))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return r.renderText(w, records)
	}
}

func (r *Renderer) renderText(w io.Writer, records []Record) error {
	var positive, negative lipgloss.Style
	if r.Color {
		// Forced profile: w need not be a terminal in "always" mode.
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.ANSI)
		positive = lr.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
		negative = lr.NewStyle().Foreground(lipgloss.Color("1"))
	}
	for _, rec := range records {
		line := rec.Text()
		if r.Color {
			if rec.Verdict() {
				line = positive.Render(line)
			} else {
				line = negative.Render(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func payload(records []Record) any {
	if len(records) == 1 {
		return records[0]
	}
	if records == nil {
		return []Record{}
	}
	return records
}
