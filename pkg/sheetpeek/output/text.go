// Package output renders extraction results for display.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// TextOptions controls which rows are printed.
type TextOptions struct {
	// Limit is the number of leading rows considered; zero or less means all.
	Limit int
	// SkipEmpty omits rows with no non-empty value.
	SkipEmpty bool
}

// DefaultTextOptions returns the inspection defaults: the first 60 rows,
// blank rows skipped.
func DefaultTextOptions() TextOptions {
	return TextOptions{Limit: 60, SkipEmpty: true}
}

// WriteText writes a header per file followed by its rows, or an error line
// for files that could not be read.
func WriteText(w io.Writer, results []models.FileResult, opts TextOptions) error {
	for _, r := range results {
		if err := writeResult(w, r, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(w io.Writer, r models.FileResult, opts TextOptions) error {
	if _, err := fmt.Fprintf(w, "\n=== Extracting: %s ===\n", filepath.Base(r.Path)); err != nil {
		return err
	}
	if !r.OK() {
		_, err := fmt.Fprintf(w, "Error reading %s: %v\n", r.Path, r.Err)
		return err
	}

	s := r.Sheet.Summary
	if _, err := fmt.Fprintf(w, "Rows: %d, Columns: %d, Non-empty cells: %d\n",
		s.Rows, s.Columns, s.NonEmptyCells); err != nil {
		return err
	}
	if s.Range != "" {
		if _, err := fmt.Fprintf(w, "Range: %s\n", s.Range); err != nil {
			return err
		}
	}

	for _, ir := range Visible(r.Sheet.Rows, opts) {
		if _, err := fmt.Fprintf(w, "Row %d: %s\n", ir.Index, FormatRow(ir.Row)); err != nil {
			return err
		}
	}
	return nil
}

// IndexedRow is a row together with its position in the worksheet.
type IndexedRow struct {
	Index int
	Row   models.Row
}

// Visible returns the rows WriteText prints, in order.
func Visible(rows []models.Row, opts TextOptions) []IndexedRow {
	n := len(rows)
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}

	var visible []IndexedRow
	for i := 0; i < n; i++ {
		if opts.SkipEmpty && !rows[i].HasData() {
			continue
		}
		visible = append(visible, IndexedRow{Index: i, Row: rows[i]})
	}
	return visible
}

// FormatRow renders a row as a bracketed list of quoted values.
func FormatRow(row models.Row) string {
	quoted := make([]string, len(row))
	for i, v := range row {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
