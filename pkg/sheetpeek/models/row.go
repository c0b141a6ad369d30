// Package models defines data structures for spreadsheet row extraction.
package models

// Row is one worksheet row expanded to a dense sequence of values.
// Index i holds column i (0-based); columns with no cell hold "".
type Row []string

// HasData reports whether any value in the row is non-empty.
func (r Row) HasData() bool {
	for _, v := range r {
		if v != "" {
			return true
		}
	}
	return false
}
