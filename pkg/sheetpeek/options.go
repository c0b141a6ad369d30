// Package sheetpeek extracts the shared-string table and worksheet rows of
// xlsx files as plain text values.
package sheetpeek

// Options configures extraction behavior.
type Options struct {
	// Sheet selects a worksheet by name. If empty, the first worksheet part
	// (xl/worksheets/sheet1.xml) is read.
	Sheet string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}
