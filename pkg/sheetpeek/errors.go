package sheetpeek

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/archive"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = archive.ErrFileNotFound

// ErrCorruptArchive indicates the input is not a valid zip package, or one
// of its parts is not well-formed XML.
var ErrCorruptArchive = archive.ErrCorruptArchive

// ErrSheetNotFound indicates a requested sheet name is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ExtractionError represents an error while reading one part of a workbook.
type ExtractionError struct {
	Path      string
	Component string // "archive", "shared_strings", "worksheet"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("reading %s of %s: %v", e.Component, filepath.Base(e.Path), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
