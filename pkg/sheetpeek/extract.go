package sheetpeek

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/archive"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/parser"
)

// Extract reads the shared strings and worksheet rows of the xlsx file at path.
func Extract(path string, opts Options) (*models.SheetData, error) {
	a, err := archive.Open(path)
	if err != nil {
		return nil, NewExtractionError(path, "archive", err)
	}
	defer a.Close()

	sheet, err := ExtractArchive(a, opts)
	if err != nil {
		return nil, withPath(err, path)
	}
	sheet.BookName = filepath.Base(path)
	return sheet, nil
}

// ExtractBytes is Extract over an xlsx package held in memory.
func ExtractBytes(data []byte, opts Options) (*models.SheetData, error) {
	a, err := archive.FromBytes(data)
	if err != nil {
		return nil, NewExtractionError("", "archive", err)
	}
	return ExtractArchive(a, opts)
}

// ExtractArchive reads from an already open package. A missing shared-string
// part yields an empty table; a missing worksheet part yields no rows.
func ExtractArchive(a *archive.Archive, opts Options) (*models.SheetData, error) {
	sst, err := readSharedStrings(a)
	if err != nil {
		return nil, NewExtractionError("", "shared_strings", err)
	}

	sheetPath, err := sheetPath(a, opts.Sheet)
	if err != nil {
		return nil, NewExtractionError("", "worksheet", err)
	}

	rows := []models.Row{}
	if a.Has(sheetPath) {
		rows, err = readWorksheet(a, sheetPath, sst)
		if err != nil {
			return nil, NewExtractionError("", "worksheet", err)
		}
	} else {
		sheetPath = ""
	}

	return &models.SheetData{
		SheetPath:     sheetPath,
		SharedStrings: sst,
		Rows:          rows,
		Summary:       parser.Summarize(rows),
	}, nil
}

func readSharedStrings(a *archive.Archive) (parser.SharedStrings, error) {
	if !a.Has(archive.SharedStringsPath) {
		return parser.SharedStrings{}, nil
	}

	rc, err := a.OpenEntry(archive.SharedStringsPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sst, err := parser.ParseSharedStrings(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}
	return sst, nil
}

func readWorksheet(a *archive.Archive, name string, sst parser.SharedStrings) ([]models.Row, error) {
	rc, err := a.OpenEntry(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, err := parser.ParseWorksheet(rc, sst)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}
	return rows, nil
}

// sheetPath returns the part to read for the named sheet, or the first
// worksheet part when name is empty.
func sheetPath(a *archive.Archive, name string) (string, error) {
	if name == "" {
		return archive.FirstSheetPath, nil
	}

	refs, err := a.SheetPaths()
	if err != nil {
		return "", err
	}
	for _, ref := range refs {
		if ref.Name == name {
			return ref.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSheetNotFound, name)
}

func withPath(err error, path string) error {
	var ee *ExtractionError
	if errors.As(err, &ee) && ee.Path == "" {
		ee.Path = path
	}
	return err
}
