// Package archive opens zip-packaged spreadsheet documents and exposes their
// named parts for reading.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Well-known part names inside an xlsx package.
const (
	SharedStringsPath = "xl/sharedStrings.xml"
	FirstSheetPath    = "xl/worksheets/sheet1.xml"
	WorkbookPath      = "xl/workbook.xml"
	WorkbookRelsPath  = "xl/_rels/workbook.xml.rels"
)

// ErrFileNotFound indicates the input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrCorruptArchive indicates the bytes are not a readable zip package.
var ErrCorruptArchive = errors.New("corrupt archive")

// ErrEntryNotFound indicates the package has no part with the requested name.
var ErrEntryNotFound = errors.New("entry not found")

// Archive is a read-only view over the parts of a zip package.
type Archive struct {
	reader  *zip.Reader
	closer  io.Closer
	entries map[string]*zip.File
}

// Open opens the package at path. The caller must Close the returned Archive.
func Open(path string) (*Archive, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, path, err)
	}

	return newArchive(&rc.Reader, rc), nil
}

// NewReader reads a package of the given size from r.
func NewReader(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	return newArchive(zr, nil), nil
}

// FromBytes reads a package held in memory.
func FromBytes(data []byte) (*Archive, error) {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

func newArchive(r *zip.Reader, closer io.Closer) *Archive {
	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		// First occurrence wins for duplicated names.
		if _, ok := entries[f.Name]; !ok {
			entries[f.Name] = f
		}
	}
	return &Archive{reader: r, closer: closer, entries: entries}
}

// Close releases the underlying file, if any. It is safe to call more than once.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// Names returns the part names in sorted order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for name := range a.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the package contains a part named name.
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// OpenEntry opens the named part. The caller must close the returned reader.
func (a *Archive) OpenEntry(name string) (io.ReadCloser, error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, name, err)
	}
	return rc, nil
}

// ReadEntry returns the full content of the named part.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	rc, err := a.OpenEntry(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, name, err)
	}
	return data, nil
}
