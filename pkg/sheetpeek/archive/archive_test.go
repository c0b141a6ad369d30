package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestOpenNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a zip"), 0644))

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptArchive)
}

func TestFromBytesNotAZip(t *testing.T) {
	_, err := FromBytes([]byte("PK? no"))
	assert.ErrorIs(t, err, ErrCorruptArchive)
}

func TestEntries(t *testing.T) {
	a, err := FromBytes(buildZip(t, map[string]string{
		"xl/worksheets/sheet1.xml": "<worksheet/>",
		"[Content_Types].xml":      "<Types/>",
	}))
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []string{"[Content_Types].xml", "xl/worksheets/sheet1.xml"}, a.Names())
	assert.True(t, a.Has(FirstSheetPath))
	assert.False(t, a.Has(SharedStringsPath))

	data, err := a.ReadEntry(FirstSheetPath)
	require.NoError(t, err)
	assert.Equal(t, "<worksheet/>", string(data))

	_, err = a.OpenEntry(SharedStringsPath)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, buildZip(t, map[string]string{"a.txt": "a"}), 0644))

	a, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}

func TestSheetPaths(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Prices")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()

	refs, err := a.SheetPaths()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, SheetRef{Name: "Sheet1", Path: "xl/worksheets/sheet1.xml"}, refs[0])
	assert.Equal(t, "Prices", refs[1].Name)
	assert.True(t, a.Has(refs[1].Path), "resolved path %q should exist", refs[1].Path)
}

func TestSheetPathsWithoutWorkbook(t *testing.T) {
	a, err := FromBytes(buildZip(t, map[string]string{FirstSheetPath: "<worksheet/>"}))
	require.NoError(t, err)

	refs, err := a.SheetPaths()
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
		{"../xl/worksheets/sheet3.xml", "xl/worksheets/sheet3.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, "xl")
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q) = %q, expected %q", tt.target, result, tt.expected)
		}
	}
}
