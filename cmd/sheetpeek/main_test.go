package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeBook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Red"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", 7))
	require.NoError(t, f.SaveAs(path))
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	configPath = ""
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunContinuesPastMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, filepath.Join(dir, "colors.xlsx"))

	stdout, stderr, err := execute(t, "--dir", dir, "missing.xlsx", "colors.xlsx")
	require.NoError(t, err)

	assert.Contains(t, stdout, "=== Extracting: missing.xlsx ===")
	assert.Contains(t, stdout, "Error reading "+filepath.Join(dir, "missing.xlsx")+":")
	assert.Contains(t, stdout, "file not found")
	assert.Contains(t, stdout, "=== Extracting: colors.xlsx ===")
	assert.Contains(t, stdout, "Range: A1:C1")
	assert.Contains(t, stdout, `Row 0: ["Red", "", "7"]`)
	assert.Less(t, strings.Index(stdout, "missing.xlsx"), strings.Index(stdout, "colors.xlsx"))
	assert.Contains(t, stderr, "[ERROR] Error reading")
	assert.Contains(t, stderr, "2 files, 1 failed")
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, filepath.Join(dir, "colors.xlsx"))

	stdout, _, err := execute(t, "--format", "json", filepath.Join(dir, "colors.xlsx"))
	require.NoError(t, err)
	assert.Contains(t, stdout, `"rows":[["Red","","7"]]`)
}

func TestRunInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "a.xlsx")
	assert.Error(t, err)
}

func TestRunNoFiles(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}

func TestRunWarnsWithoutWorksheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nosheet.xlsx")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("xl/sharedStrings.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"/>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Rows: 0, Columns: 0, Non-empty cells: 0")
	assert.NotContains(t, stdout, "Range:")
	assert.Contains(t, stderr, "[WARN] "+path+" has no worksheet part")
	assert.Contains(t, stderr, "1 files, 0 failed")
}
