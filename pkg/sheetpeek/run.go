package sheetpeek

import (
	"path/filepath"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// Paths joins each file name onto dir. An empty dir leaves names unchanged.
func Paths(dir string, files []string) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		if dir == "" || filepath.IsAbs(f) {
			paths[i] = f
			continue
		}
		paths[i] = filepath.Join(dir, f)
	}
	return paths
}

// Run extracts each path in order and returns one result per path. A failing
// file is recorded in its result and does not stop the remaining files.
// If done is non-nil it is called after each file.
func Run(paths []string, opts Options, done func(models.FileResult)) []models.FileResult {
	results := make([]models.FileResult, 0, len(paths))
	for _, path := range paths {
		sheet, err := Extract(path, opts)
		result := models.FileResult{Path: path, Sheet: sheet, Err: err}
		results = append(results, result)
		if done != nil {
			done(result)
		}
	}
	return results
}
