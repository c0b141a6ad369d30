package output

import (
	"encoding/json"
	"io"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// fileJSON is the serialized form of a FileResult.
type fileJSON struct {
	Path  string            `json:"path"`
	Sheet *models.SheetData `json:"sheet,omitempty"`
	Error string            `json:"error,omitempty"`
}

// ToJSON serializes results, applying the same row selection as WriteText.
func ToJSON(results []models.FileResult, opts TextOptions, pretty bool) ([]byte, error) {
	files := make([]fileJSON, 0, len(results))
	for _, r := range results {
		fj := fileJSON{Path: r.Path}
		if r.OK() {
			sheet := *r.Sheet
			sheet.Rows = make([]models.Row, 0)
			for _, ir := range Visible(r.Sheet.Rows, opts) {
				sheet.Rows = append(sheet.Rows, ir.Row)
			}
			fj.Sheet = &sheet
		} else {
			fj.Error = r.Err.Error()
		}
		files = append(files, fj)
	}

	if pretty {
		return json.MarshalIndent(files, "", "  ")
	}
	return json.Marshal(files)
}

// WriteJSON writes ToJSON output followed by a newline.
func WriteJSON(w io.Writer, results []models.FileResult, opts TextOptions, pretty bool) error {
	data, err := ToJSON(results, opts, pretty)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
