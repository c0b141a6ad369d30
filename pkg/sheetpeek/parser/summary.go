package parser

import (
	"fmt"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
	"github.com/xuri/excelize/v2"
)

// Bounds is the smallest block holding every non-empty value. Rows are
// positions in the row sequence and columns are cell columns, both 0-based
// and inclusive.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Range renders the bounds in A1 notation, e.g. "A1:C5".
func (b Bounds) Range() string {
	startCell, err := excelize.CoordinatesToCellName(b.MinCol+1, b.MinRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(b.MaxCol+1, b.MaxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// DataBounds finds the bounding box of non-empty values. It reports false
// when rows hold no value at all.
func DataBounds(rows []models.Row) (Bounds, bool) {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == "" {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if b.MaxRow < 0 || rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if b.MaxCol < 0 || colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	if b.MinRow < 0 {
		return Bounds{}, false
	}
	return b, true
}

// Summarize measures the extent of rows and counts their non-empty values.
func Summarize(rows []models.Row) models.Summary {
	s := models.Summary{Rows: len(rows)}
	for _, row := range rows {
		if len(row) > s.Columns {
			s.Columns = len(row)
		}
		cells := countNonEmptyCells(row)
		if cells > 0 {
			s.NonEmptyRows++
		}
		s.NonEmptyCells += cells
	}
	if b, ok := DataBounds(rows); ok {
		s.Range = b.Range()
	}
	return s
}

func countNonEmptyCells(row models.Row) int {
	count := 0
	for _, v := range row {
		if v != "" {
			count++
		}
	}
	return count
}
