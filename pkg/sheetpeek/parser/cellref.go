package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidCellRef indicates a cell reference without a usable column label.
var ErrInvalidCellRef = errors.New("invalid cell reference")

// ColumnIndex decodes the 0-based column of a cell reference such as "C5".
// The leading run of uppercase letters is read as a base-26 label where
// A=1 ... Z=26, AA=27; trailing row digits are ignored.
func ColumnIndex(ref string) (int, error) {
	end := strings.IndexFunc(ref, func(r rune) bool { return r < 'A' || r > 'Z' })
	if end < 0 {
		end = len(ref)
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCellRef, ref)
	}

	col, err := excelize.ColumnNameToNumber(ref[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCellRef, ref, err)
	}
	return col - 1, nil
}
