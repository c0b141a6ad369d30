package models

// SheetData represents the values extracted from one worksheet of a workbook.
type SheetData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetPath is the package part the rows were read from (empty if absent).
	SheetPath string `json:"sheet_path,omitempty"`
	// SharedStrings is the decoded shared-string table.
	SharedStrings []string `json:"-"`
	// Rows contains the worksheet rows in document order.
	Rows []Row `json:"rows"`
	// Summary describes the extent of the extracted rows.
	Summary Summary `json:"summary"`
}

// Summary counts what a worksheet holds.
type Summary struct {
	// Rows is the number of row elements.
	Rows int `json:"rows"`
	// Columns is the width of the widest row.
	Columns int `json:"columns"`
	// NonEmptyRows is the number of rows with at least one value.
	NonEmptyRows int `json:"non_empty_rows"`
	// NonEmptyCells is the number of non-empty values.
	NonEmptyCells int `json:"non_empty_cells"`
	// Range is the A1-style block holding every non-empty value ("" if none).
	Range string `json:"range,omitempty"`
}
