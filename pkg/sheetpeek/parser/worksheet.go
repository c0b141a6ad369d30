package parser

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ukaji3/sheetpeek/pkg/sheetpeek/models"
)

// Cell type attribute values.
const (
	cellTypeShared = "s"
	cellTypeInline = "inlineStr"
)

// cell holds what one c element carries while its row is being assembled.
type cell struct {
	ref       string
	typ       string
	value     string
	hasValue  bool
	inline    string
	hasInline bool
}

func (c cell) resolve(sst SharedStrings) string {
	switch {
	case c.typ == cellTypeInline && c.hasInline:
		return c.inline
	case !c.hasValue:
		return ""
	case c.typ == cellTypeShared:
		return sst.Resolve(c.value)
	default:
		return c.value
	}
}

// ParseWorksheet decodes a worksheet part into rows, in document order.
// Sparse rows are expanded so that index i of a row is column i; missing
// columns hold "". On error no rows are returned.
func ParseWorksheet(r io.Reader, sst SharedStrings) ([]models.Row, error) {
	rows := []models.Row{}
	decoder := newDecoder(r)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: worksheet: %v", ErrMalformedXML, err)
		}

		if se, ok := token.(xml.StartElement); ok && isMain(se.Name, "row") {
			row, err := parseRow(decoder, sst)
			if err != nil {
				return nil, fmt.Errorf("%w: worksheet row %d: %v", ErrMalformedXML, len(rows)+1, err)
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// parseRow reads the cells of a row element whose start tag was just consumed.
func parseRow(decoder *xml.Decoder, sst SharedStrings) (models.Row, error) {
	row := models.Row{}
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if isMain(t.Name, "c") {
				c, err := parseCell(decoder, t)
				if err != nil {
					return nil, err
				}
				row = placeCell(row, c, sst)
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return row, nil
}

// placeCell stores the cell's value at its column, padding any gap with "".
// The cursor is the row length; a cell without a usable reference lands there.
func placeCell(row models.Row, c cell, sst SharedStrings) models.Row {
	col := len(row)
	if c.ref != "" {
		if idx, err := ColumnIndex(c.ref); err == nil {
			col = idx
		}
	}

	for len(row) < col {
		row = append(row, "")
	}

	value := c.resolve(sst)
	if col < len(row) {
		// Out-of-order or repeated reference.
		row[col] = value
		return row
	}
	return append(row, value)
}

// parseCell reads a c element whose start tag is start.
func parseCell(decoder *xml.Decoder, start xml.StartElement) (cell, error) {
	var c cell
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "r":
			c.ref = attr.Value
		case "t":
			c.typ = attr.Value
		}
	}

	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return c, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case isMain(t.Name, "v"):
				text, err := readElementText(decoder)
				if err != nil {
					return c, err
				}
				c.value, c.hasValue = text, true
			case isMain(t.Name, "is"):
				text, err := readStringItem(decoder)
				if err != nil {
					return c, err
				}
				c.inline, c.hasInline = text, true
			default:
				if err := decoder.Skip(); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return c, nil
}
