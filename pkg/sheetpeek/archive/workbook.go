package archive

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// SheetRef names a worksheet and the package part holding it.
type SheetRef struct {
	Name string
	Path string
}

// SheetPaths lists the worksheets declared in the workbook, in workbook order.
// Sheets whose relationship is missing or does not target a worksheet part are skipped.
func (a *Archive) SheetPaths() ([]SheetRef, error) {
	workbookXML, err := a.ReadEntry(WorkbookPath)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	sheets, err := parseWorkbookSheets(workbookXML)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, nil
	}

	relsXML, err := a.ReadEntry(WorkbookRelsPath)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	targets, err := parseWorkbookRels(relsXML)
	if err != nil {
		return nil, err
	}

	var refs []SheetRef
	for _, s := range sheets {
		target, ok := targets[s.rID]
		if !ok {
			continue
		}
		refs = append(refs, SheetRef{Name: s.name, Path: target})
	}
	return refs, nil
}

type workbookSheet struct {
	name string
	rID  string
}

// parseWorkbookSheets returns the sheet elements of workbook.xml in document order.
func parseWorkbookSheets(data []byte) ([]workbookSheet, error) {
	var result []workbookSheet
	decoder := newDecoder(data)

	for {
		token, err := decoder.Token()
		if err != nil {
			if isEOF(err) {
				return result, nil
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, WorkbookPath, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var s workbookSheet
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					s.name = attr.Value
				case "id":
					s.rID = attr.Value
				}
			}
			if s.name != "" && s.rID != "" {
				result = append(result, s)
			}
		}
	}
}

// parseWorkbookRels maps relationship ids to worksheet part paths.
func parseWorkbookRels(data []byte) (map[string]string, error) {
	result := make(map[string]string)
	decoder := newDecoder(data)

	for {
		token, err := decoder.Token()
		if err != nil {
			if isEOF(err) {
				return result, nil
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptArchive, WorkbookRelsPath, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && strings.Contains(strings.ToLower(target), "worksheet") {
				result[rID] = resolveRelativePath(target, "xl")
			}
		}
	}
}

// resolveRelativePath turns a relationship target into a package part name.
// Targets are relative to baseDir unless they start with "/" (package root).
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return clean
	}
	return baseDir + "/" + target
}

func newDecoder(data []byte) *xml.Decoder {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
