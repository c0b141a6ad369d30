package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SharedStrings is the workbook's shared-string table, indexed by position.
type SharedStrings []string

// Resolve maps a shared-string reference to its text. A reference that is not
// an integer, or is out of range for the table, is returned unchanged.
func (s SharedStrings) Resolve(raw string) string {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || i < 0 || i >= len(s) {
		return raw
	}
	return s[i]
}

// ParseSharedStrings decodes a sharedStrings part. Each si element yields one
// entry: the concatenated text of its t elements, rich text runs included and
// phonetic runs excluded. An item without text yields "".
func ParseSharedStrings(r io.Reader) (SharedStrings, error) {
	table := SharedStrings{}
	decoder := newDecoder(r)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: shared strings: %v", ErrMalformedXML, err)
		}

		if se, ok := token.(xml.StartElement); ok && isMain(se.Name, "si") {
			text, err := readStringItem(decoder)
			if err != nil {
				return nil, fmt.Errorf("%w: shared strings: %v", ErrMalformedXML, err)
			}
			table = append(table, text)
		}
	}

	return table, nil
}

// readStringItem reads the text of an si or is element whose start tag was
// just consumed.
func readStringItem(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case isMain(t.Name, "t"):
				text, err := readElementText(decoder)
				if err != nil {
					return "", err
				}
				sb.WriteString(text)
			case isMain(t.Name, "rPh"):
				if err := decoder.Skip(); err != nil {
					return "", err
				}
			default:
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}
