// Package parser decodes SpreadsheetML parts into shared strings and rows.
package parser

import (
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// SpreadsheetML main namespaces. Elements are matched by local name within
// one of these; elements from other namespaces (extensions, markup
// compatibility) are ignored.
const (
	NamespaceMain   = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	NamespaceStrict = "http://purl.oclc.org/ooxml/spreadsheetml/main"
)

// ErrMalformedXML indicates a part could not be read as well-formed XML.
var ErrMalformedXML = errors.New("malformed xml")

func isMain(name xml.Name, local string) bool {
	if name.Local != local {
		return false
	}
	return name.Space == NamespaceMain || name.Space == NamespaceStrict
}

// newDecoder returns a decoder that accepts parts declaring a non-UTF-8
// encoding such as windows-1252.
func newDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

// readElementText returns the character data of the element whose start
// tag was just consumed, including nested elements, and consumes its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text []byte
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.CharData:
			text = append(text, t...)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return string(text), nil
}
