// Package extract turns aggregated OCR text into a structured MetadataRecord
// for a known document type. Every extractor is a total function over
// arbitrary text: a pattern that fails to match omits its field, it never
// fails the document.
package extract

import (
	"strings"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

// Metadata routes text to the extractor matching the given type label.
// The label is canonicalized exactly once, here; raw strings never reach an
// extractor. Unknown or unrecognized labels yield a record holding only
// DocumentType.
func Metadata(label string, text string) *Record {
	docType, _ := constants.Canonicalize(label)

	switch docType {
	case constants.Invoice:
		return invoiceMetadata(text)
	case constants.IDCard:
		return idCardMetadata(text)
	case constants.Certificate:
		return certificateMetadata(text)
	case constants.Form:
		return formMetadata(text)
	default:
		return NewRecord(constants.Unknown)
	}
}

// splitLines returns the trimmed, non-empty lines of text.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
