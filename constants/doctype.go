package constants

import (
	"strings"
)

// DocumentType is the canonical document type label. Store and dispatch on
// these exact strings; display names are derived, never the other way around.
type DocumentType string

const (
	Invoice     DocumentType = "invoice"
	IDCard      DocumentType = "id_card"
	Certificate DocumentType = "certificate"
	Form        DocumentType = "form"
	Unknown     DocumentType = "unknown"
)

var allDocumentTypes = []DocumentType{
	Invoice,
	IDCard,
	Certificate,
	Form,
	Unknown,
}

// displayNames maps canonical types to human-facing labels.
var displayNames = map[DocumentType]string{
	Invoice:     "Invoice",
	IDCard:      "ID Card",
	Certificate: "Certificate",
	Form:        "Form",
	Unknown:     "Unknown",
}

func (t DocumentType) Display() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return displayNames[Unknown]
}

func AsStringSlice() []string {
	result := make([]string, len(allDocumentTypes))
	for i, t := range allDocumentTypes {
		result[i] = string(t)
	}
	return result
}

// Canonicalize maps any spelling of a document type label (canonical,
// display, or loose variants) onto the canonical enumeration. Unrecognized
// labels map to Unknown with ok=false.
func Canonicalize(input string) (DocumentType, bool) {
	if input == "" {
		return Unknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocumentType{
		"id card":  IDCard,
		"idcard":   IDCard,
		"id":       IDCard,
		"id_card":  IDCard,
		"cert":     Certificate,
		"invoices": Invoice,
		"forms":    Form,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allDocumentTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return Unknown, false
}
