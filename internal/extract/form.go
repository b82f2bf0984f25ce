package extract

import (
	"regexp"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

var (
	reEmail = regexp.MustCompile(`(?i)[A-Z0-9._%+\-]+@[A-Z0-9.\-]+\.[A-Z]{2,}`)
	// 8+ digit run with optional leading + and internal separators
	rePhone = regexp.MustCompile(`(\+?\d[\d\s\-]{7,}\d)`)
)

func formMetadata(text string) *Record {
	rec := NewRecord(constants.Form)

	if m := reEmail.FindString(text); m != "" {
		rec.Set("Email", m, ByHeuristic)
	}

	if m := rePhone.FindStringSubmatch(text); m != nil {
		rec.Set("Phone", m[1], ByHeuristic)
	}

	return rec
}
