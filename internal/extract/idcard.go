package extract

import (
	"regexp"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

var (
	reDOB = regexp.MustCompile(`\b(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})\b`)
	// first run of 6+ uppercase letters/digits anywhere in the text; no
	// validation that it is actually labeled as an ID
	reIDToken = regexp.MustCompile(`\b([A-Z0-9]{6,})\b`)
)

func idCardMetadata(text string) *Record {
	rec := NewRecord(constants.IDCard)

	if m := reDOB.FindStringSubmatch(text); m != nil {
		rec.Set("DateOfBirth", m[1], ByHeuristic)
	}

	if m := reIDToken.FindStringSubmatch(text); m != nil {
		rec.Set("IdNumber", m[1], ByHeuristic)
	}

	return rec
}
