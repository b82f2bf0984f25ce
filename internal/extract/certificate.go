package extract

import (
	"regexp"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

var reAwardPhrase = regexp.MustCompile(`(?i)has successfully|is hereby|is awarded`)

func certificateMetadata(text string) *Record {
	rec := NewRecord(constants.Certificate)

	// Recipient name: the line immediately preceding the award phrase, e.g.
	//   Jane Doe
	//   has successfully completed the course
	lines := splitLines(text)
	for i := 1; i < len(lines); i++ {
		if reAwardPhrase.MatchString(lines[i]) {
			rec.Set("RecipientName", lines[i-1], ByLabel)
			break
		}
	}

	return rec
}
