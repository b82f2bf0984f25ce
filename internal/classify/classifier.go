// Package classify scores noisy document text against a weighted keyword
// and pattern table and picks the best-matching document type. It is a pure
// function of the lower-cased input: no I/O, no failure mode.
package classify

import (
	"strings"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

// MaxConfidence caps the reported confidence. The linear mapping below can
// never reach 100 by construction.
const MaxConfidence = 95

// Result is an immutable classification outcome. Confidence is an integer
// in [0,95]; it is 0 exactly when Type is Unknown.
type Result struct {
	Type       constants.DocumentType
	Confidence int
}

// Classify scores text against every rule in the table and returns the
// winning type with a capped linear confidence of min(95, score*20).
// Ties resolve in Priority order. Text with no signal at all classifies
// as {Unknown, 0}.
func Classify(text string) Result {
	content := strings.ToLower(text)

	scores := Scores(content)

	maxScore := 0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	if maxScore == 0 {
		return Result{Type: constants.Unknown, Confidence: 0}
	}

	winner := constants.Unknown
	for _, t := range Priority {
		if scores[t] == maxScore {
			winner = t
			break
		}
	}

	confidence := maxScore * 20
	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}
	return Result{Type: winner, Confidence: confidence}
}

// Scores accumulates the per-type rule scores for already lower-cased
// content. Exposed so the tie-break can be tested in isolation.
func Scores(content string) map[constants.DocumentType]int {
	scores := make(map[constants.DocumentType]int, len(Priority))
	for _, t := range Priority {
		scores[t] = 0
	}
	for _, r := range Rules {
		if r.triggered(content) {
			scores[r.Type] += r.Weight
		}
	}
	return scores
}
