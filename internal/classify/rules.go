package classify

import (
	"regexp"
	"strings"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

// Rule is one independent scoring signal for a candidate type. A rule
// triggers when any of its keywords is contained in the lower-cased text,
// or when its pattern matches. Each rule contributes its weight at most once.
type Rule struct {
	Type     constants.DocumentType
	Weight   int
	Keywords []string
	Pattern  *regexp.Regexp
}

func (r Rule) triggered(content string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return r.Pattern != nil && r.Pattern.MatchString(content)
}

var reCurrencyOrTotal = regexp.MustCompile(`[₹$€£]|total\s*[:\-]?\s*\d+`)

// Rules is the full scoring table. Weights are deliberate and fixed; they
// are not runtime-tunable.
var Rules = []Rule{
	{Type: constants.Invoice, Weight: 2, Keywords: []string{"invoice"}},
	{Type: constants.Invoice, Weight: 1, Keywords: []string{"total"}},
	{Type: constants.Invoice, Weight: 1, Keywords: []string{"amount"}},
	{Type: constants.Invoice, Weight: 2, Pattern: reCurrencyOrTotal},

	{Type: constants.IDCard, Weight: 2, Keywords: []string{"date of birth"}},
	{Type: constants.IDCard, Weight: 2, Keywords: []string{"id no", "uid"}},
	{Type: constants.IDCard, Weight: 1, Keywords: []string{"address"}},

	{Type: constants.Certificate, Weight: 3, Keywords: []string{"certificate"}},
	{Type: constants.Certificate, Weight: 2, Keywords: []string{"certify"}},
	{Type: constants.Certificate, Weight: 1, Keywords: []string{"course", "completion"}},

	{Type: constants.Form, Weight: 2, Keywords: []string{"application"}},
	{Type: constants.Form, Weight: 2, Keywords: []string{"form"}},
	{Type: constants.Form, Weight: 1, Keywords: []string{"signature"}},
}

// Priority is the tie-break order: the first type in this list whose score
// equals the maximum wins.
var Priority = []constants.DocumentType{
	constants.Invoice,
	constants.IDCard,
	constants.Certificate,
	constants.Form,
}
