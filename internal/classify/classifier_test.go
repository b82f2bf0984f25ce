package classify

import (
	"strings"
	"testing"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantType       constants.DocumentType
		wantConfidence int
	}{
		{
			name:           "empty text",
			text:           "",
			wantType:       constants.Unknown,
			wantConfidence: 0,
		},
		{
			name:           "random prose",
			text:           "the quick brown fox jumps over the lazy dog",
			wantType:       constants.Unknown,
			wantConfidence: 0,
		},
		{
			name: "invoice with currency",
			// "invoice" +2, "total" +1, "$" pattern +2 => score 5, capped at 95
			text:           "Acme Co INVOICE\nINVOICE NO: INV-001\nDATE: 2024-01-10\nTOTAL $100.00",
			wantType:       constants.Invoice,
			wantConfidence: 95,
		},
		{
			name:           "id card",
			text:           "Date of Birth: 12/04/1990\nID NO: AB123456\nAddress: 1 Main St",
			wantType:       constants.IDCard,
			wantConfidence: 95,
		},
		{
			name: "certificate",
			// "certificate" +3 => 60
			text:           "Certificate of Participation",
			wantType:       constants.Certificate,
			wantConfidence: 60,
		},
		{
			name: "form",
			// "application" +2, "form" +2, "signature" +1 => score 5
			text:           "Application Form\nSignature: ____",
			wantType:       constants.Form,
			wantConfidence: 95,
		},
		{
			name: "single weak signal",
			// "course" alone => certificate score 1 => 20
			text:           "golf course map",
			wantType:       constants.Certificate,
			wantConfidence: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Type != tt.wantType {
				t.Errorf("Classify() type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Classify() confidence = %d, want %d", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := Classify("invoice total amount $10.00")
	upper := Classify("INVOICE TOTAL AMOUNT $10.00")
	mixed := Classify("Invoice Total Amount $10.00")

	if lower != upper || lower != mixed {
		t.Errorf("classification is not case-insensitive: %+v / %+v / %+v", lower, upper, mixed)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	text := "certificate of completion\nJane Doe\nhas successfully completed the course"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify() not deterministic: run %d got %+v, first %+v", i, got, first)
		}
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		"invoice invoice invoice total amount $1.00 total: 55",
		"certificate certify course completion application form signature",
		strings.Repeat("invoice total amount address uid form ", 100),
		"date of birth id no address",
	}
	for _, text := range texts {
		got := Classify(text)
		if got.Confidence < 0 || got.Confidence > MaxConfidence {
			t.Errorf("confidence %d out of [0,%d] for %q", got.Confidence, MaxConfidence, text)
		}
		if (got.Confidence == 0) != (got.Type == constants.Unknown) {
			t.Errorf("confidence 0 and Unknown not equivalent: %+v for %q", got, text)
		}
	}
}

func TestClassifyTieBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.DocumentType
	}{
		{
			// invoice 2 ("invoice") vs form 2 ("form"): invoice has priority
			name: "invoice beats form",
			text: "invoice form",
			want: constants.Invoice,
		},
		{
			// id 2 ("uid") vs form 2 ("form"): id has priority
			name: "id card beats form",
			text: "uid form",
			want: constants.IDCard,
		},
		{
			// certificate 3 vs form 3
			name: "certificate beats form",
			text: "certificate application signature",
			want: constants.Certificate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Type != tt.want {
				t.Errorf("Classify(%q) type = %q, want %q", tt.text, got.Type, tt.want)
			}
		})
	}
}

func TestScoresRuleTable(t *testing.T) {
	// every rule must carry a positive weight and a trigger
	for i, r := range Rules {
		if r.Weight <= 0 {
			t.Errorf("rule %d has non-positive weight %d", i, r.Weight)
		}
		if len(r.Keywords) == 0 && r.Pattern == nil {
			t.Errorf("rule %d has neither keywords nor pattern", i)
		}
	}

	// priority covers every type the table scores
	covered := make(map[constants.DocumentType]bool)
	for _, typ := range Priority {
		covered[typ] = true
	}
	for i, r := range Rules {
		if !covered[r.Type] {
			t.Errorf("rule %d targets %q which is missing from Priority", i, r.Type)
		}
	}
}
