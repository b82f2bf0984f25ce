package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KSP08-life/document-processing-assistant/constants"
)

var (
	reInvoiceNoGate = regexp.MustCompile(`(?i)INVOICE\s*(#|NO|NUMBER)`)
	reInvoiceNo     = regexp.MustCompile(`(?i)INVOICE\s*(#|NO|NUMBER)?\s*[:\-]?\s*([A-Z0-9\-]+)`)
	reDateLine      = regexp.MustCompile(`(?i)DATE`)
	reDueDateLine   = regexp.MustCompile(`(?i)DUE\s*DATE`)
	reDateToken     = regexp.MustCompile(`(\d{4}[/\-]\d{1,2}[/\-]\d{1,2}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
	reSubtotal      = regexp.MustCompile(`(?i)Subtotal\s+(\d+[.,]\d{2})`)
	reTaxable       = regexp.MustCompile(`(?i)Taxable\s+(\d+[.,]\d{2})`)
	reTaxRate       = regexp.MustCompile(`(?i)Tax\s*rate\s+(\d+[.,]\d+)%?`)
	reTaxDue        = regexp.MustCompile(`(?i)Tax\s*due\s+(\d+[.,]\d{2})`)
	reTotalLine     = regexp.MustCompile(`(?i)^TOTAL\b`)
	reTotalAmount   = regexp.MustCompile(`(?i)TOTAL\s*([A-Z$€£₹]{0,3})\s*(\d+[.,]\d{2})`)
	reDueInDays     = regexp.MustCompile(`(?i)due in\s+(\d+)\s+days`)

	// money-shaped token: optional currency marker, digits with optional
	// thousands grouping and a 2-digit fraction
	reMoney = regexp.MustCompile(`([€£$₹])?\s?(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2}))`)
)

// invoiceMetadata is the most elaborate extractor. It works over trimmed
// lines for anchored fields and over the raw text for label and money
// scans. Every field is independently optional.
func invoiceMetadata(raw string) *Record {
	text := strings.ReplaceAll(raw, "\r", "")
	lines := splitLines(text)

	rec := NewRecord(constants.Invoice)

	// Vendor name: first-line text preceding "INVOICE", e.g.
	// "Acme Co INVOICE" -> "Acme Co". Omitted when INVOICE leads the line.
	if len(lines) > 0 {
		first := lines[0]
		idx := strings.Index(strings.ToUpper(first), "INVOICE")
		if idx > 0 {
			if vendor := strings.TrimSpace(first[:idx]); vendor != "" {
				rec.Set("VendorName", vendor, ByLabel)
			}
		}
	}

	// Invoice number: first line carrying an "INVOICE # / NO / NUMBER" label.
	for _, line := range lines {
		if !reInvoiceNoGate.MatchString(line) {
			continue
		}
		if m := reInvoiceNo.FindStringSubmatch(line); m != nil && m[2] != "" {
			rec.Set("InvoiceNumber", m[2], ByLabel)
			break
		}
	}

	// Invoice date and due date: any date-shaped token on a line containing
	// "DATE". Only the first non-due date is kept.
	var invoiceDate, dueDate string
	for _, line := range lines {
		if !reDateLine.MatchString(line) {
			continue
		}
		m := reDateToken.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if reDueDateLine.MatchString(line) {
			dueDate = m[1]
		} else if invoiceDate == "" {
			invoiceDate = m[1]
		}
	}
	if invoiceDate != "" {
		rec.Set("InvoiceDate", invoiceDate, ByLabel)
	}
	if dueDate != "" {
		rec.Set("DueDate", dueDate, ByLabel)
	}

	// Exact-label money fields.
	if m := reSubtotal.FindStringSubmatch(text); m != nil {
		rec.Set("Subtotal", parseAmount(m[1]), ByLabel)
	}
	if m := reTaxable.FindStringSubmatch(text); m != nil {
		rec.Set("TaxableAmount", parseAmount(m[1]), ByLabel)
	}
	if m := reTaxRate.FindStringSubmatch(text); m != nil {
		rec.Set("TaxRate", parseAmount(m[1]), ByLabel)
	}
	if m := reTaxDue.FindStringSubmatch(text); m != nil {
		rec.Set("TaxAmount", parseAmount(m[1]), ByLabel)
	}

	// Total: prefer a line starting with TOTAL, e.g. "TOTAL S$ 604.69".
	var currency, totalAmount string
	totalSource := ByLabel
	for _, line := range lines {
		if !reTotalLine.MatchString(line) {
			continue
		}
		if m := reTotalAmount.FindStringSubmatch(line); m != nil {
			currency = m[1]
			totalAmount = m[2]
		}
		break
	}

	// Fallback heuristic: the grand total is usually the largest
	// money-shaped figure on the page. Known to misfire on documents that
	// list larger unrelated numbers.
	if totalAmount == "" {
		if c, a, ok := largestMoney(text); ok {
			currency = c
			totalAmount = a
			totalSource = ByHeuristic
		}
	}

	if totalAmount != "" {
		rec.Set("TotalAmount", parseAmount(totalAmount), totalSource)
		if currency != "" {
			rec.Set("Currency", currency, totalSource)
		}
	}

	// Payment terms, e.g. "due in 30 days".
	if m := reDueInDays.FindStringSubmatch(text); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			rec.Set("PaymentTermsDays", days, ByLabel)
		}
	}

	return rec
}

// largestMoney scans the whole text for money-shaped tokens and returns the
// currency marker and raw amount of the numerically largest one.
func largestMoney(text string) (currency, amount string, ok bool) {
	matches := reMoney.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", "", false
	}
	best := matches[0]
	bestVal := parseAmount(best[2])
	for _, m := range matches[1:] {
		if v := parseAmount(m[2]); v > bestVal {
			best = m
			bestVal = v
		}
	}
	return best[1], best[2], true
}

var reLeadingFloat = regexp.MustCompile(`^\d+(\.\d+)?`)

// parseAmount normalizes a comma decimal separator to a dot and parses the
// leading numeric prefix, never returning an error. Grouped amounts like
// "1,234.56" therefore parse as 1.234, matching how the money tokens above
// are compared.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", ".")
	prefix := reLeadingFloat.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}
