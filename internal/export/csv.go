package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KSP08-life/document-processing-assistant/internal/extract"
)

// CSV renders a two-column Field,Value table, one record entry per row.
// Values are always double-quoted with internal quotes doubled; numbers are
// stringified.
func CSV(rec *extract.Record) ([]byte, error) {
	var b strings.Builder
	b.WriteString("Field,Value\n")
	for _, f := range rec.Fields() {
		b.WriteString(f.Name)
		b.WriteByte(',')
		b.WriteString(quoteCSV(FormatValue(f.Value)))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// FormatValue stringifies a record value the way every exporter renders it.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
