// Package export renders MetadataRecords for download: pretty JSON, a
// two-column CSV table, or an XLSX workbook.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/KSP08-life/document-processing-assistant/internal/extract"
)

// JSON renders the record pretty-printed with 2-space indentation. Field
// order follows extraction order. The payload is validated against the
// metadata schema before being handed out.
func JSON(rec *extract.Record) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildMetadataJSONSchema(), raw); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("indent record: %w", err)
	}
	return out.Bytes(), nil
}
