package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KSP08-life/document-processing-assistant/internal/extract"
)

// XLSX renders the record as an XLSX workbook with a single Metadata sheet:
// a Field/Value header row followed by one row per record entry.
func XLSX(rec *extract.Record) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Metadata"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Field", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, field := range rec.Fields() {
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, nameCell, field.Name)
		_ = f.SetCellValue(sheet, valueCell, field.Value)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
