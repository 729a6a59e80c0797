package output

import (
	"encoding/csv"
	"os"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/spf13/cast"
)

// SheetColumn is the leading combined-CSV column tagging each row with the
// name of the sheet it came from.
const SheetColumn = "__sheet"

// WriteCombinedCSV writes every sheet of the plan into one flat CSV table at
// path. The header is the union of all sheet headers in plan order; rows are
// concatenated sheet by sheet and tagged with their raw (unsanitized) sheet
// name when includeSheetColumn is set. Missing cells are left empty.
func WriteCombinedCSV(plan *models.Plan, path string, includeSheetColumn bool) error {
	file, err := os.Create(path)
	if err != nil {
		return newExportError("csv", "", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	var columns []string
	seen := make(map[string]bool)
	for _, sheet := range plan.Sheets() {
		for _, k := range sheet.Header() {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	header := columns
	if includeSheetColumn {
		header = append([]string{SheetColumn}, columns...)
	}
	if err := writer.Write(header); err != nil {
		return newExportError("csv", "", err)
	}

	for _, sheet := range plan.Sheets() {
		for _, row := range sheet.Rows {
			record := make([]string, 0, len(header))
			if includeSheetColumn {
				record = append(record, sheet.Name)
			}
			for _, col := range columns {
				if cell, ok := row.Get(col); ok {
					record = append(record, cellText(cell))
				} else {
					record = append(record, "")
				}
			}
			if err := writer.Write(record); err != nil {
				return newExportError("csv", sheet.Name, err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return newExportError("csv", "", err)
	}
	return nil
}

// cellText renders a cell for delimited output: JSON cells verbatim,
// scalars via loose string conversion (nil renders empty).
func cellText(c models.Cell) string {
	if c.Kind == models.CellJSON {
		return c.JSONString()
	}
	return cast.ToString(c.Value)
}
