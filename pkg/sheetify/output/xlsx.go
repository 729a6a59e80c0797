package output

import (
	"unicode/utf8"

	"github.com/alpinaditya/sheetify/pkg/sheetify/models"
	"github.com/xuri/excelize/v2"
)

const (
	// columnPadding widens each auto-fit column beyond its longest value.
	columnPadding = 2
	// maxColumnWidth caps auto-fit column widths.
	maxColumnWidth = 60
)

// WriteWorkbook writes the plan as a multi-tab xlsx workbook at path.
// Sheet names are sanitized and de-duplicated, each tab gets a header row
// built from the sheet's key union, and missing cells are left empty.
// When autoFit is set, column widths follow the longest rendered value.
func WriteWorkbook(plan *models.Plan, path string, autoFit bool) error {
	f := excelize.NewFile()
	defer f.Close()

	registry := newNameRegistry()
	for i, sheet := range plan.Sheets() {
		name := registry.Claim(sheet.Name)
		if i == 0 {
			// excelize workbooks start with a single default sheet.
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return newExportError("workbook", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return newExportError("workbook", name, err)
			}
		}

		if err := writeSheet(f, name, sheet, autoFit); err != nil {
			return newExportError("workbook", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return newExportError("workbook", "", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sheet *models.Sheet, autoFit bool) error {
	header := sheet.Header()

	for colIdx, h := range header {
		cellRef, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cellRef, h); err != nil {
			return err
		}
	}

	for rowIdx, row := range sheet.Rows {
		for colIdx, h := range header {
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			cell, ok := row.Get(h)
			if !ok {
				if err := f.SetCellValue(name, cellRef, ""); err != nil {
					return err
				}
				continue
			}
			if cell.Kind == models.CellScalar && cell.Value == nil {
				continue
			}
			if err := f.SetCellValue(name, cellRef, cellValue(cell)); err != nil {
				return err
			}
		}
	}

	if autoFit {
		return fitColumns(f, name, sheet, header)
	}
	return nil
}

// cellValue converts a cell to the value handed to excelize.
func cellValue(c models.Cell) interface{} {
	if c.Kind == models.CellJSON {
		return c.JSONString()
	}
	return c.Value
}

// fitColumns sizes each column to its longest rendered value, padded and
// capped at maxColumnWidth.
func fitColumns(f *excelize.File, name string, sheet *models.Sheet, header []string) error {
	for colIdx, h := range header {
		maxLen := utf8.RuneCountInString(h)
		for _, row := range sheet.Rows {
			if cell, ok := row.Get(h); ok {
				if l := utf8.RuneCountInString(cellText(cell)); l > maxLen {
					maxLen = l
				}
			}
		}

		width := maxLen + columnPadding
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
