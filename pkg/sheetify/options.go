// Package sheetify converts arbitrary JSON documents into tabular sheet
// plans and exports them as spreadsheet and flat-table artifacts.
package sheetify

// Options configures export behavior.
type Options struct {
	// IncludeSheetColumn specifies whether the combined CSV gets a leading
	// column tagging each row with its originating sheet name.
	// If nil, defaults to true.
	IncludeSheetColumn *bool
	// AutoFitColumns specifies whether workbook columns are sized to their
	// longest value. If nil, defaults to true.
	AutoFitColumns *bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeSheetColumn returns whether the combined CSV gets the
// leading sheet-name column.
func (o Options) ShouldIncludeSheetColumn() bool {
	if o.IncludeSheetColumn != nil {
		return *o.IncludeSheetColumn
	}
	return true
}

// ShouldAutoFitColumns returns whether workbook column widths are fitted.
func (o Options) ShouldAutoFitColumns() bool {
	if o.AutoFitColumns != nil {
		return *o.AutoFitColumns
	}
	return true
}
