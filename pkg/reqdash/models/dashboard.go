package models

// Dashboard is the plain-data view handed to a presentation layer.
type Dashboard struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the table was read from.
	SheetName string `json:"sheet_name"`
	// Options maps each filterable field to its selectable values.
	Options map[string][]any `json:"options"`
	// Duplicates is the number of rows repeating an earlier RBS-ID (ON).
	Duplicates int `json:"duplicates"`
	// Summary holds the headline counts over the filtered rows.
	Summary KpiSummary `json:"summary"`
	// Completeness reports fill rates over the filtered rows.
	Completeness []FieldCompleteness `json:"completeness"`
	// Breakdowns holds per-value counts used for charts.
	Breakdowns []Breakdown `json:"breakdowns,omitempty"`
	// Rows is the filtered table.
	Rows *Table `json:"rows"`
}
