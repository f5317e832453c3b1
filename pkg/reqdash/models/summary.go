package models

import "math"

// KpiSummary holds the headline counts shown above the requirements table.
type KpiSummary struct {
	// Total is the number of records.
	Total int `json:"total"`
	// ReviewedCount is the number of records whose Reviewed flag is true.
	ReviewedCount int `json:"reviewed_count"`
	// InScopeCount is the number of records whose In scope flag is true.
	InScopeCount int `json:"in_scope_count"`
	// ReviewProgressPct is ReviewedCount / Total * 100, or 0 for an empty table.
	ReviewProgressPct float64 `json:"review_progress_pct"`
}

// RoundedPct returns ReviewProgressPct rounded to the given number of digits.
func (s KpiSummary) RoundedPct(digits int) float64 {
	return Round(s.ReviewProgressPct, digits)
}

// FieldCompleteness reports how many records have a field filled in.
type FieldCompleteness struct {
	// Field is the column name.
	Field string `json:"field"`
	// Filled is the number of records with a usable value.
	Filled int `json:"filled"`
	// Total is the number of records considered.
	Total int `json:"total"`
	// Pct is Filled / Total * 100, or 0 when Total is 0.
	Pct float64 `json:"pct"`
}

// ValueCount is one bar of a breakdown.
type ValueCount struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

// Breakdown is the per-value record count for one field.
type Breakdown struct {
	// Field is the column name.
	Field string `json:"field"`
	// Counts is ordered by count descending.
	Counts []ValueCount `json:"counts"`
}

// Round rounds v half away from zero to digits decimals.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
