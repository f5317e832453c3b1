package models

// Bounds represents cell coordinate bounds within a sheet.
type Bounds struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Contains reports whether the 1-based cell (row, col) lies within b.
func (b Bounds) Contains(row, col int) bool {
	return row >= b.R1 && row <= b.R2 && col >= b.C1 && col <= b.C2
}
