// Package parser reads requirements tables from Excel workbooks.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/xuri/excelize/v2"
)

// ReadOptions configures how a sheet is turned into a table.
type ReadOptions struct {
	// Range restricts reading to a cell block. If nil, the bounding box of
	// all non-empty cells is used.
	Range *models.Bounds
}

// ReadTable reads a sheet into a table. The first row of the data block is
// the header; every later row with at least one value becomes a record.
// Empty cells are stored as nil.
func ReadTable(f *excelize.File, sheetName string, opts ReadOptions) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var bounds models.Bounds
	if opts.Range != nil {
		bounds = *opts.Range
	} else {
		var ok bool
		bounds, ok = DataBounds(rows)
		if !ok {
			return models.NewTable(nil, []models.Record{}), nil
		}
	}

	header := readHeader(cellsAt(rows, bounds.R1), bounds)

	records := []models.Record{}
	for rowNum := bounds.R1 + 1; rowNum <= bounds.R2 && rowNum <= len(rows); rowNum++ {
		row := cellsAt(rows, rowNum)
		rec := make(models.Record, len(header))
		hasData := false

		for i, name := range header {
			colIdx := bounds.C1 - 1 + i // 0-based index into row
			var cellValue string
			if colIdx < len(row) {
				cellValue = row[colIdx]
			}
			if cellValue == "" {
				rec[name] = nil
				continue
			}
			hasData = true
			rec[name] = parseValue(cellValue)
		}

		if hasData {
			records = append(records, rec)
		}
	}

	return models.NewTable(header, records), nil
}

// cellsAt returns the cells of the 1-based row, or nil past the end.
func cellsAt(rows [][]string, rowNum int) []string {
	if rowNum < 1 || rowNum > len(rows) {
		return nil
	}
	return rows[rowNum-1]
}

// readHeader names the columns of the block. Blank header cells are named
// after their position and repeated names get a ".N" suffix, so every column
// name is unique.
func readHeader(row []string, b models.Bounds) []string {
	header := make([]string, 0, b.C2-b.C1+1)
	used := make(map[string]int)
	for col := b.C1; col <= b.C2; col++ {
		var name string
		if col-1 < len(row) {
			name = row[col-1]
		}
		if name == "" {
			name = fmt.Sprintf("Column %d", col)
		}
		if n, dup := used[name]; dup {
			used[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		}
		used[name] = 0
		header = append(header, name)
	}
	return header
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Text with a leading zero such as "007" is kept as text so identifiers
// survive, and so are spellings of NaN and infinity.
func parseValue(s string) interface{} {
	if hasLeadingZero(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

func hasLeadingZero(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}

// ParseCell converts typed text into a cell value the way ReadTable does.
// The empty string becomes nil.
func ParseCell(s string) any {
	if s == "" {
		return nil
	}
	return parseValue(s)
}
