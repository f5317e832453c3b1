package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

func TestReadTable(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Set some test data
	f.SetCellValue(sheetName, "A1", "RBS-ID (ON)")
	f.SetCellValue(sheetName, "B1", "Fase")
	f.SetCellValue(sheetName, "C1", "Reviewed")
	f.SetCellValue(sheetName, "A2", "R-001")
	f.SetCellValue(sheetName, "B2", 100)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "A3", "R-002")
	f.SetCellValue(sheetName, "B3", 200.5)
	f.SetCellValue(sheetName, "A5", "0042")

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	// Open and read
	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	tbl, err := ReadTable(f2, sheetName, ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"RBS-ID (ON)", "Fase", "Reviewed"}, tbl.Columns)
	// row 4 is blank and skipped
	require.Equal(t, 3, tbl.Len())

	assert.Equal(t, "R-001", tbl.Rows[0]["RBS-ID (ON)"])
	assert.Equal(t, int64(100), tbl.Rows[0]["Fase"])
	assert.Equal(t, "TRUE", tbl.Rows[0]["Reviewed"])

	assert.Equal(t, 200.5, tbl.Rows[1]["Fase"])
	assert.Nil(t, tbl.Rows[1]["Reviewed"])

	assert.Equal(t, "0042", tbl.Rows[2]["RBS-ID (ON)"])
	assert.Nil(t, tbl.Rows[2]["Fase"])
}

func TestReadTableOffsetAndHeaderNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s := "Sheet1"
	f.SetSheetRow(s, "B3", &[]interface{}{"Eis naam", "", "Eis naam"})
	f.SetSheetRow(s, "B4", &[]interface{}{"a", "b", "c"})

	tbl, err := ReadTable(f, s, ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Eis naam", "Column 3", "Eis naam.1"}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, models.Record{"Eis naam": "a", "Column 3": "b", "Eis naam.1": "c"}, tbl.Rows[0])
}

func TestReadTableRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s := "Sheet1"
	f.SetCellValue(s, "A1", "Requirements export")
	f.SetSheetRow(s, "A3", &[]interface{}{"Discipline", "Fase"})
	f.SetSheetRow(s, "A4", &[]interface{}{"Civil", "VO"})
	f.SetSheetRow(s, "A5", &[]interface{}{"Electrical", "DO"})

	_, b, err := ParseRange("A3:B4")
	require.NoError(t, err)

	tbl, err := ReadTable(f, s, ReadOptions{Range: &b})
	require.NoError(t, err)
	assert.Equal(t, []string{"Discipline", "Fase"}, tbl.Columns)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "Civil", tbl.Rows[0]["Discipline"])
}

func TestReadTableEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tbl, err := ReadTable(f, "Sheet1", ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Columns)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"0", int64(0)},
		{"0.5", 0.5},
		{"007", "007"},
		{"-01", "-01"},
		{"hello", "hello"},
		{"", ""},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"-Inf", "-Inf"},
		{"infinity", "infinity"},
		{"1e400", "1e400"},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseCell(t *testing.T) {
	assert.Nil(t, ParseCell(""))
	assert.Equal(t, int64(2), ParseCell("2"))
	assert.Equal(t, "VO", ParseCell("VO"))
}
