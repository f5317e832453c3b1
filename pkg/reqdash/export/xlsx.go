// Package export encodes tables as Excel workbooks.
package export

import (
	"io"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used for exported data.
const DefaultSheet = "Filtered_Data"

// DefaultFileName is the suggested download name for exports.
const DefaultFileName = "filtered_requirements.xlsx"

// ContentType is the MIME type of the encoded workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Build creates a workbook holding t on a single sheet: the header in row 1
// and one row per record, in table order. Unset cells are left empty.
func Build(t *models.Table, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range t.Rows {
		cells := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			cells[j] = r.Get(c)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteXLSX encodes t as an xlsx workbook to w.
func WriteXLSX(w io.Writer, t *models.Table, sheetName string) error {
	f, err := Build(t, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// SaveXLSX encodes t as an xlsx workbook at path.
func SaveXLSX(path string, t *models.Table, sheetName string) error {
	f, err := Build(t, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}
