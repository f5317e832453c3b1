package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetNotFoundError reports a requested sheet that the workbook lacks.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found; available sheets: %s", e.Name, strings.Join(e.Available, ", "))
}

// ResolveSheet returns name if the workbook has it, or the first sheet when
// name is empty.
func ResolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if name == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", &SheetNotFoundError{Name: name, Available: sheets}
}
