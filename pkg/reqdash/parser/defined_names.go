package parser

import (
	"strings"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/xuri/excelize/v2"
)

// autoFilterName is the defined name Excel keeps for a sheet's AutoFilter block.
const autoFilterName = "_xlnm._FilterDatabase"

// AutoFilterRanges returns the AutoFilter block of each sheet that has one.
// Returns a map of sheet name to bounds; the first row of a block is its header.
func AutoFilterRanges(f *excelize.File) map[string]models.Bounds {
	result := make(map[string]models.Bounds)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, autoFilterName) {
			continue
		}
		// Format: 'SheetName'!$A$1:$Q$10 or SheetName!$A$1:$Q$10
		sheetName, b, err := ParseRange(dn.RefersTo)
		if err != nil {
			continue
		}
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" {
			result[sheetName] = b
		}
	}

	return result
}
