package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as A1:Q500, $A$1:$Q$500 or
// 'Proceseisen'!$A$1:$Q$500. The sheet name, if any, is returned separately.
func ParseRange(ref string) (sheet string, b models.Bounds, err error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return "", models.Bounds{}, fmt.Errorf("invalid range %q: want <start>:<end>", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.Bounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", models.Bounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	if endRow < startRow || endCol < startCol {
		return "", models.Bounds{}, fmt.Errorf("invalid range %q: end precedes start", ref)
	}

	return sheet, models.Bounds{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}
