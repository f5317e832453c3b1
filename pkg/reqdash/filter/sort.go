package filter

import (
	"sort"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

// SortOptions orders option values for display: booleans (false first), then
// numbers, then text, with the unset option last. The input is not modified.
func SortOptions(opts []any) []any {
	out := append([]any(nil), opts...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		if ri != rj {
			return ri < rj
		}
		switch a := out[i].(type) {
		case bool:
			return !a && out[j].(bool)
		case int64, float64:
			return number(out[i]) < number(out[j])
		default:
			return models.FormatValue(out[i]) < models.FormatValue(out[j])
		}
	})
	return out
}

func rank(v any) int {
	switch v.(type) {
	case bool:
		return 0
	case int64, float64:
		return 1
	case nil:
		return 3
	default:
		return 2
	}
}

func number(v any) float64 {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case float64:
		return t
	}
	return 0
}
