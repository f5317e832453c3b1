package kpi

import (
	"sort"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// CountBy counts records per value of field. Unset cells are left out.
// Counts are ordered by count descending, ties by value text ascending.
func (a *Aggregator) CountBy(t *models.Table, field string) models.Breakdown {
	schema.MustHave("kpi.CountBy", t, field)

	idx := make(map[any]int)
	var counts []models.ValueCount
	for _, r := range t.Rows {
		v := r.Get(field)
		if schema.IsBoolean(field) {
			v = a.Bools.Normalize(v)
		}
		if models.IsUnset(v) {
			continue
		}
		if i, ok := idx[v]; ok {
			counts[i].Count++
			continue
		}
		idx[v] = len(counts)
		counts = append(counts, models.ValueCount{Value: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return models.FormatValue(counts[i].Value) < models.FormatValue(counts[j].Value)
	})
	if counts == nil {
		counts = []models.ValueCount{}
	}
	return models.Breakdown{Field: field, Counts: counts}
}
