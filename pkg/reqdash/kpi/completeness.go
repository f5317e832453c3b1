package kpi

import (
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// CompletenessFields are the fields tracked for data completeness, in
// display order.
var CompletenessFields = []string{
	schema.InScope,
	schema.Discipline,
	schema.Fase,
	schema.ToegewezenAanObject,
	schema.EisDefinitie,
}

// Completeness reports how many records fill each of CompletenessFields.
// Boolean fields count true values; other fields count non-empty values.
func (a *Aggregator) Completeness(t *models.Table) []models.FieldCompleteness {
	schema.MustHave("kpi.Completeness", t, CompletenessFields...)

	out := make([]models.FieldCompleteness, 0, len(CompletenessFields))
	for _, f := range CompletenessFields {
		filled := 0
		for _, r := range t.Rows {
			v := r.Get(f)
			if schema.IsBoolean(f) {
				if a.Bools.IsTrue(v) {
					filled++
				}
			} else if !models.IsUnset(v) {
				filled++
			}
		}
		fc := models.FieldCompleteness{Field: f, Filled: filled, Total: t.Len()}
		if fc.Total > 0 {
			fc.Pct = float64(filled) / float64(fc.Total) * 100
		}
		out = append(out, fc)
	}
	return out
}
