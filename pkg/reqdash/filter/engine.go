// Package filter derives selectable values from a validated requirements
// table and narrows it by caller-chosen selections.
package filter

import (
	"github.com/ukaji3/reqdash-go/pkg/reqdash/coerce"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Engine holds the normalisation rules used while filtering. It keeps no
// table or selection state, so one Engine may serve concurrent callers.
type Engine struct {
	Bools *coerce.BoolTable
}

// NewEngine returns an Engine using bools, or the default table when nil.
func NewEngine(bools *coerce.BoolTable) *Engine {
	if bools == nil {
		bools = coerce.DefaultBoolTable()
	}
	return &Engine{Bools: bools}
}

// normalizer returns the value normaliser for field, nil for text fields.
func (e *Engine) normalizer(field string) func(any) any {
	if schema.IsBoolean(field) {
		return e.Bools.Normalize
	}
	return nil
}

// Options returns the distinct values of field in first-seen order. Boolean
// fields are normalised first; unset cells contribute a single nil option.
//
// t must have passed schema validation.
func (e *Engine) Options(t *models.Table, field string) []any {
	schema.MustHave("filter.Options", t, field)

	norm := e.normalizer(field)
	seen := make(map[any]struct{})
	out := []any{}
	for _, r := range t.Rows {
		k := key(r.Get(field), norm)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// OptionSets returns the sorted options of every filterable field.
func (e *Engine) OptionSets(t *models.Table) map[string][]any {
	sets := make(map[string][]any, len(schema.FilterableFields))
	for _, f := range schema.FilterableFields {
		sets[f] = SortOptions(e.Options(t, f))
	}
	return sets
}

// Predicate compiles sel into a single predicate. Inactive fields are skipped.
func (e *Engine) Predicate(sel Selection) Predicate {
	var preds []Predicate
	for _, f := range sel.Fields() {
		if !sel.Active(f) {
			continue
		}
		preds = append(preds, In(f, sel[f], e.normalizer(f)))
	}
	return All(preds...)
}

// Apply returns the records of t satisfying every active constraint in sel,
// in their original order. The result is a new table; t is not modified.
// No match yields an empty table with t's header.
//
// t must have passed schema validation.
func (e *Engine) Apply(t *models.Table, sel Selection) *models.Table {
	for _, f := range sel.Fields() {
		if sel.Active(f) {
			schema.MustHave("filter.Apply", t, f)
		}
	}
	return Where(t, e.Predicate(sel))
}

// Where returns the records of t accepted by p, copied into a new table.
func Where(t *models.Table, p Predicate) *models.Table {
	out := t.Empty()
	for _, r := range t.Rows {
		if p(r) {
			out.Rows = append(out.Rows, r.Clone())
		}
	}
	return out
}
