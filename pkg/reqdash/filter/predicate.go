package filter

import "github.com/ukaji3/reqdash-go/pkg/reqdash/models"

// Predicate decides whether a record survives a filter.
type Predicate func(models.Record) bool

// All combines predicates with logical AND. With no predicates every record
// passes.
func All(preds ...Predicate) Predicate {
	return func(r models.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// In returns a predicate accepting records whose field value, after norm, is
// one of accepted. A nil norm compares raw values.
func In(field string, accepted []any, norm func(any) any) Predicate {
	set := make(map[any]struct{}, len(accepted))
	for _, v := range accepted {
		set[key(v, norm)] = struct{}{}
	}
	return func(r models.Record) bool {
		_, ok := set[key(r.Get(field), norm)]
		return ok
	}
}

// key maps a value onto a comparable map key. Empty text is folded into nil so
// blank cells and missing cells form one unset option.
func key(v any, norm func(any) any) any {
	if norm != nil {
		v = norm(v)
	}
	if models.IsUnset(v) {
		return nil
	}
	switch t := v.(type) {
	case int:
		return int64(t)
	case string, bool, int64, float64:
		return t
	default:
		return models.FormatValue(t)
	}
}
