// Package models defines data structures for the requirements dashboard.
package models

import (
	"strconv"
)

// Record is a single data row keyed by column name.
// Values are nil (unset), string, bool, int64 or float64.
type Record map[string]any

// Get returns the value stored under field, or nil when the field is absent.
func (r Record) Get(field string) any {
	if r == nil {
		return nil
	}
	return r[field]
}

// Clone returns a copy of the record. Values are scalars, so a map copy is
// enough to make the result independent of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsUnset reports whether v counts as an unset cell.
func IsUnset(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// FormatValue renders a cell value for display and keying.
// Unset values render as the empty string.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return ""
	}
}
