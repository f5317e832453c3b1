// Package coerce normalises spreadsheet flag cells to booleans.
//
// Flag columns arrive as whatever the sheet author typed: native booleans,
// 0/1, or text such as "Ja"/"Nee". A BoolTable maps those onto true and false;
// anything it cannot place is treated as unset rather than as an error.
package coerce

import (
	"sort"
	"strings"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

// BoolTable lists the text spellings accepted for true and false.
// Spellings are compared after trimming and lower-casing.
// Build one with NewBoolTable; the zero value matches nothing.
type BoolTable struct {
	truthy map[string]struct{}
	falsy  map[string]struct{}
}

// Default spellings, English and Dutch.
var (
	DefaultTruthy = []string{"true", "yes", "ja", "y", "j", "t", "1", "x"}
	DefaultFalsy  = []string{"false", "no", "nee", "n", "f", "0"}
)

// DefaultBoolTable returns the table used when no configuration is given.
func DefaultBoolTable() *BoolTable {
	return NewBoolTable(DefaultTruthy, DefaultFalsy)
}

// NewBoolTable builds a table from explicit spellings. A spelling listed in
// both sets is dropped from both.
func NewBoolTable(truthy, falsy []string) *BoolTable {
	b := &BoolTable{
		truthy: toSet(truthy),
		falsy:  toSet(falsy),
	}
	for k := range b.truthy {
		if _, both := b.falsy[k]; both {
			delete(b.truthy, k)
			delete(b.falsy, k)
		}
	}
	return b
}

// Spellings returns the normalised spellings for true and false, sorted.
func (b *BoolTable) Spellings() (truthy, falsy []string) {
	return sortedKeys(b.truthy), sortedKeys(b.falsy)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return m
}

// Bool maps v onto a boolean. ok is false when v is unset or cannot be
// confidently read as either value.
func (b *BoolTable) Bool(v any) (value bool, ok bool) {
	if b == nil {
		b = defaultTable
	}
	switch t := v.(type) {
	case nil:
		return false, false
	case bool:
		return t, true
	case int64:
		return intBool(t)
	case int:
		return intBool(int64(t))
	case float64:
		if t == 0 || t == 1 {
			return t == 1, true
		}
		return false, false
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if s == "" {
			return false, false
		}
		if _, hit := b.truthy[s]; hit {
			return true, true
		}
		if _, hit := b.falsy[s]; hit {
			return false, true
		}
	}
	return false, false
}

func intBool(i int64) (bool, bool) {
	switch i {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}

// Normalize returns true, false, or nil for an unset or ambiguous value.
func (b *BoolTable) Normalize(v any) any {
	if value, ok := b.Bool(v); ok {
		return value
	}
	return nil
}

// IsTrue reports whether v normalises to true. Unset counts as false.
func (b *BoolTable) IsTrue(v any) bool {
	value, ok := b.Bool(v)
	return ok && value
}

// NormalizeTable returns a deep copy of t with the given fields normalised.
// t itself is left untouched.
func (b *BoolTable) NormalizeTable(t *models.Table, fields ...string) (*models.Table, error) {
	out, err := t.Clone()
	if err != nil {
		return nil, err
	}
	for _, r := range out.Rows {
		for _, f := range fields {
			if _, ok := r[f]; ok {
				r[f] = b.Normalize(r[f])
			}
		}
	}
	return out, nil
}

var defaultTable = DefaultBoolTable()
