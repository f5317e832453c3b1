// Package dedup finds records that repeat the key of an earlier record.
package dedup

import (
	"github.com/zeebo/xxh3"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

// Report lists the duplicate rows found in a table.
type Report struct {
	// Key is the column used to identify records.
	Key string `json:"key"`
	// Count is the number of duplicate rows.
	Count int `json:"count"`
	// Rows holds the 0-based indexes of duplicate rows. The first occurrence
	// of each key is never listed.
	Rows []int `json:"rows,omitempty"`
}

// Find scans t for rows whose key value was already seen (keep-first).
// Rows with an unset key are never duplicates. Text and numbers never match
// each other, while int64 and float64 keys match when numerically equal.
func Find(t *models.Table, key string) Report {
	rep := Report{Key: key}
	seen := make(map[uint64][]string)
	for i, r := range t.Rows {
		v := r.Get(key)
		if models.IsUnset(v) {
			continue
		}
		s := keyOf(v)
		h := xxh3.HashString(s)
		if contains(seen[h], s) {
			rep.Count++
			rep.Rows = append(rep.Rows, i)
			continue
		}
		seen[h] = append(seen[h], s)
	}
	return rep
}

// DropDuplicates returns a new table keeping only the first row for each key.
func DropDuplicates(t *models.Table, key string) *models.Table {
	rep := Find(t, key)
	drop := make(map[int]struct{}, len(rep.Rows))
	for _, i := range rep.Rows {
		drop[i] = struct{}{}
	}
	out := t.Empty()
	for i, r := range t.Rows {
		if _, ok := drop[i]; !ok {
			out.Rows = append(out.Rows, r.Clone())
		}
	}
	return out
}

// keyOf renders v with a type class prefix.
func keyOf(v any) string {
	switch t := v.(type) {
	case string:
		return "s:" + t
	case bool:
		return "b:" + models.FormatValue(v)
	case int, int64, float64:
		return "n:" + models.FormatValue(v)
	default:
		return "?:" + models.FormatValue(v)
	}
}

// contains guards against xxh3 collisions.
func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
