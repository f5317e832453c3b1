package schema

import (
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

// Result is the outcome of Validate.
type Result struct {
	// Table is the validated table, nil when validation failed.
	Table *models.Table
	// Missing lists required columns not found, in canonical order.
	Missing []string
	// Present lists the table's columns as given.
	Present []string
}

// Valid reports whether every required column was found.
func (r Result) Valid() bool {
	return len(r.Missing) == 0
}

// Err returns a *SchemaMismatchError for an invalid result and nil otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return NewSchemaMismatchError(r.Missing, r.Present)
}

// Validate checks that t carries every required column.
//
// Extra columns are tolerated. Under MatchExact a valid table is returned
// unchanged; under the looser modes the matched header cells are renamed to
// their canonical names so later lookups by name succeed.
func Validate(t *models.Table, mode MatchMode) Result {
	var columns []string
	if t != nil {
		columns = t.Columns
	}
	present := append([]string{}, columns...)

	exact := make(map[string]bool, len(columns))
	for _, c := range columns {
		exact[c] = true
	}

	// canonical key -> first header cell that is not itself a required name
	seen := make(map[string]string, len(columns))
	for _, c := range columns {
		if contains(Fields, c) {
			continue
		}
		k := mode.key(c)
		if _, dup := seen[k]; !dup {
			seen[k] = c
		}
	}

	// An exact header always wins, so a rename never targets a name that
	// is already present.
	var missing []string
	rename := make(map[string]string)
	for _, f := range Fields {
		if exact[f] {
			continue
		}
		got, ok := seen[mode.key(f)]
		if !ok {
			missing = append(missing, f)
			continue
		}
		rename[got] = f
	}

	if len(missing) > 0 {
		return Result{Missing: missing, Present: present}
	}
	if len(rename) == 0 {
		return Result{Table: t, Present: present}
	}
	return Result{Table: canonicalize(t, rename), Present: present}
}

// canonicalize returns a copy of t with header cells renamed per rename.
func canonicalize(t *models.Table, rename map[string]string) *models.Table {
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		if to, ok := rename[c]; ok {
			cols[i] = to
		} else {
			cols[i] = c
		}
	}
	rows := make([]models.Record, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(models.Record, len(r))
		for k, v := range r {
			if to, ok := rename[k]; ok {
				k = to
			}
			nr[k] = v
		}
		rows[i] = nr
	}
	return models.NewTable(cols, rows)
}
