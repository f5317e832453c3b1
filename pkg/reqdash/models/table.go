package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Table is an ordered sequence of records plus the header they were read with.
// A Table is treated as immutable once built; derived views are new Tables.
type Table struct {
	// Columns is the header in sheet order.
	Columns []string `json:"columns"`
	// Rows holds the records in insertion order.
	Rows []Record `json:"rows"`
}

// NewTable builds a table from a header and rows.
func NewTable(columns []string, rows []Record) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the values of one field in row order.
func (t *Table) Column(name string) []any {
	values := make([]any, 0, t.Len())
	for _, r := range t.Rows {
		values = append(values, r.Get(name))
	}
	return values
}

// Empty returns a table with the same header and no rows.
func (t *Table) Empty() *Table {
	return &Table{Columns: append([]string(nil), t.Columns...), Rows: []Record{}}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() (*Table, error) {
	var out Table
	if err := deepcopy.Copy(&out, t); err != nil {
		return nil, err
	}
	if out.Rows == nil {
		out.Rows = []Record{}
	}
	return &out, nil
}
