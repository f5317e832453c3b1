package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch indicates a table lacks one or more required columns.
var ErrSchemaMismatch = errors.New("schema mismatch")

// SchemaMismatchError carries the diagnostics for a failed validation.
type SchemaMismatchError struct {
	Missing []string
	Present []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing %d required column(s): %s; present (%d): %s",
		len(e.Missing), strings.Join(e.Missing, ", "),
		len(e.Present), strings.Join(e.Present, ", "))
}

func (e *SchemaMismatchError) Unwrap() error {
	return ErrSchemaMismatch
}

// NewSchemaMismatchError creates a new SchemaMismatchError.
func NewSchemaMismatchError(missing, present []string) *SchemaMismatchError {
	return &SchemaMismatchError{
		Missing: missing,
		Present: present,
	}
}

// PreconditionError is the panic value raised when an engine operation is
// handed a table that was never validated.
type PreconditionError struct {
	Op    string
	Field string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: table has no %q column; validate it first", e.Op, e.Field)
}

// MustHave panics with a *PreconditionError unless t carries every field.
func MustHave(op string, t interface{ HasColumn(string) bool }, fields ...string) {
	for _, f := range fields {
		if !t.HasColumn(f) {
			panic(&PreconditionError{Op: op, Field: f})
		}
	}
}
