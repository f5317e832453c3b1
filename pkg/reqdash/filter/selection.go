package filter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// ErrUnknownField indicates a selection names a field without a selection
// control.
var ErrUnknownField = errors.New("unknown filter field")

// Selection maps a filterable field to its accepted values. A field that is
// absent or mapped to an empty list imposes no constraint. nil selects the
// unset option.
type Selection map[string][]any

// Validate rejects fields that are not filterable.
func (s Selection) Validate() error {
	for _, f := range s.Fields() {
		if !schema.IsFilterable(f) {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}
	return nil
}

// Fields returns the selection's fields in sorted order.
func (s Selection) Fields() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Active reports whether field carries a constraint.
func (s Selection) Active(field string) bool {
	return len(s[field]) > 0
}

// With returns a copy of s with field set to values.
func (s Selection) With(field string, values ...any) Selection {
	out := make(Selection, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[field] = values
	return out
}
