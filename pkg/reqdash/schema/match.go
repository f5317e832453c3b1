package schema

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MatchMode selects how header cells are compared with required names.
type MatchMode string

const (
	// MatchExact compares names byte for byte.
	MatchExact MatchMode = "exact"
	// MatchFold ignores case differences (Unicode case folding on NFC text).
	MatchFold MatchMode = "fold"
	// MatchTrim ignores leading and trailing whitespace.
	MatchTrim MatchMode = "trim"
	// MatchLoose combines MatchTrim and MatchFold.
	MatchLoose MatchMode = "loose"
)

// ParseMatchMode converts a flag or config value into a MatchMode.
// The empty string selects MatchExact.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "", MatchExact:
		return MatchExact, nil
	case MatchFold, MatchTrim, MatchLoose:
		return MatchMode(s), nil
	default:
		return "", fmt.Errorf("invalid column match mode: %s (must be exact, fold, trim, or loose)", s)
	}
}

// key returns the comparison key for name under mode.
func (m MatchMode) key(name string) string {
	if m == MatchTrim || m == MatchLoose {
		name = strings.TrimSpace(name)
	}
	if m == MatchFold || m == MatchLoose {
		name = cases.Fold().String(norm.NFC.String(name))
	}
	return name
}
