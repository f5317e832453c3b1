package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/filter"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/parser"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// unsetFlag selects the unset option of a field.
const unsetFlag = "(unset)"

// filterFlags collects the selection flags shared by summary and export.
type filterFlags struct {
	disciplines    []string
	fases          []string
	reviewed       []string
	inScope        []string
	hideDuplicates bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringArrayVar(&f.disciplines, "discipline", nil, "Keep rows with this Discipline (repeatable, "+unsetFlag+" for empty)")
	fl.StringArrayVar(&f.fases, "fase", nil, "Keep rows with this Fase (repeatable, "+unsetFlag+" for empty)")
	fl.StringArrayVar(&f.reviewed, "reviewed", nil, "Keep rows with this Reviewed flag: true, false, or "+unsetFlag)
	fl.StringArrayVar(&f.inScope, "in-scope", nil, "Keep rows with this In scope flag: true, false, or "+unsetFlag)
	fl.BoolVar(&f.hideDuplicates, "hide-duplicates", false, "Drop rows repeating an earlier RBS-ID (ON)")
}

// selection converts the flags into a filter selection.
func (f *filterFlags) selection() (filter.Selection, error) {
	sel := filter.Selection{}
	sel[schema.Discipline] = textValues(f.disciplines)
	sel[schema.Fase] = textValues(f.fases)

	var err error
	if sel[schema.Reviewed], err = flagValues(schema.Reviewed, f.reviewed); err != nil {
		return nil, err
	}
	if sel[schema.InScope], err = flagValues(schema.InScope, f.inScope); err != nil {
		return nil, err
	}
	return sel, nil
}

func textValues(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		if s == unsetFlag {
			out = append(out, nil)
			continue
		}
		out = append(out, parser.ParseCell(s))
	}
	return out
}

func flagValues(field string, in []string) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, s := range in {
		switch s {
		case unsetFlag, "unset":
			out = append(out, nil)
		case "true":
			out = append(out, true)
		case "false":
			out = append(out, false)
		default:
			return nil, fmt.Errorf("invalid --%s value: %s (must be true, false, or %s)",
				flagName(field), s, unsetFlag)
		}
	}
	return out, nil
}

func flagName(field string) string {
	if field == schema.InScope {
		return "in-scope"
	}
	return "reviewed"
}
