package reqdash

import (
	"github.com/ukaji3/reqdash-go/pkg/reqdash/dedup"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/filter"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/kpi"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Dataset is a validated requirements table plus what was learned while
// loading it. It is read-only; every view is derived on demand.
type Dataset struct {
	BookName   string
	SheetName  string
	Table      *models.Table
	Duplicates dedup.Report

	engine *filter.Engine
	agg    *kpi.Aggregator
}

// Options returns the sorted selectable values of each filterable field,
// taken from the full table.
func (d *Dataset) Options() map[string][]any {
	return d.engine.OptionSets(d.Table)
}

// Filter applies sel to the table, first dropping repeated keys when
// hideDuplicates is set.
func (d *Dataset) Filter(sel filter.Selection, hideDuplicates bool) (*models.Table, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	t := d.Table
	if hideDuplicates {
		t = dedup.DropDuplicates(t, d.Duplicates.Key)
	}
	return d.engine.Apply(t, sel), nil
}

// Summary returns the headline counts over t.
func (d *Dataset) Summary(t *models.Table) models.KpiSummary {
	return d.agg.Summarize(t)
}

// View builds the full dashboard for a selection.
func (d *Dataset) View(sel filter.Selection, hideDuplicates bool) (*models.Dashboard, error) {
	rows, err := d.Filter(sel, hideDuplicates)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		BookName:     d.BookName,
		SheetName:    d.SheetName,
		Options:      d.Options(),
		Duplicates:   d.Duplicates.Count,
		Summary:      d.agg.Summarize(rows),
		Completeness: d.agg.Completeness(rows),
		Breakdowns: []models.Breakdown{
			d.agg.CountBy(rows, schema.Discipline),
			d.agg.CountBy(rows, schema.Fase),
		},
		Rows: rows,
	}, nil
}
