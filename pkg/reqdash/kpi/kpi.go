// Package kpi computes summary counts over a (filtered) requirements table.
package kpi

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/coerce"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Aggregator counts flags using a boolean normalisation table.
type Aggregator struct {
	Bools *coerce.BoolTable
}

// NewAggregator returns an Aggregator using bools, or the default table when nil.
func NewAggregator(bools *coerce.BoolTable) *Aggregator {
	if bools == nil {
		bools = coerce.DefaultBoolTable()
	}
	return &Aggregator{Bools: bools}
}

// counts is the associative partial result of a summary.
type counts struct {
	total, reviewed, inScope int
}

func (c counts) add(o counts) counts {
	return counts{c.total + o.total, c.reviewed + o.reviewed, c.inScope + o.inScope}
}

func (c counts) summary() models.KpiSummary {
	s := models.KpiSummary{
		Total:         c.total,
		ReviewedCount: c.reviewed,
		InScopeCount:  c.inScope,
	}
	if c.total > 0 {
		s.ReviewProgressPct = float64(c.reviewed) / float64(c.total) * 100
	}
	return s
}

func (a *Aggregator) count(rows []models.Record) counts {
	c := counts{total: len(rows)}
	for _, r := range rows {
		if a.Bools.IsTrue(r.Get(schema.Reviewed)) {
			c.reviewed++
		}
		if a.Bools.IsTrue(r.Get(schema.InScope)) {
			c.inScope++
		}
	}
	return c
}

// Summarize returns the headline counts for t. An empty table yields a zero
// summary with ReviewProgressPct 0.
func (a *Aggregator) Summarize(t *models.Table) models.KpiSummary {
	schema.MustHave("kpi.Summarize", t, schema.Reviewed, schema.InScope)
	return a.count(t.Rows).summary()
}

// SummarizeParallel splits t into up to partitions chunks, counts them
// concurrently and sums the partial counts. The result equals Summarize(t).
func (a *Aggregator) SummarizeParallel(ctx context.Context, t *models.Table, partitions int) (models.KpiSummary, error) {
	schema.MustHave("kpi.SummarizeParallel", t, schema.Reviewed, schema.InScope)
	if partitions < 1 {
		partitions = 1
	}
	n := t.Len()
	size := (n + partitions - 1) / partitions
	if size == 0 {
		return counts{}.summary(), nil
	}

	parts := make([]counts, (n+size-1)/size)
	g, ctx := errgroup.WithContext(ctx)
	for i := range parts {
		lo, hi := i*size, min((i+1)*size, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = a.count(t.Rows[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.KpiSummary{}, err
	}

	var total counts
	for _, p := range parts {
		total = total.add(p)
	}
	return total.summary(), nil
}
