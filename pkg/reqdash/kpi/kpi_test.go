package kpi

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

func req(discipline, fase any, reviewed, inScope any) models.Record {
	r := models.Record{}
	for _, f := range schema.Fields {
		r[f] = nil
	}
	r[schema.Discipline] = discipline
	r[schema.Fase] = fase
	r[schema.Reviewed] = reviewed
	r[schema.InScope] = inScope
	return r
}

func table(rows ...models.Record) *models.Table {
	return models.NewTable(append([]string(nil), schema.Fields...), rows)
}

func TestSummarize(t *testing.T) {
	tbl := table(
		req("Civil", "VO", true, true),
		req("Civil", "DO", "Ja", false),
		req("Civil", "VO", false, "yes"),
	)

	s := NewAggregator(nil).Summarize(tbl)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.ReviewedCount)
	assert.Equal(t, 2, s.InScopeCount)
	assert.InDelta(t, 66.6667, s.ReviewProgressPct, 0.001)
	assert.Equal(t, 66.67, s.RoundedPct(2))
	assert.Equal(t, 66.7, s.RoundedPct(1))
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewAggregator(nil).Summarize(table())

	assert.Equal(t, models.KpiSummary{}, s)
	assert.Equal(t, 0.0, s.ReviewProgressPct)
}

func TestSummarizeUnsetCountsAsFalse(t *testing.T) {
	s := NewAggregator(nil).Summarize(table(
		req("Civil", "VO", nil, "?"),
		req("Civil", "VO", "", int64(1)),
	))

	assert.Equal(t, 0, s.ReviewedCount)
	assert.Equal(t, 1, s.InScopeCount)
	assert.Equal(t, 0.0, s.ReviewProgressPct)
}

func TestSummarizePanicsWithoutFlagColumns(t *testing.T) {
	assert.Panics(t, func() {
		NewAggregator(nil).Summarize(models.NewTable([]string{schema.Discipline}, nil))
	})
}

func TestSummarizeParallelMatchesSequential(t *testing.T) {
	var rows []models.Record
	for i := 0; i < 103; i++ {
		rows = append(rows, req("Civil", "VO", i%3 == 0, i%2 == 0))
	}
	tbl := table(rows...)
	a := NewAggregator(nil)
	want := a.Summarize(tbl)

	for _, parts := range []int{-1, 0, 1, 2, 7, 103, 500} {
		got, err := a.SummarizeParallel(context.Background(), tbl, parts)
		require.NoError(t, err, "partitions %d", parts)
		assert.Equal(t, want, got, "partitions %d", parts)
	}

	got, err := a.SummarizeParallel(context.Background(), table(), 4)
	require.NoError(t, err)
	assert.Equal(t, models.KpiSummary{}, got)
}

func TestSummarizeParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAggregator(nil).SummarizeParallel(ctx, table(req("Civil", "VO", true, true)), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompleteness(t *testing.T) {
	r1 := req("Civil", "VO", true, true)
	r1[schema.ToegewezenAanObject] = "Brug 1"
	r1[schema.EisDefinitie] = "Functioneel"
	r2 := req(nil, "", false, "nee")
	r3 := req("Civil", nil, false, "ja")

	got := NewAggregator(nil).Completeness(table(r1, r2, r3))
	require.Len(t, got, len(CompletenessFields))

	want := map[string]int{
		schema.InScope:             2,
		schema.Discipline:          2,
		schema.Fase:                1,
		schema.ToegewezenAanObject: 1,
		schema.EisDefinitie:        1,
	}
	for i, c := range got {
		assert.Equal(t, CompletenessFields[i], c.Field)
		assert.Equal(t, want[c.Field], c.Filled, c.Field)
		assert.Equal(t, 3, c.Total)
		assert.InDelta(t, float64(want[c.Field])/3*100, c.Pct, 1e-9)
	}

	for _, c := range NewAggregator(nil).Completeness(table()) {
		assert.Equal(t, 0.0, c.Pct, fmt.Sprintf("%s on empty table", c.Field))
	}
}

func TestCountBy(t *testing.T) {
	tbl := table(
		req("Electrical", "VO", true, true),
		req("Civil", "DO", true, true),
		req("Civil", nil, "nee", true),
		req(nil, "DO", "?", true),
		req("Architecture", "DO", "ja", true),
	)
	a := NewAggregator(nil)

	disc := a.CountBy(tbl, schema.Discipline)
	assert.Equal(t, schema.Discipline, disc.Field)
	assert.Equal(t, []models.ValueCount{
		{Value: "Civil", Count: 2},
		{Value: "Architecture", Count: 1},
		{Value: "Electrical", Count: 1},
	}, disc.Counts)

	rev := a.CountBy(tbl, schema.Reviewed)
	assert.Equal(t, []models.ValueCount{
		{Value: true, Count: 3},
		{Value: false, Count: 1},
	}, rev.Counts)

	assert.Empty(t, a.CountBy(table(), schema.Fase).Counts)
}
