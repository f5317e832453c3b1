package reqdash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/dedup"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/filter"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/kpi"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/parser"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Load opens an Excel file and loads its requirements table.
func Load(path string, opts Options) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewLoadError("", StageOpen, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError("", StageOpen, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	return LoadFile(f, filepath.Base(path), opts)
}

// LoadFile loads the requirements table from an open workbook.
//
// The sheet is read, checked against the required columns, and its flag
// columns are normalised to true, false or unset. Duplicate keys are
// reported on the Dataset, not removed.
func LoadFile(f *excelize.File, bookName string, opts Options) (*Dataset, error) {
	log := opts.logger()

	sheetName := opts.Sheet
	var readOpts parser.ReadOptions
	if opts.Range != "" {
		rangeSheet, bounds, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, NewLoadError(sheetName, StageRead, err)
		}
		if sheetName == "" {
			sheetName = rangeSheet
		}
		readOpts.Range = &bounds
	}

	sheetName, err := parser.ResolveSheet(f, sheetName)
	if err != nil {
		return nil, NewLoadError(opts.Sheet, StageSheet, err)
	}
	if readOpts.Range == nil && opts.UseAutoFilter {
		if b, ok := parser.AutoFilterRanges(f)[sheetName]; ok {
			log.Debug("Using AutoFilter block", zap.String("sheet", sheetName), zap.Any("bounds", b))
			readOpts.Range = &b
		}
	}
	log.Info("Reading sheet", zap.String("book", bookName), zap.String("sheet", sheetName))

	raw, err := parser.ReadTable(f, sheetName, readOpts)
	if err != nil {
		return nil, NewLoadError(sheetName, StageRead, err)
	}
	if raw.Len() == 0 {
		return nil, NewLoadError(sheetName, StageRead, ErrEmptySheet)
	}

	res := schema.Validate(raw, opts.ColumnMatch)
	if !res.Valid() {
		log.Warn("Schema mismatch",
			zap.String("sheet", sheetName),
			zap.Strings("missing", res.Missing))
		return nil, NewLoadError(sheetName, StageValidate, res.Err())
	}

	bools := opts.boolTable()
	table, err := bools.NormalizeTable(res.Table, schema.BooleanFields...)
	if err != nil {
		return nil, NewLoadError(sheetName, StageNormalize, err)
	}

	dups := dedup.Find(table, opts.duplicateKey())
	log.Info("Validation passed",
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns)),
		zap.Int("duplicates", dups.Count))

	return &Dataset{
		BookName:   bookName,
		SheetName:  sheetName,
		Table:      table,
		Duplicates: dups,
		engine:     filter.NewEngine(bools),
		agg:        kpi.NewAggregator(bools),
	}, nil
}

// NewDataset wraps an already validated table. It panics if t lacks a
// required column.
func NewDataset(t *models.Table, opts Options) *Dataset {
	schema.MustHave("reqdash.NewDataset", t, schema.Fields...)
	bools := opts.boolTable()
	return &Dataset{
		Table:      t,
		Duplicates: dedup.Find(t, opts.duplicateKey()),
		engine:     filter.NewEngine(bools),
		agg:        kpi.NewAggregator(bools),
	}
}
