// Package reqdash loads requirements workbooks and builds filtered dashboard
// views over them.
package reqdash

import (
	"go.uber.org/zap"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/coerce"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/config"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

// Options configures loading behavior.
type Options struct {
	// Sheet is the sheet to read. If empty, the first sheet is used.
	Sheet string
	// Range optionally restricts reading to a cell block such as A1:Q500.
	// A sheet-qualified range also selects the sheet when Sheet is empty.
	Range string
	// UseAutoFilter reads the sheet's AutoFilter block when Range is empty.
	UseAutoFilter bool
	// ColumnMatch selects how header cells are matched to required names.
	ColumnMatch schema.MatchMode
	// Bools is the flag normalisation table. If nil, the default is used.
	Bools *coerce.BoolTable
	// DuplicateKey is the column used for duplicate detection.
	// If empty, defaults to RBS-ID (ON).
	DuplicateKey string
	// Logger receives load diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		ColumnMatch:  schema.MatchExact,
		DuplicateKey: schema.RBSIDON,
	}
}

// OptionsFromConfig converts a file configuration into load options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	mode, err := cfg.MatchMode()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Sheet:         cfg.Sheet,
		Range:         cfg.Range,
		UseAutoFilter: cfg.AutoFilter,
		ColumnMatch:   mode,
		Bools:         cfg.BoolTable(),
		DuplicateKey:  cfg.DuplicateKey,
	}, nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) boolTable() *coerce.BoolTable {
	if o.Bools != nil {
		return o.Bools
	}
	return coerce.DefaultBoolTable()
}

func (o Options) duplicateKey() string {
	if o.DuplicateKey != "" {
		return o.DuplicateKey
	}
	return schema.RBSIDON
}
