// Package main provides the CLI entry point for reqdash.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/reqdash-go/pkg/reqdash"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/config"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

var (
	configPath  string
	sheet       string
	cellRange   string
	autoFilter  bool
	columnMatch string
	verbose     bool
	pretty      bool

	logger *zap.Logger
	cfg    config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reqdash",
		Short: "Validate, filter and summarize requirements workbooks",
		Long: `reqdash checks that an Excel requirements list carries the 17 required
columns, then lists filter values, computes review metrics and exports
filtered subsets.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&sheet, "sheet", "", "Sheet to read (default: first sheet)")
	pf.StringVar(&cellRange, "range", "", "Cell range holding the table, e.g. A1:Q500")
	pf.BoolVar(&autoFilter, "autofilter", false, "Read the sheet's AutoFilter block when no range is given")
	pf.StringVar(&columnMatch, "column-match", "", "Header matching: exact, fold, trim, or loose")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newValidateCmd(),
		newOptionsCmd(),
		newSummaryCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if sheet != "" {
		cfg.Sheet = sheet
	}
	if cellRange != "" {
		cfg.Range = cellRange
	}
	if autoFilter {
		cfg.AutoFilter = true
	}
	if columnMatch != "" {
		cfg.ColumnMatch = columnMatch
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func loadOptions() (reqdash.Options, error) {
	opts, err := reqdash.OptionsFromConfig(cfg)
	if err != nil {
		return opts, err
	}
	opts.Logger = logger
	return opts, nil
}

func load(path string) (*reqdash.Dataset, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	logger.Debug("Loading workbook",
		zap.String("path", path),
		zap.String("column_match", string(opts.ColumnMatch)))
	return reqdash.Load(path, opts)
}

// requiredColumnsHelp is shown under the validate command.
func requiredColumnsHelp() string {
	s := "Required columns:\n"
	for i, f := range schema.Fields {
		s += fmt.Sprintf("  %2d. %s\n", i+1, f)
	}
	return s
}
