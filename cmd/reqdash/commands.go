package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/export"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/output"
	"github.com/ukaji3/reqdash-go/pkg/reqdash/schema"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input.xlsx]",
		Short: "Check that a workbook has the required columns",
		Long:  "Check that a workbook has the required columns.\n\n" + requiredColumnsHelp(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(args[0])
			var mismatch *schema.SchemaMismatchError
			if errors.As(err, &mismatch) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Missing %d required column(s):\n", len(mismatch.Missing))
				for _, m := range mismatch.Missing {
					fmt.Fprintf(out, "  - %s\n", m)
				}
				fmt.Fprintf(out, "Available columns in file (%d total):\n", len(mismatch.Present))
				for _, p := range mismatch.Present {
					fmt.Fprintf(out, "  - %s\n", p)
				}
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "valid: sheet %q, %d requirements, %d columns\n",
				ds.SheetName, ds.Table.Len(), len(ds.Table.Columns))
			if ds.Duplicates.Count > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %d duplicate entries based on %s\n",
					ds.Duplicates.Count, ds.Duplicates.Key)
			}
			return nil
		},
	}
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options [input.xlsx]",
		Short: "List the selectable values of each filter field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(args[0])
			if err != nil {
				return err
			}
			data, err := output.OptionsToJSON(ds.Options(), pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var ff filterFlags
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary [input.xlsx]",
		Short: "Show review metrics for the filtered requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(args[0])
			if err != nil {
				return err
			}
			sel, err := ff.selection()
			if err != nil {
				return err
			}
			view, err := ds.View(sel, ff.hideDuplicates)
			if err != nil {
				return err
			}
			logger.Debug("Filter applied", zap.Int("rows", view.Summary.Total))

			if asJSON {
				data, err := output.DashboardToJSON(view, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printSummary(cmd, view)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full dashboard as JSON")
	return cmd
}

func newExportCmd() *cobra.Command {
	var ff filterFlags
	var outputPath, sheetName string
	cmd := &cobra.Command{
		Use:   "export [input.xlsx]",
		Short: "Write the filtered requirements to a new workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load(args[0])
			if err != nil {
				return err
			}
			sel, err := ff.selection()
			if err != nil {
				return err
			}
			rows, err := ds.Filter(sel, ff.hideDuplicates)
			if err != nil {
				return err
			}

			if outputPath == "-" {
				return export.WriteXLSX(os.Stdout, rows, sheetName)
			}
			if err := export.SaveXLSX(outputPath, rows, sheetName); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Info("Exported", zap.String("path", outputPath), zap.Int("rows", rows.Len()))
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", export.DefaultFileName, "Output file path (- for stdout)")
	cmd.Flags().StringVar(&sheetName, "sheet-name", export.DefaultSheet, "Sheet name in the exported workbook")
	return cmd
}

func printSummary(cmd *cobra.Command, v *models.Dashboard) {
	out := cmd.OutOrStdout()
	s := v.Summary
	fmt.Fprintf(out, "Total Requirements: %d\n", s.Total)
	fmt.Fprintf(out, "Reviewed:           %d\n", s.ReviewedCount)
	fmt.Fprintf(out, "In Scope:           %d\n", s.InScopeCount)
	fmt.Fprintf(out, "Review Progress:    %.1f%%\n", s.RoundedPct(1))

	fmt.Fprintln(out, "\nData completeness:")
	for _, c := range v.Completeness {
		fmt.Fprintf(out, "  %-24s %d/%d (%.1f%%)\n", c.Field, c.Filled, c.Total, c.Pct)
	}

	for _, b := range v.Breakdowns {
		fmt.Fprintf(out, "\nRequirements by %s:\n", b.Field)
		if len(b.Counts) == 0 {
			fmt.Fprintln(out, "  No data to display")
		}
		for _, c := range b.Counts {
			fmt.Fprintf(out, "  %-24s %d\n", models.FormatValue(c.Value), c.Count)
		}
	}
}
