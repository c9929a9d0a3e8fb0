// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jason-buaa/AxisInterp/resample"
	"github.com/Jason-buaa/AxisInterp/table"
)

// allSheets selects every sheet of the input workbook.
const allSheets = "*"

func newResampleCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resample",
		Short: "Resample a table onto target axes",
		Long: `Read a table, resample it onto the target axes and write the result.

Each target axis is either a list (--x "0,5,10") or a span (--xspan 0:10:3).
An axis left unset keeps the source axis. Without --output the result is
written to stdout as CSV.

With several --sheet values (or --sheet '*') every sheet of the input
workbook is resampled concurrently and written to the sheet of the same name
in the output workbook.

Examples:
  axisinterp resample -i map.csv --x 0,2.5,5,7.5,10
  axisinterp resample -i book.xlsx --sheet Fuel --cell B2 --yspan 0:100:21 -o out.xlsx
  axisinterp resample -i book.xlsx --sheet '*' --xspan 500:6000:12 -o out.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags(), map[string]string{
				"input":     keyInput,
				"output":    keyOutput,
				"sheet":     keySheet,
				"cell":      keyCell,
				"label":     keyLabel,
				"precision": keyPrecision,
				"order":     keyOrder,
				"jobs":      keyJobs,
				"x":         keyTargetX,
				"y":         keyTargetY,
				"xspan":     keyXSpan,
				"yspan":     keyYSpan,
			}); err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			return runResample(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "input table (.csv, .tsv, .xlsx, .xlsm, or - for stdin)")
	f.StringP("output", "o", "", "output table; stdout CSV when empty")
	f.StringSlice("sheet", []string{table.DefaultSheet}, "workbook sheet(s); '*' for all")
	f.String("cell", table.DefaultCell, "workbook cell holding the table label")
	f.String("label", table.DefaultLabel, "label written to the top-left cell")
	f.Int("precision", table.DefaultPrecision, "significant digits in CSV output; 0 or -1 for shortest exact")
	f.String("order", resample.DefaultOrder.String(), "pass order: rows-first or columns-first")
	f.Int("jobs", resample.DefaultConcurrency, "sheets resampled at once")
	f.String("x", "", "target X axis, e.g. \"0,5,10\"")
	f.String("y", "", "target Y axis")
	f.String("xspan", "", "target X axis as lo:hi:n")
	f.String("yspan", "", "target Y axis as lo:hi:n")

	return cmd
}

// runResample executes one resample run described by cfg.
func runResample(ctx context.Context, cfg config, stdout io.Writer) error {
	if cfg.Input == "" {
		return fmt.Errorf("resample: %w", errMissingInput)
	}
	if isWorkbook(cfg.Input) && (len(cfg.Sheets) > 1 || len(cfg.Sheets) == 1 && cfg.Sheets[0] == allSheets) {
		return runSheets(ctx, cfg)
	}

	sheet := ""
	if len(cfg.Sheets) > 0 {
		sheet = cfg.Sheets[0]
	}
	src, err := adapterFor(cfg.Input, sheet, cfg)
	if err != nil {
		return fmt.Errorf("resample: input: %w", err)
	}
	var dst table.Writer
	if cfg.Output == "" || cfg.Output == table.Stdio {
		dst = &table.CSVFile{Path: table.Stdio, Stdout: stdout, Label: cfg.Label, Precision: cfg.Precision}
	} else if dst, err = adapterFor(cfg.Output, sheet, cfg); err != nil {
		return fmt.Errorf("resample: output: %w", err)
	}

	out, err := table.Run(ctx, src, dst, cfg.TargetX, cfg.TargetY, resample.WithOrder(cfg.Order))
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"output": cfg.Output,
		"rows":   out.Rows(),
		"cols":   out.Cols(),
		"order":  cfg.Order,
	}).Info("resampled table")

	return nil
}

// runSheets resamples several sheets of one workbook in a batch: one read of
// the input workbook, one concurrent resample, one save of the output.
func runSheets(ctx context.Context, cfg config) error {
	if !isWorkbook(cfg.Output) {
		return fmt.Errorf("resample: %w, got %q", errSheetOutput, cfg.Output)
	}
	var names []string
	if !(len(cfg.Sheets) == 1 && cfg.Sheets[0] == allSheets) {
		names = cfg.Sheets
	}

	names, srcs, err := table.ReadSheets(ctx, cfg.Input, cfg.Cell, names...)
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}
	reqs := make([]resample.Request, len(srcs))
	for i, g := range srcs {
		reqs[i] = resample.Request{Source: g, TargetX: cfg.TargetX, TargetY: cfg.TargetY}
		if len(cfg.TargetX) == 0 {
			reqs[i].TargetX = g.XAxis()
		}
		if len(cfg.TargetY) == 0 {
			reqs[i].TargetY = g.YAxis()
		}
	}
	logrus.WithFields(logrus.Fields{"input": cfg.Input, "sheets": len(names), "jobs": cfg.Jobs}).Info("resampling sheets")

	outs, err := resample.ResampleBatch(ctx, reqs, resample.WithOrder(cfg.Order), resample.WithConcurrency(cfg.Jobs))
	if err != nil {
		return fmt.Errorf("resample: %w", err)
	}
	if err = table.WriteSheets(ctx, cfg.Output, cfg.Cell, cfg.Label, names, outs); err != nil {
		return fmt.Errorf("resample: %w", err)
	}
	for i, name := range names {
		logrus.WithFields(logrus.Fields{"sheet": name, "rows": outs[i].Rows(), "cols": outs[i].Cols()}).Info("resampled sheet")
	}

	return nil
}
