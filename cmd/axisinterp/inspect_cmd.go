// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/table"
)

// uniformTolerance is the relative spacing tolerance reported as "uniform".
const uniformTolerance = 1e-9

func newInspectCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the shape and axes of a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(v, cmd.Flags(), map[string]string{
				"input": keyInput,
				"sheet": keySheet,
				"cell":  keyCell,
			}); err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if cfg.Input == "" {
				return fmt.Errorf("inspect: %w", errMissingInput)
			}
			out := cmd.OutOrStdout()

			sheet := table.DefaultSheet
			if len(cfg.Sheets) > 0 {
				sheet = cfg.Sheets[0]
			}
			if isWorkbook(cfg.Input) {
				names, err := table.Sheets(cfg.Input)
				if err != nil {
					return fmt.Errorf("inspect: %w", err)
				}
				fmt.Fprintf(out, "sheets: %s\n", strings.Join(names, ", "))
				fmt.Fprintf(out, "table:  %s!%s\n", sheet, cfg.Cell)
			}

			src, err := adapterFor(cfg.Input, sheet, cfg)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			g, err := src.Read(cmd.Context())
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			describe(out, g)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "input table (.csv, .tsv, .xlsx, .xlsm, or - for stdin)")
	f.StringSlice("sheet", []string{table.DefaultSheet}, "workbook sheet")
	f.String("cell", table.DefaultCell, "workbook cell holding the table label")

	return cmd
}

// describe prints shape, axes and value range of g.
func describe(w io.Writer, g *grid.Grid) {
	fmt.Fprintf(w, "shape:  %d x %d (y by x)\n", g.Rows(), g.Cols())
	describeAxis(w, "x", g.XAxis())
	describeAxis(w, "y", g.YAxis())

	values := g.Dense().ToMat()
	fmt.Fprintf(w, "values: min %g, max %g\n", mat.Min(values), mat.Max(values))
}

func describeAxis(w io.Writer, name string, xs []float64) {
	fmt.Fprintf(w, "%s:      %g .. %g, %d points", name, xs[0], xs[len(xs)-1], len(xs))
	if step, ok := axis.Step(xs, uniformTolerance); ok {
		fmt.Fprintf(w, ", step %g", step)
	}
	fmt.Fprintln(w)
}
