// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/matrix"
)

const (
	// DefaultLabel is written to the top-left cell by Encode.
	DefaultLabel = "Y/X"

	// DefaultPrecision selects the shortest representation that parses back
	// to the same float64.
	DefaultPrecision = -1
)

const panicPrecisionInvalid = "table: WithPrecision: precision must be >= -1"

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	label     string
	precision int
}

// WithLabel sets the top-left cell text.
func WithLabel(label string) EncodeOption {
	return func(o *encodeOptions) { o.label = label }
}

// WithPrecision sets the number of significant digits ('g' format) used for
// every number; -1 means shortest round-trip.
//
// Panics if p < -1.
func WithPrecision(p int) EncodeOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *encodeOptions) { o.precision = p }
}

func gatherEncodeOptions(user ...EncodeOption) encodeOptions {
	o := encodeOptions{label: DefaultLabel, precision: DefaultPrecision}
	for _, set := range user {
		set(&o)
	}

	return o
}

// Decode parses a cell table into a grid under target rules: an axis may
// hold a single point, so every table Encode produces decodes again. Resample
// applies the source rules when the grid is used as input.
//
// Implementation:
//   - Stage 1: trim whitespace, drop blank trailing rows and blank trailing
//     cells of each row (spreadsheet exports pad both).
//   - Stage 2: every body row must be as wide as the header.
//   - Stage 3: parse header cells 1.. as X, column 0 of body rows as Y and
//     the remaining cells as values, reporting the first bad cell in A1 form.
//   - Stage 4: both axes pass axis.ValidateTarget, every value is finite.
//
// Errors: ErrEmptyTable, ErrRaggedRow, ErrBadCell, axis.ErrInsufficientPoints,
// axis.ErrNotMonotonic, and axis.ErrNonFinite (also matching matrix.ErrNaNInf).
func Decode(cells [][]string) (*grid.Grid, error) {
	rows := trimTable(cells)
	if dropped := len(cells) - len(rows); dropped > 0 {
		logrus.WithField("rows", dropped).Debug("table: dropped blank trailing rows")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table.Decode: %w", ErrEmptyTable)
	}

	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return nil, fmt.Errorf("table.Decode: row %d has %d cells, header has %d: %w",
				i+1, len(rows[i]), width, ErrRaggedRow)
		}
	}

	xs := make([]float64, 0, max(width-1, 0))
	for j := 1; j < width; j++ {
		v, err := parseCell(rows[0][j], 0, j)
		if err != nil {
			return nil, fmt.Errorf("table.Decode: header: %w", err)
		}
		xs = append(xs, v)
	}

	ys := make([]float64, 0, len(rows)-1)
	values := make([][]float64, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		y, err := parseCell(rows[i][0], i, 0)
		if err != nil {
			return nil, fmt.Errorf("table.Decode: %w", err)
		}
		ys = append(ys, y)
		row := make([]float64, 0, width-1)
		for j := 1; j < width; j++ {
			v, err := parseCell(rows[i][j], i, j)
			if err != nil {
				return nil, fmt.Errorf("table.Decode: %w", err)
			}
			row = append(row, v)
		}
		values = append(values, row)
	}

	if err := axis.ValidateTarget(xs); err != nil {
		return nil, fmt.Errorf("table.Decode: header: %w", err)
	}
	if err := axis.ValidateTarget(ys); err != nil {
		return nil, fmt.Errorf("table.Decode: first column: %w", err)
	}
	m, err := matrix.NewDenseFromRows(values)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			err = fmt.Errorf("%w: %w", axis.ErrNonFinite, err)
		}
		return nil, fmt.Errorf("table.Decode: %w", err)
	}
	g, err := grid.FromDense(xs, ys, m)
	if err != nil {
		return nil, fmt.Errorf("table.Decode: %w", err)
	}

	return g, nil
}

// trimTable returns a trimmed copy of cells without blank trailing rows or
// blank trailing cells.
func trimTable(cells [][]string) [][]string {
	out := make([][]string, 0, len(cells))
	last := -1
	for i, row := range cells {
		trimmed := make([]string, len(row))
		n := 0
		for j, c := range row {
			trimmed[j] = strings.TrimSpace(c)
			if trimmed[j] != "" {
				n = j + 1
			}
		}
		out = append(out, trimmed[:n])
		if n > 0 {
			last = i
		}
	}

	return out[:last+1]
}

// parseCell parses one number; row and col are zero-based table positions.
func parseCell(s string, row, col int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadCell, cellName(row, col), s)
	}

	return v, nil
}

// cellName renders a zero-based position in A1 notation.
func cellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}

	return name
}

// Encode renders g in the table layout.
//
// Errors: grid.ErrNilGrid.
func Encode(g *grid.Grid, opts ...EncodeOption) ([][]string, error) {
	if g == nil {
		return nil, fmt.Errorf("table.Encode: %w", grid.ErrNilGrid)
	}
	o := gatherEncodeOptions(opts...)
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', o.precision, 64) }

	xs, ys, values := g.XAxis(), g.YAxis(), g.Values()
	out := make([][]string, 0, len(ys)+1)

	header := make([]string, 0, len(xs)+1)
	header = append(header, o.label)
	for _, x := range xs {
		header = append(header, format(x))
	}
	out = append(out, header)

	for i, y := range ys {
		row := make([]string, 0, len(xs)+1)
		row = append(row, format(y))
		for _, v := range values[i] {
			row = append(row, format(v))
		}
		out = append(out, row)
	}

	return out, nil
}
