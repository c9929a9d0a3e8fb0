// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/matrix"
)

// Grid is a two-dimensional lookup table.
//   - x: column coordinates, strictly increasing, len == v.Cols().
//   - y: row coordinates, strictly increasing, len == v.Rows().
//   - v: finite values, row i belongs to y[i].
type Grid struct {
	x, y []float64
	v    *matrix.Dense
}

var _ fmt.Stringer = (*Grid)(nil)

// New builds a source grid from axes and a row-per-Y value table.
// All inputs are copied.
//
// Check order (first violation wins):
//  1. X axis, then Y axis: axis.Validate (length >= 2, finite, increasing).
//  2. len(values) == len(y), then len(values[i]) == len(x) for each row.
//  3. Every value finite.
//
// Errors: axis.ErrInsufficientPoints, axis.ErrNonFinite, axis.ErrNotMonotonic,
// axis.ErrLengthMismatch; non-finite values match both axis.ErrNonFinite and
// matrix.ErrNaNInf.
// Complexity: O(rows*cols).
func New(x, y []float64, values [][]float64) (*Grid, error) {
	xs, err := axis.Normalize(x)
	if err != nil {
		return nil, fmt.Errorf("grid.New: x axis: %w", err)
	}
	ys, err := axis.Normalize(y)
	if err != nil {
		return nil, fmt.Errorf("grid.New: y axis: %w", err)
	}
	if err = validateRows(xs, ys, values); err != nil {
		return nil, fmt.Errorf("grid.New: %w", err)
	}
	v, err := matrix.NewDenseFromRows(values)
	if err != nil {
		return nil, fmt.Errorf("grid.New: %w", err)
	}

	return &Grid{x: xs, y: ys, v: v}, nil
}

// validateRows checks the value table against both axes, then finiteness.
func validateRows(xs, ys []float64, values [][]float64) error {
	if err := axis.ValidatePaired(ys, len(values)); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	for i, row := range values {
		if err := axis.ValidatePaired(xs, len(row)); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	if err := matrix.ValidateFinite(values); err != nil {
		return fmt.Errorf("%w: %w", axis.ErrNonFinite, err)
	}

	return nil
}

// FromDense builds a grid from axes and a value matrix under target rules:
// axes may have a single point. x, y and m are copied.
//
// Errors: ErrNilGrid (nil m), axis.ErrInsufficientPoints, axis.ErrNonFinite,
// axis.ErrNotMonotonic, axis.ErrLengthMismatch.
// Complexity: O(rows*cols).
func FromDense(x, y []float64, m *matrix.Dense) (*Grid, error) {
	if m == nil {
		return nil, fmt.Errorf("grid.FromDense: values: %w", ErrNilGrid)
	}
	xs, err := axis.NormalizeTarget(x)
	if err != nil {
		return nil, fmt.Errorf("grid.FromDense: x axis: %w", err)
	}
	ys, err := axis.NormalizeTarget(y)
	if err != nil {
		return nil, fmt.Errorf("grid.FromDense: y axis: %w", err)
	}
	if err = axis.ValidatePaired(ys, m.Rows()); err != nil {
		return nil, fmt.Errorf("grid.FromDense: rows: %w", err)
	}
	if err = axis.ValidatePaired(xs, m.Cols()); err != nil {
		return nil, fmt.Errorf("grid.FromDense: cols: %w", err)
	}

	return &Grid{x: xs, y: ys, v: m.Clone()}, nil
}

// Validate re-checks the grid invariants under source rules, i.e. whether g
// can be used as the input of a resample.
//
// Errors: ErrNilGrid, axis.ErrInsufficientPoints, axis.ErrLengthMismatch.
func (g *Grid) Validate() error {
	if g == nil || g.v == nil {
		return fmt.Errorf("Grid.Validate: %w", ErrNilGrid)
	}
	if err := axis.Validate(g.x); err != nil {
		return fmt.Errorf("Grid.Validate: x axis: %w", err)
	}
	if err := axis.Validate(g.y); err != nil {
		return fmt.Errorf("Grid.Validate: y axis: %w", err)
	}
	if err := axis.ValidatePaired(g.y, g.v.Rows()); err != nil {
		return fmt.Errorf("Grid.Validate: rows: %w", err)
	}
	if err := axis.ValidatePaired(g.x, g.v.Cols()); err != nil {
		return fmt.Errorf("Grid.Validate: cols: %w", err)
	}

	return nil
}

// XAxis returns a copy of the X axis.
func (g *Grid) XAxis() []float64 { return clone(g.x) }

// YAxis returns a copy of the Y axis.
func (g *Grid) YAxis() []float64 { return clone(g.y) }

// Rows returns len(YAxis()).
func (g *Grid) Rows() int { return len(g.y) }

// Cols returns len(XAxis()).
func (g *Grid) Cols() int { return len(g.x) }

// At returns the value at (XAxis()[j], YAxis()[i]).
//
// Errors: matrix.ErrOutOfRange.
func (g *Grid) At(i, j int) (float64, error) { return g.v.At(i, j) }

// Row returns a copy of row i (the values along X at YAxis()[i]).
func (g *Grid) Row(i int) ([]float64, error) { return g.v.Row(i, nil) }

// Col returns a copy of column j (the values along Y at XAxis()[j]).
func (g *Grid) Col(j int) ([]float64, error) { return g.v.Col(j, nil) }

// Values returns a copy of the value table, one slice per Y entry.
func (g *Grid) Values() [][]float64 { return g.v.ToRows() }

// Dense returns a copy of the value matrix.
func (g *Grid) Dense() *matrix.Dense { return g.v.Clone() }

// String renders the grid in table layout: a header line with the X axis,
// then one line per Y entry.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.WriteString("y\\x")
	for _, x := range g.x {
		sb.WriteByte('\t')
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte('\n')
	var row []float64
	for i, y := range g.y {
		row, _ = g.v.Row(i, row)
		sb.WriteString(strconv.FormatFloat(y, 'g', -1, 64))
		for _, v := range row {
			sb.WriteByte('\t')
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
