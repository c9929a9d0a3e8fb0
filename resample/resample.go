// SPDX-License-Identifier: MIT

package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/interp"
	"github.com/Jason-buaa/AxisInterp/matrix"
)

// Resample returns src re-sampled on the axes (targetX, targetY).
//
// Implementation:
//   - Stage 1: src.Validate (source rules), then the target rules on
//     targetX and targetY.
//   - Stage 2: first pass along one axis into an intermediate matrix.
//   - Stage 3: second pass along the other axis; wrap as a new Grid.
//
// Errors: ErrNilGrid, axis.ErrInsufficientPoints, axis.ErrNotMonotonic,
// axis.ErrLengthMismatch, interp.ErrInvalidQuery for a NaN/±Inf target
// coordinate (the error also matches axis.ErrNonFinite), and matrix.ErrNaNInf
// when an extrapolated value overflows float64.
// Complexity: O(|Y|*|tX|*log|X| + |tX|*|tY|*log|Y|) for RowsFirst.
func Resample(src *grid.Grid, targetX, targetY []float64, opts ...Option) (*grid.Grid, error) {
	return resample(src, targetX, targetY, gatherOptions(opts...))
}

func resample(src *grid.Grid, tx, ty []float64, o Options) (*grid.Grid, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("resample: source: %w", err)
	}
	if err := validateTarget(tx); err != nil {
		return nil, fmt.Errorf("resample: target x: %w", err)
	}
	if err := validateTarget(ty); err != nil {
		return nil, fmt.Errorf("resample: target y: %w", err)
	}

	xs, ys, v := src.XAxis(), src.YAxis(), src.Dense()
	logrus.WithFields(logrus.Fields{
		"src":    fmt.Sprintf("%dx%d", len(ys), len(xs)),
		"target": fmt.Sprintf("%dx%d", len(ty), len(tx)),
		"order":  o.Order(),
	}).Debug("resample")

	var (
		mid, out *matrix.Dense
		err      error
	)
	switch o.Order() {
	case ColumnsFirst:
		if mid, err = alongCols(v, ys, ty); err == nil {
			out, err = alongRows(mid, xs, tx)
		}
	default:
		if mid, err = alongRows(v, xs, tx); err == nil {
			out, err = alongCols(mid, ys, ty)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("resample: %s: %w", o.Order(), err)
	}

	return grid.FromDense(tx, ty, out)
}

// validateTarget applies the target axis rules. A NaN/±Inf coordinate is a
// query that cannot be evaluated, so it also matches interp.ErrInvalidQuery.
func validateTarget(t []float64) error {
	err := axis.ValidateTarget(t)
	if errors.Is(err, axis.ErrNonFinite) {
		return fmt.Errorf("%w: %w", interp.ErrInvalidQuery, err)
	}

	return err
}

// alongRows interpolates each row of m, sampled at xs, onto tx.
// Result shape: m.Rows() x len(tx).
func alongRows(m *matrix.Dense, xs, tx []float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.Rows(), len(tx))
	if err != nil {
		return nil, err
	}
	var row, vals []float64
	for i := 0; i < m.Rows(); i++ {
		if row, err = m.Row(i, row); err != nil {
			return nil, err
		}
		lin, err := interp.NewLinear(xs, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if vals, err = lin.EvalAll(tx, vals); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err = out.SetRow(i, vals); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return out, nil
}

// alongCols interpolates each column of m, sampled at ys, onto ty.
// Result shape: len(ty) x m.Cols().
func alongCols(m *matrix.Dense, ys, ty []float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(len(ty), m.Cols())
	if err != nil {
		return nil, err
	}
	var col, vals []float64
	for j := 0; j < m.Cols(); j++ {
		if col, err = m.Col(j, col); err != nil {
			return nil, err
		}
		lin, err := interp.NewLinear(ys, col)
		if err != nil {
			return nil, fmt.Errorf("col %d: %w", j, err)
		}
		if vals, err = lin.EvalAll(ty, vals); err != nil {
			return nil, fmt.Errorf("col %d: %w", j, err)
		}
		if err = out.SetCol(j, vals); err != nil {
			return nil, fmt.Errorf("col %d: %w", j, err)
		}
	}

	return out, nil
}

// Point evaluates src at the single location (x, y).
//
// Errors: interp.ErrInvalidQuery for NaN/±Inf coordinates, plus any error
// of Resample.
func Point(src *grid.Grid, x, y float64, opts ...Option) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("resample.Point(%v,%v): %w", x, y, interp.ErrInvalidQuery)
	}
	g, err := resample(src, []float64{x}, []float64{y}, gatherOptions(opts...))
	if err != nil {
		return 0, err
	}

	return g.At(0, 0)
}
