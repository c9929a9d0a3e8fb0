// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/Jason-buaa/AxisInterp/axis"
)

// Linear is a piecewise-linear interpolant over strictly increasing breakpoints.
type Linear struct {
	xs   searcher
	bp   []float64
	vals []float64
}

// NewLinear creates a linear interpolant for the strictly increasing points bp,
// which take on the values given by samples. Both slices are copied.
//
// Errors (first violation wins):
//   - axis.ErrInsufficientPoints: len(bp) < 2.
//   - axis.ErrNonFinite: NaN/±Inf in bp.
//   - axis.ErrNotMonotonic: bp not strictly increasing.
//   - axis.ErrLengthMismatch: len(samples) != len(bp).
//   - axis.ErrNonFinite: NaN/±Inf in samples.
//
// Complexity: O(n).
func NewLinear(bp, samples []float64) (*Linear, error) {
	xs, err := axis.Normalize(bp)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: breakpoints: %w", err)
	}
	if err = axis.ValidatePaired(samples, len(xs)); err != nil {
		return nil, fmt.Errorf("NewLinear: samples: %w", err)
	}
	if err = axis.ValidateFinite(samples); err != nil {
		return nil, fmt.Errorf("NewLinear: samples: %w", err)
	}

	lin := &Linear{bp: xs, vals: make([]float64, len(samples))}
	copy(lin.vals, samples)
	lin.xs.init(lin.bp)

	return lin, nil
}

// Eval returns the interpolated value at x.
//
// Outside [bp[0], bp[n-1]] the edge segment is extended linearly. At a
// breakpoint the stored sample is returned exactly.
//
// Errors: ErrInvalidQuery for NaN/±Inf x.
// Complexity: O(1) on uniform breakpoints, O(log n) otherwise.
func (lin *Linear) Eval(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("Linear.Eval(%v): %w", x, ErrInvalidQuery)
	}

	return lin.eval(x), nil
}

// eval assumes a finite x.
func (lin *Linear) eval(x float64) float64 {
	i1 := lin.xs.search(x)
	i2 := i1 + 1
	x1, x2 := lin.bp[i1], lin.bp[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	switch x {
	case x1:
		return v1
	case x2:
		return v2
	}
	t := (x - x1) / (x2 - x1)
	if math.IsInf(x2-x1, 0) {
		// Segment wider than MaxFloat64: halved distances stay finite.
		t = (x/2 - x1/2) / (x2/2 - x1/2)
	}
	if dv := v2 - v1; !math.IsInf(dv, 0) {
		return v1 + t*dv
	}

	return (1-t)*v1 + t*v2
}

// EvalAll evaluates the interpolant at all the given x values. If out has at
// least len(xs) entries, the results are written to out[:len(xs)] and that
// slice is returned; otherwise a new slice is allocated.
//
// Every query is checked before anything is written, so on error out is
// left untouched.
//
// Errors: ErrInvalidQuery with the index of the first NaN/±Inf query.
func (lin *Linear) EvalAll(xs, out []float64) ([]float64, error) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("Linear.EvalAll: index %d: %w", i, ErrInvalidQuery)
		}
	}
	if len(out) < len(xs) {
		out = make([]float64, len(xs))
	}
	out = out[:len(xs)]
	for i, x := range xs {
		out[i] = lin.eval(x)
	}

	return out, nil
}

// Breakpoints returns a copy of the breakpoints.
func (lin *Linear) Breakpoints() []float64 {
	out := make([]float64, len(lin.bp))
	copy(out, lin.bp)
	return out
}

// Samples returns a copy of the samples.
func (lin *Linear) Samples() []float64 {
	out := make([]float64, len(lin.vals))
	copy(out, lin.vals)
	return out
}

// Len returns the number of breakpoints.
func (lin *Linear) Len() int { return len(lin.bp) }

// Domain returns the first and last breakpoint.
func (lin *Linear) Domain() (lo, hi float64) { return lin.bp[0], lin.bp[len(lin.bp)-1] }
