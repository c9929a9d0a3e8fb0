// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for Grid construction and access.
package grid_test

import (
	"math"
	"testing"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewErrors covers each validation stage of New in priority order.
func TestNewErrors(t *testing.T) {
	t.Parallel()

	ok := []float64{0, 10}
	vals := [][]float64{{0, 10}, {20, 30}}

	tests := []struct {
		name    string
		x, y    []float64
		values  [][]float64
		wantErr error
	}{
		{"short x", []float64{0}, ok, vals, axis.ErrInsufficientPoints},
		{"short y", ok, nil, vals, axis.ErrInsufficientPoints},
		{"x decreasing", []float64{10, 0}, ok, vals, axis.ErrNotMonotonic},
		{"y nan", ok, []float64{0, math.NaN()}, vals, axis.ErrNonFinite},
		{"too few rows", ok, ok, [][]float64{{0, 10}}, axis.ErrLengthMismatch},
		{"short row", ok, ok, [][]float64{{0, 10}, {20}}, axis.ErrLengthMismatch},
		{"inf value", ok, ok, [][]float64{{0, 10}, {math.Inf(1), 30}}, axis.ErrNonFinite},
		{"inf value matrix sentinel", ok, ok, [][]float64{{0, 10}, {math.Inf(1), 30}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := grid.New(tc.x, tc.y, tc.values)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, g)
		})
	}
}

// TestNewCopiesAndAccessors checks layout and that inputs and outputs are copies.
func TestNewCopiesAndAccessors(t *testing.T) {
	t.Parallel()

	x := []float64{0, 1, 2}
	y := []float64{10, 20}
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.New(x, y, vals)
	require.NoError(t, err)

	x[0], y[0], vals[0][0] = -1, -1, -1
	require.Equal(t, []float64{0, 1, 2}, g.XAxis())
	require.Equal(t, []float64{10, 20}, g.YAxis())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, g.Values())
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())

	v, err := g.At(1, 2) // y=20, x=2
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	row, err := g.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, row)

	col, err := g.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, col)

	out := g.Values()
	out[1][1] = 99
	v, err = g.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = g.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, g.Validate())
}

// TestFromDense accepts single-point axes and checks pairing with the matrix.
func TestFromDense(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{15}})
	require.NoError(t, err)

	g, err := grid.FromDense([]float64{5}, []float64{5}, m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{15}}, g.Values())

	// a single-point grid is a valid result but not a valid source
	require.ErrorIs(t, g.Validate(), axis.ErrInsufficientPoints)

	require.NoError(t, m.Set(0, 0, 1))
	require.Equal(t, [][]float64{{15}}, g.Values(), "FromDense copies the matrix")

	_, err = grid.FromDense([]float64{5, 6}, []float64{5}, m)
	require.ErrorIs(t, err, axis.ErrLengthMismatch)

	_, err = grid.FromDense(nil, []float64{5}, m)
	require.ErrorIs(t, err, axis.ErrInsufficientPoints)

	_, err = grid.FromDense([]float64{5}, []float64{5}, nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestValidateNil reports ErrNilGrid for a nil receiver.
func TestValidateNil(t *testing.T) {
	t.Parallel()

	var g *grid.Grid
	require.ErrorIs(t, g.Validate(), grid.ErrNilGrid)
}

// TestString renders the table layout.
func TestString(t *testing.T) {
	t.Parallel()

	g, err := grid.New([]float64{0, 10}, []float64{0, 10}, [][]float64{{0, 10}, {20, 30}})
	require.NoError(t, err)
	require.Equal(t, "y\\x\t0\t10\n0\t0\t10\n10\t20\t30\n", g.String())
}
