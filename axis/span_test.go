// SPDX-License-Identifier: MIT
package axis_test

import (
	"math"
	"testing"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/stretchr/testify/require"
)

// TestSpan covers the uniform axis generator and its guards.
func TestSpan(t *testing.T) {
	t.Parallel()

	xs, err := axis.Span(0, 100, 11)
	require.NoError(t, err)
	require.Len(t, xs, 11)
	require.Equal(t, 0.0, xs[0])
	require.Equal(t, 100.0, xs[10])
	for i, x := range xs {
		require.InDelta(t, float64(i)*10, x, 1e-12)
	}

	one, err := axis.Span(3, 3, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, one)

	_, err = axis.Span(0, 1, 0)
	require.ErrorIs(t, err, axis.ErrInsufficientPoints)

	_, err = axis.Span(1, 0, 3)
	require.ErrorIs(t, err, axis.ErrInvalidSpan)

	_, err = axis.Span(math.NaN(), 1, 3)
	require.ErrorIs(t, err, axis.ErrNonFinite)
}

// TestParseSpan covers the lo:hi:n text form.
func TestParseSpan(t *testing.T) {
	t.Parallel()

	xs, err := axis.ParseSpan(" -1 : 1 : 5 ")
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, xs)

	_, err = axis.ParseSpan("0:1")
	require.ErrorIs(t, err, axis.ErrInvalidSpan)

	_, err = axis.ParseSpan("0:x:3")
	require.Error(t, err)

	_, err = axis.ParseSpan("5:1:3")
	require.ErrorIs(t, err, axis.ErrInvalidSpan)
}

// TestParse covers list parsing with mixed separators.
func TestParse(t *testing.T) {
	t.Parallel()

	xs, err := axis.Parse("0, 2.5;10 12")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2.5, 10, 12}, xs)

	_, err = axis.Parse("")
	require.ErrorIs(t, err, axis.ErrInsufficientPoints)

	_, err = axis.Parse("1,abc")
	require.Error(t, err)

	_, err = axis.Parse("3,1")
	require.ErrorIs(t, err, axis.ErrNotMonotonic)
}

// TestStep reports uniform spacing only when every gap matches.
func TestStep(t *testing.T) {
	t.Parallel()

	dx, ok := axis.Step([]float64{0, 2, 4, 6}, 1e-9)
	require.True(t, ok)
	require.Equal(t, 2.0, dx)

	_, ok = axis.Step([]float64{0, 1, 4}, 1e-9)
	require.False(t, ok)

	_, ok = axis.Step([]float64{1}, 1e-9)
	require.False(t, ok)
}
