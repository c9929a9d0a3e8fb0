// SPDX-License-Identifier: MIT

package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Jason-buaa/AxisInterp/matrix"
)

// Equal reports whether a and b have identical axes and values.
// Two nil grids are equal.
func Equal(a, b *Grid) bool {
	return AllClose(a, b, 0, 0)
}

// AllClose reports whether a and b have the same shape and every axis entry
// and value agrees within atol absolute or rtol relative tolerance.
func AllClose(a, b *Grid, rtol, atol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if matrix.ValidateSameShape(a.v, b.v) != nil {
		return false
	}
	near := func(x, y float64) bool {
		return x == y || scalar.EqualWithinAbsOrRel(x, y, atol, rtol)
	}
	if !floats.EqualFunc(a.x, b.x, near) || !floats.EqualFunc(a.y, b.y, near) {
		return false
	}
	ok := true
	a.v.Do(func(i, j int, v float64) bool {
		w, _ := b.v.At(i, j)
		ok = near(v, w)
		return ok
	})

	return ok
}
