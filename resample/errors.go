// SPDX-License-Identifier: MIT
// Package resample: sentinel error set.

package resample

import (
	"errors"

	"github.com/Jason-buaa/AxisInterp/grid"
)

var (
	// ErrNilGrid is returned when the source grid is nil. It is the same value
	// as grid.ErrNilGrid so either can be matched.
	ErrNilGrid = grid.ErrNilGrid

	// ErrUnknownOrder is returned by ParseOrder for an unrecognised name.
	ErrUnknownOrder = errors.New("resample: unknown pass order")
)
