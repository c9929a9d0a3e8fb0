// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Shape and axis failures surface as axis.* and matrix.* sentinels; only
// grid-specific conditions are declared here.

package grid

import "errors"

// ErrNilGrid indicates a nil *Grid receiver or argument.
var ErrNilGrid = errors.New("grid: nil grid")
