// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.
// Construction errors come from the axis package (ErrInsufficientPoints,
// ErrNotMonotonic, ErrLengthMismatch, ErrNonFinite); only query-time
// failures are defined here.

package interp

import "errors"

// ErrInvalidQuery is returned when a query coordinate is NaN or ±Inf.
var ErrInvalidQuery = errors.New("interp: query is NaN or Inf")
