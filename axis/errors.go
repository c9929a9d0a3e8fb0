// SPDX-License-Identifier: MIT
// Package axis: sentinel error set.
// Every validator in this package returns one of these sentinels wrapped with a
// validator tag and the offending position; callers match them via errors.Is.

package axis

import "errors"

var (
	// ErrInsufficientPoints is returned when an axis has fewer entries than the
	// caller requires: 2 for a source axis, 1 for a target axis.
	ErrInsufficientPoints = errors.New("axis: insufficient points")

	// ErrNotMonotonic is returned when consecutive entries are equal or decreasing.
	// Equal neighbours would make a segment width zero in slope computation.
	ErrNotMonotonic = errors.New("axis: not strictly increasing")

	// ErrLengthMismatch is returned when a value-matrix dimension disagrees with
	// the length of its paired axis.
	ErrLengthMismatch = errors.New("axis: length mismatch")

	// ErrNonFinite signals a NaN or ±Inf coordinate or sample.
	ErrNonFinite = errors.New("axis: NaN or Inf encountered")

	// ErrInvalidSpan is returned by Span and ParseSpan for bounds that cannot
	// produce a strictly increasing axis.
	ErrInvalidSpan = errors.New("axis: invalid span")
)
