// SPDX-License-Identifier: MIT

// Package axis validates and normalizes the coordinate sequences that define a
// lookup table.
//
// What:
//
//   - Validate / ValidateTarget: length, finiteness and strict monotonicity.
//   - ValidatePaired: axis length against a value-matrix dimension.
//   - Normalize / NormalizeTarget: validate, then return a private copy.
//   - Span / ParseSpan / Parse: build target axes from bounds or text.
//
// Why:
//
//	Interpolation divides by the width of every segment, so an axis with equal
//	or out-of-order neighbours is not a recoverable numeric condition but an
//	input error. Checking every axis once, up front, lets the resampler run
//	without ever discovering bad input halfway through a grid.
//
// Errors:
//
//   - ErrInsufficientPoints: fewer than 2 (source) or 1 (target) entries.
//   - ErrNotMonotonic: an entry does not exceed its predecessor.
//   - ErrLengthMismatch: axis and value dimension disagree.
//   - ErrNonFinite: NaN or ±Inf entry.
//   - ErrInvalidSpan: Span bounds cannot produce an increasing axis.
package axis
