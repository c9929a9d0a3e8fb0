// SPDX-License-Identifier: MIT
// Package: axis
//
// Purpose:
//   - Single source of truth for axis checks used by interp, grid and resample.
//   - Validators never mutate their input; Normalize* return defensive copies.
//   - Errors are sentinels wrapped with a tag and position so call sites can
//     match with errors.Is and still print something useful.
//
// Check order (fixed, enforced in tests):
//
//	length -> finiteness -> strict monotonicity
//
// Complexity: every validator is a single O(n) scan and allocates nothing
// except on the error path.

package axis

import (
	"fmt"
	"math"
)

const (
	// MinSourcePoints is the minimum length of an axis that defines a function.
	MinSourcePoints = 2

	// MinTargetPoints is the minimum length of an axis that is only queried.
	// A single point is valid and degenerates a resample to slicing.
	MinTargetPoints = 1
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks a source axis: at least MinSourcePoints entries, all finite,
// strictly increasing.
//
// Errors: ErrInsufficientPoints, ErrNonFinite, ErrNotMonotonic.
// Complexity: O(n).
func Validate(xs []float64) error {
	if err := validateMin(xs, MinSourcePoints); err != nil {
		return validatorErrorf("Validate", err)
	}

	return nil
}

// ValidateTarget checks a target axis: same rules as Validate but a single
// entry is accepted.
//
// Errors: ErrInsufficientPoints, ErrNonFinite, ErrNotMonotonic.
// Complexity: O(n).
func ValidateTarget(xs []float64) error {
	if err := validateMin(xs, MinTargetPoints); err != nil {
		return validatorErrorf("ValidateTarget", err)
	}

	return nil
}

// validateMin runs the fixed check sequence with a caller-chosen minimum length.
func validateMin(xs []float64, min int) error {
	if len(xs) < min {
		return fmt.Errorf("%w: have %d, need at least %d", ErrInsufficientPoints, len(xs), min)
	}
	if err := ValidateFinite(xs); err != nil {
		return err
	}

	return ValidateIncreasing(xs)
}

// ValidateFinite rejects the first NaN or ±Inf entry.
//
// Errors: ErrNonFinite with the offending index.
// Complexity: O(n).
func ValidateFinite(xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFinite, i, x)
		}
	}

	return nil
}

// ValidateIncreasing rejects the first entry that is not strictly greater than
// its predecessor. Assumes finite input (NaN compares false and would be
// reported here with a less helpful message).
//
// Errors: ErrNotMonotonic with the offending index.
// Complexity: O(n).
func ValidateIncreasing(xs []float64) error {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("%w: index %d (%g) does not exceed index %d (%g)",
				ErrNotMonotonic, i, xs[i], i-1, xs[i-1])
		}
	}

	return nil
}

// ValidatePaired checks that an axis and its paired value-matrix dimension have
// the same length.
//
// Errors: ErrLengthMismatch.
// Complexity: O(1).
func ValidatePaired(xs []float64, n int) error {
	if len(xs) != n {
		return validatorErrorf("ValidatePaired",
			fmt.Errorf("%w: axis has %d entries, dimension has %d", ErrLengthMismatch, len(xs), n))
	}

	return nil
}

// Normalize validates a source axis and returns an independent copy of it.
// The input is never retained, so later mutation by the caller cannot break
// the monotonic invariant of whatever holds the copy.
func Normalize(xs []float64) ([]float64, error) {
	if err := Validate(xs); err != nil {
		return nil, err
	}

	return clone(xs), nil
}

// NormalizeTarget is Normalize with target-axis rules (length >= 1).
func NormalizeTarget(xs []float64) ([]float64, error) {
	if err := ValidateTarget(xs); err != nil {
		return nil, err
	}

	return clone(xs), nil
}

// clone returns a copy of xs with its own backing array.
func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}
