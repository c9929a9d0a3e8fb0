// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep Dense methods minimal by delegating shape/nil/finite checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Also catches a typed nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected to avoid silent zero-length copies.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("%w: have %d, want %d", ErrDimensionMismatch, len(x), n))
	}

	return nil
}

// ValidateRectangular checks that rows is non-empty and every row has the
// same, non-zero length.
//
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrNonRectangular.
// Complexity: O(r).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return validatorErrorf("ValidateRectangular",
				fmt.Errorf("%w: row %d has %d values, row 0 has %d", ErrNonRectangular, i, len(row), w))
		}
	}

	return nil
}

// ValidateFinite scans rows in row-major order and reports the first NaN/±Inf.
//
// Errors: ErrNaNInf with coordinates.
// Complexity: O(r*c).
func ValidateFinite(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i, j))
			}
		}
	}

	return nil
}
