// SPDX-License-Identifier: MIT

// Package matrix stores the value body of a lookup table.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 buffer with bounds-checked accessors and a
//     finite-only numeric policy (NaN/±Inf are rejected on every write path).
//   - Whole-row and whole-column transfer (Row, Col, SetRow, SetCol) used by
//     the separable resampler for its two interpolation passes.
//   - Validators for rectangular [][]float64 input.
//   - ToMat, a copy into a gonum *mat.Dense for callers that continue with
//     gonum reductions or linear algebra on a table.
//
// Errors are package sentinels (ErrOutOfRange, ErrNaNInf, ...) wrapped with
// method context; match them with errors.Is.
package matrix
