// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface shared by validators and
// consumers that only need shape and element access.
package matrix

// Matrix is the read-only view of a two-dimensional float64 array.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
