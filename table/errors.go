// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// Axis and value failures found while decoding surface as axis.* and
// matrix.* sentinels; the errors below describe the cell layout itself.

package table

import "errors"

var (
	// ErrEmptyTable is returned when no header row is present.
	ErrEmptyTable = errors.New("table: empty table")

	// ErrRaggedRow is returned when a body row does not have one cell per
	// header column.
	ErrRaggedRow = errors.New("table: row width differs from header")

	// ErrBadCell is returned when an axis or value cell is blank or not a number.
	ErrBadCell = errors.New("table: cell is not a number")

	// ErrSheetNotFound is returned when a workbook has no sheet of the given name.
	ErrSheetNotFound = errors.New("table: sheet not found")
)
