// SPDX-License-Identifier: MIT

// Package table moves grids between the resampling core and the host that
// stores them as cells.
//
// The cell layout is fixed:
//
//	label | x0 | x1 | ... | xn
//	y0    | v  | v  | ... | v
//	y1    | v  | v  | ... | v
//
// The top-left cell is a free label and is ignored on read. Decode and
// Encode convert between this layout and *grid.Grid; the adapters (CSVFile,
// XLSXFile, Memory) add the storage on either side. Run wires a Reader, the
// resampler and a Writer into one pass.
package table
