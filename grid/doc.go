// SPDX-License-Identifier: MIT

// Package grid defines Grid, a lookup table sampled on a rectangular lattice.
//
// A Grid pairs a strictly increasing X axis and Y axis with a value matrix in
// which Values()[i][j] is the value at (X[j], Y[i]): rows follow Y, columns
// follow X. A Grid is immutable; constructors copy their inputs and accessors
// return copies.
//
// Two constructors exist:
//
//   - New applies source rules: both axes need at least two points, because a
//     source grid must define a function along each axis.
//   - FromDense applies target rules: axes of a single point are accepted, as
//     produced when a resample slices a table down to one row or column.
package grid
