// SPDX-License-Identifier: MIT

// Package resample maps a grid.Grid onto new X and Y axes by separable
// piecewise-linear interpolation.
//
// Resample runs two one-dimensional passes. With the default RowsFirst order
// every source row is interpolated along X at the target X axis, producing an
// intermediate |Y| x |targetX| matrix; every column of that matrix is then
// interpolated along Y at the target Y axis. ColumnsFirst swaps the passes.
// For linear interpolation the two orders agree up to rounding.
//
// Target axes follow target rules (at least one point, finite, strictly
// increasing) and may extend beyond the source axes; values there are linear
// extrapolations of the edge segments. Every check runs before any
// interpolation, so a failing call never yields a partial grid.
//
// ResampleBatch runs independent requests concurrently with a bounded
// worker count and stops scheduling new work once its context is done.
package resample
