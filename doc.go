// Package axisinterp resamples two-dimensional lookup tables.
//
// A lookup table is a value sampled on a rectangular grid: an X axis, a Y
// axis and one value per (X, Y) pair. Calibration maps, sensor corrections
// and rate tables are typical examples. axisinterp produces the same table on
// different axes using separable piecewise-linear interpolation: one pass
// along X for every row, one pass along Y for every column.
//
// Packages:
//
//	axis/     - axis validation (finite, strictly increasing) and generators
//	matrix/   - row-major value storage with a finite-only policy
//	interp/   - one-dimensional piecewise-linear interpolant
//	grid/     - immutable table of axes and values
//	resample/ - two-pass resampler, pass order option, concurrent batches
//	table/    - cell layout plus CSV, Excel and in-memory hosts
//
// The axisinterp command (cmd/axisinterp) drives the whole pipeline from the
// shell, configured by flags, environment variables or a YAML file.
//
// Quick start:
//
//	src, _ := grid.New([]float64{0, 10}, []float64{0, 10}, [][]float64{{0, 10}, {20, 30}})
//	out, _ := resample.Resample(src, []float64{5}, []float64{5})
//	fmt.Println(out.Values()) // [[15]]
package axisinterp
