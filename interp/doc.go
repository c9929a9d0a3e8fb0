// SPDX-License-Identifier: MIT

// Package interp implements one-dimensional piecewise-linear interpolation.
//
// A Linear is built from strictly increasing breakpoints and one sample per
// breakpoint. Queries inside the breakpoint range interpolate on the
// bracketing segment; queries outside it extrapolate along the nearest edge
// segment (no clamping). A query that lands exactly on a breakpoint returns the
// stored sample unchanged.
//
// Segment lookup first tries the index implied by uniform spacing and falls
// back to binary search, so evenly spaced axes resolve in O(1) and arbitrary
// ones in O(log n).
//
// A Linear is immutable after construction and safe for concurrent use.
package interp
