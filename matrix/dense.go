// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors for table values.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Enforce the finite-value policy (NaN/Inf rejection) from a single place.
//   - Offer whole-row and whole-column transfer so interpolation passes never
//     hand-roll transposition loops.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows: O(r*c) copy;
//     At/Set: O(1); Row/SetRow: O(c); Col/SetCol: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxSetCol = "SetCol" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of finite float64 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows deep-copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: ValidateRectangular (non-empty, equal row lengths).
//   - Stage 2: ValidateFinite (numeric policy).
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors: ErrInvalidDimensions, ErrNonRectangular, ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}
	if err := ValidateFinite(rows); err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}

	m := &Dense{r: len(rows), c: len(rows[0]), data: make([]float64, len(rows)*len(rows[0]))}
	for i, row := range rows {
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: reject NaN/±Inf.
//   - Stage 3: write into flat buffer.
//
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row copies row i into dst and returns it. dst is reused when its capacity is
// at least Cols(); otherwise a new slice is allocated.
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int, dst []float64) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	dst = grow(dst, m.c)
	copy(dst, m.data[i*m.c:(i+1)*m.c])

	return dst, nil
}

// Col copies column j into dst and returns it, reusing dst like Row.
//
// Errors: ErrOutOfRange.
// Complexity: O(r) with stride c.
func (m *Dense) Col(j int, dst []float64) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	dst = grow(dst, m.r)
	for i := 0; i < m.r; i++ { // strided read down the column
		dst[i] = m.data[i*m.c+j]
	}

	return dst, nil
}

// SetRow overwrites row i with src. Nothing is written unless every value of
// src passes the finite policy.
//
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(c).
func (m *Dense) SetRow(i int, src []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if err := ValidateVecLen(src, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	if j, ok := firstNonFinite(src); ok {
		return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
	}
	copy(m.data[i*m.c:(i+1)*m.c], src)

	return nil
}

// SetCol overwrites column j with src under the same all-or-nothing policy as SetRow.
//
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r).
func (m *Dense) SetCol(j int, src []float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if err := ValidateVecLen(src, m.r); err != nil {
		return denseErrorf(ctxSetCol, 0, j, err)
	}
	if i, ok := firstNonFinite(src); ok {
		return denseErrorf(ctxSetCol, i, j, ErrNaNInf)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = src[i]
	}

	return nil
}

// ToRows returns an independent [][]float64 copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Do calls f for every element in row-major order and stops early when f
// returns false.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer: one bracketed row per line, shortest
// round-trip formatting for each value.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// grow returns dst resliced to n, allocating only when capacity is short.
func grow(dst []float64, n int) []float64 {
	if cap(dst) < n {
		return make([]float64, n)
	}

	return dst[:n]
}

// firstNonFinite reports the index of the first NaN/±Inf in xs.
func firstNonFinite(xs []float64) (int, bool) {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i, true
		}
	}

	return 0, false
}
