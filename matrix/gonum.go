// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToMat returns a gonum *mat.Dense holding a copy of m.
// Both types are row-major, so the buffer is copied without reordering.
// Complexity: O(r*c).
func (m *Dense) ToMat() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
