// SPDX-License-Identifier: MIT
package interp_test

import (
	"math"
	"testing"

	"github.com/Jason-buaa/AxisInterp/interp"
)

func benchLinear(b *testing.B, bp []float64) {
	s := make([]float64, len(bp))
	for i, x := range bp {
		s[i] = math.Sin(x)
	}
	lin, err := interp.NewLinear(bp, s)
	if err != nil {
		b.Fatal(err)
	}
	lo, hi := lin.Domain()
	qs := make([]float64, 1024)
	for i := range qs {
		qs[i] = lo + (hi-lo)*float64(i)/float64(len(qs))
	}
	out := make([]float64, len(qs))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = lin.EvalAll(qs, out); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvalAllUniform hits the O(1) guess on every query.
func BenchmarkEvalAllUniform(b *testing.B) {
	bp := make([]float64, 4096)
	for i := range bp {
		bp[i] = float64(i)
	}
	benchLinear(b, bp)
}

// BenchmarkEvalAllQuadratic uses breakpoints that force the binary search.
func BenchmarkEvalAllQuadratic(b *testing.B) {
	bp := make([]float64, 4096)
	for i := range bp {
		bp[i] = float64(i * i)
	}
	benchLinear(b, bp)
}
