// SPDX-License-Identifier: MIT

package interp

// searcher locates the segment of a strictly increasing axis that brackets a
// query. Queries outside the axis map to the nearest edge segment.
type searcher struct {
	xs      []float64
	x0, lim float64
	hdx     float64 // half the mean spacing, used for the O(1) first guess
	n       int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	s.lim = xs[s.n-1]
	s.hdx = (s.lim/2 - s.x0/2) / float64(s.n-1)
}

// search returns i in [0, n-2] such that xs[i] <= x <= xs[i+1] whenever x is
// inside the axis; 0 below it and n-2 above it.
func (s *searcher) search(x float64) int {
	if x <= s.x0 {
		return 0
	}
	if x >= s.lim {
		return s.n - 2
	}

	// Guess under the assumption of uniform spacing. Halves keep the
	// distances finite on axes wider than MaxFloat64.
	guess := int((x/2 - s.x0/2) / s.hdx)
	if guess >= 0 && guess < s.n-1 && s.xs[guess] <= x && x <= s.xs[guess+1] {
		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
