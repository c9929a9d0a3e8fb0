// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Span returns n evenly spaced coordinates from lo to hi inclusive.
// n == 1 yields [lo]; n >= 2 requires lo < hi. The endpoints are exact.
//
// Errors: ErrInsufficientPoints (n < 1), ErrNonFinite, ErrInvalidSpan.
// Complexity: O(n).
func Span(lo, hi float64, n int) ([]float64, error) {
	if n < MinTargetPoints {
		return nil, validatorErrorf("Span", fmt.Errorf("%w: n=%d", ErrInsufficientPoints, n))
	}
	if err := ValidateFinite([]float64{lo, hi}); err != nil {
		return nil, validatorErrorf("Span", err)
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	if !(lo < hi) {
		return nil, validatorErrorf("Span", fmt.Errorf("%w: lo=%g must be below hi=%g", ErrInvalidSpan, lo, hi))
	}

	xs := floats.Span(make([]float64, n), lo, hi)
	// Very narrow ranges with many points can round neighbours together.
	if err := ValidateIncreasing(xs); err != nil {
		return nil, validatorErrorf("Span", fmt.Errorf("%w: %v", ErrInvalidSpan, err))
	}

	return xs, nil
}

// ParseSpan parses "lo:hi:n" (for example "0:100:11") and expands it with Span.
func ParseSpan(s string) ([]float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("ParseSpan(%q): %w: want lo:hi:n", s, ErrInvalidSpan)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("ParseSpan(%q): lo: %w", s, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("ParseSpan(%q): hi: %w", s, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("ParseSpan(%q): n: %w", s, err)
	}

	return Span(lo, hi, n)
}

// Parse reads a comma or whitespace separated list of coordinates and checks it
// with target-axis rules.
func Parse(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	xs := make([]float64, 0, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("Parse: entry %d: %w", i, err)
		}
		xs = append(xs, x)
	}
	if err := ValidateTarget(xs); err != nil {
		return nil, err
	}

	return xs, nil
}

// Step returns the spacing of xs when it is uniform within rel, and false
// otherwise. Axes shorter than two entries are never uniform.
func Step(xs []float64, rel float64) (float64, bool) {
	if len(xs) < MinSourcePoints {
		return 0, false
	}
	dx := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	for i := 1; i < len(xs); i++ {
		if math.Abs((xs[i]-xs[i-1])-dx) > rel*math.Abs(dx) {
			return 0, false
		}
	}

	return dx, true
}
