// SPDX-License-Identifier: MIT

// Package resample: functional configuration for Resample and ResampleBatch.
// This file defines:
//   - Order, the sequence of the two interpolation passes,
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).

package resample

import (
	"fmt"
	"strings"
)

// Order selects which axis is interpolated first.
type Order int

const (
	// RowsFirst interpolates every source row along X, then every resulting
	// column along Y.
	RowsFirst Order = iota

	// ColumnsFirst interpolates every source column along Y, then every
	// resulting row along X.
	ColumnsFirst
)

// String returns the canonical name of the order.
func (o Order) String() string {
	switch o {
	case RowsFirst:
		return "rows-first"
	case ColumnsFirst:
		return "columns-first"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a name to an Order. Matching is case-insensitive and
// accepts "rows"/"columns" as short forms; "" yields DefaultOrder.
//
// Errors: ErrUnknownOrder.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultOrder, nil
	case "rows-first", "rows", "row":
		return RowsFirst, nil
	case "columns-first", "columns", "cols", "col":
		return ColumnsFirst, nil
	default:
		return DefaultOrder, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the pass order used when WithOrder is not given.
	DefaultOrder = RowsFirst

	// DefaultConcurrency bounds the number of requests ResampleBatch runs at once.
	DefaultConcurrency = 4
)

// ---------- Internal panic messages ----------

const (
	panicOrderInvalid       = "resample: WithOrder: unknown order"
	panicConcurrencyInvalid = "resample: WithConcurrency: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order       Order // DefaultOrder
	concurrency int   // DefaultConcurrency; ResampleBatch only
}

// WithOrder selects the pass order. Both orders give the same result up to
// rounding; the choice only affects the size of the intermediate matrix.
//
// Panics if o is neither RowsFirst nor ColumnsFirst.
func WithOrder(o Order) Option {
	if o != RowsFirst && o != ColumnsFirst {
		panic(panicOrderInvalid)
	}

	return func(opts *Options) { opts.order = o }
}

// WithConcurrency bounds the number of concurrently running requests in
// ResampleBatch. Resample ignores it.
//
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(opts *Options) { opts.concurrency = n }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{order: DefaultOrder, concurrency: DefaultConcurrency}
}

// Order reports the configured pass order.
func (o Options) Order() Order { return o.order }

// Concurrency reports the configured batch concurrency.
func (o Options) Concurrency() int { return o.concurrency }

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
