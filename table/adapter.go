// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/resample"
)

// Reader loads one grid from a host.
type Reader interface {
	Read(ctx context.Context) (*grid.Grid, error)
}

// Writer stores one grid into a host.
type Writer interface {
	Write(ctx context.Context, g *grid.Grid) error
}

// Adapter is a host that can be both read and written.
type Adapter interface {
	Reader
	Writer
}

var (
	_ Adapter = (*CSVFile)(nil)
	_ Adapter = (*XLSXFile)(nil)
	_ Adapter = (*Memory)(nil)
)

// Run reads a grid from src, resamples it onto (targetX, targetY) and writes
// the result to dst. A nil or empty target axis keeps the corresponding
// source axis. The resampled grid is also returned.
//
// The context is checked before each stage. Adapter errors are wrapped and
// returned as is; nothing is retried.
func Run(ctx context.Context, src Reader, dst Writer, targetX, targetY []float64, opts ...resample.Option) (*grid.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("table.Run: read: %w", err)
	}
	if len(targetX) == 0 {
		targetX = g.XAxis()
	}
	if len(targetY) == 0 {
		targetY = g.YAxis()
	}

	out, err := resample.Resample(g, targetX, targetY, opts...)
	if err != nil {
		return nil, fmt.Errorf("table.Run: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"from": fmt.Sprintf("%dx%d", g.Rows(), g.Cols()),
		"to":   fmt.Sprintf("%dx%d", out.Rows(), out.Cols()),
	}).Debug("table: resampled")

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = dst.Write(ctx, out); err != nil {
		return nil, fmt.Errorf("table.Run: write: %w", err)
	}

	return out, nil
}
