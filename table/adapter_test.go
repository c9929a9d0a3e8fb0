// SPDX-License-Identifier: MIT
package table_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Jason-buaa/AxisInterp/resample"
	"github.com/Jason-buaa/AxisInterp/table"
	"github.com/stretchr/testify/require"
)

// TestRunCentre resamples a host table at its centre end to end.
func TestRunCentre(t *testing.T) {
	t.Parallel()

	src := table.NewMemory(squareCells())
	dst := table.NewMemory(nil)

	out, err := table.Run(context.Background(), src, dst, []float64{5}, []float64{5})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{15}}, out.Values())
	require.Equal(t, [][]string{{"Y/X", "5"}, {"5", "15"}}, dst.Cells())
	require.Equal(t, squareCells(), src.Cells(), "source host is not modified")
}

// TestRunKeepsMissingAxes uses the source axis for an empty target.
func TestRunKeepsMissingAxes(t *testing.T) {
	t.Parallel()

	dst := table.NewMemory(nil, table.WithLabel("L"))
	_, err := table.Run(context.Background(), table.NewMemory(squareCells()), dst, nil, []float64{5},
		resample.WithOrder(resample.ColumnsFirst))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"L", "0", "10"}, {"5", "10", "20"}}, dst.Cells())
}

// TestRunErrors covers read failures, resample failures and cancellation.
func TestRunErrors(t *testing.T) {
	t.Parallel()

	dst := table.NewMemory([][]string{{"untouched"}})

	_, err := table.Run(context.Background(), table.NewMemory([][]string{{"Y/X", "0", "x"}}), dst, nil, nil)
	require.ErrorIs(t, err, table.ErrBadCell)

	_, err = table.Run(context.Background(), table.NewMemory(squareCells()), dst, []float64{2, 1}, nil)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = table.Run(ctx, table.NewMemory(squareCells()), dst, nil, nil)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, [][]string{{"untouched"}}, dst.Cells(), "no partial write on failure")
}

// TestMemoryConcurrent reads and writes one Memory from many goroutines.
func TestMemoryConcurrent(t *testing.T) {
	t.Parallel()

	m := table.NewMemory(squareCells())
	g, err := m.Read(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Read(context.Background())
			_ = m.Write(context.Background(), g)
		}()
	}
	wg.Wait()
	require.Equal(t, squareCells(), m.Cells())
}
