// SPDX-License-Identifier: MIT
package table_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/table"
)

// TestWriteReadSheets stores several sheets in one save and reads them back
// by name and all at once.
func TestWriteReadSheets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	square, err := table.Decode(squareCells())
	require.NoError(t, err)
	point, err := table.Decode([][]string{{"Y/X", "5"}, {"5", "15"}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")

	require.NoError(t, table.WriteSheets(ctx, path, "B2", "L", []string{"Fuel", "Spark"}, []*grid.Grid{square, point}))

	sheets, err := table.Sheets(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Fuel", "Spark"}, sheets)

	names, got, err := table.ReadSheets(ctx, path, "B2")
	require.NoError(t, err)
	require.Equal(t, []string{"Fuel", "Spark"}, names)
	require.Len(t, got, 2)
	require.True(t, grid.Equal(square, got[0]))
	require.True(t, grid.Equal(point, got[1]))

	names, got, err = table.ReadSheets(ctx, path, "B2", "Spark")
	require.NoError(t, err)
	require.Equal(t, []string{"Spark"}, names)
	require.Equal(t, [][]float64{{15}}, got[0].Values())

	// an existing workbook keeps its other sheets
	require.NoError(t, table.WriteSheets(ctx, path, "B2", "", []string{"Spark"}, []*grid.Grid{square}))
	names, got, err = table.ReadSheets(ctx, path, "B2")
	require.NoError(t, err)
	require.Equal(t, []string{"Fuel", "Spark"}, names)
	require.True(t, grid.Equal(square, got[1]))
}

// TestWriteReadSheetsErrors covers argument, sheet and cancellation failures.
func TestWriteReadSheetsErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	square, err := table.Decode(squareCells())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")

	err = table.WriteSheets(ctx, path, "A1", "", []string{"A", "B"}, []*grid.Grid{square})
	require.ErrorIs(t, err, axis.ErrLengthMismatch)
	err = table.WriteSheets(ctx, path, "A1", "", []string{"A"}, []*grid.Grid{nil})
	require.ErrorIs(t, err, grid.ErrNilGrid)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.ErrorIs(t, table.WriteSheets(cancelled, path, "A1", "", []string{"A"}, []*grid.Grid{square}), context.Canceled)
	_, err = table.Sheets(path)
	require.Error(t, err, "nothing is saved on failure")

	require.NoError(t, table.WriteSheets(ctx, path, "A1", "", []string{"A"}, []*grid.Grid{square}))
	_, _, err = table.ReadSheets(ctx, path, "A1", "A", "Missing")
	require.ErrorIs(t, err, table.ErrSheetNotFound)
	_, _, err = table.ReadSheets(cancelled, path, "A1")
	require.ErrorIs(t, err, context.Canceled)
	_, _, err = table.ReadSheets(ctx, filepath.Join(t.TempDir(), "missing.xlsx"), "A1")
	require.Error(t, err)
}
