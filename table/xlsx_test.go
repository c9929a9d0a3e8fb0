// SPDX-License-Identifier: MIT
package table_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Jason-buaa/AxisInterp/grid"
	"github.com/Jason-buaa/AxisInterp/table"
)

// TestXLSXFileRoundTrip writes at an offset anchor, overwrites with a smaller
// table and reads both back.
func TestXLSXFileRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	big, err := grid.New([]float64{0, 1, 2}, []float64{10, 20, 30},
		[][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9.5}})
	require.NoError(t, err)
	small, err := table.Decode(squareCells())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	x := &table.XLSXFile{Path: path, Sheet: "Map", Cell: "C3"}

	require.NoError(t, x.Write(ctx, big))
	back, err := x.Read(ctx)
	require.NoError(t, err)
	require.True(t, grid.Equal(big, back))

	require.NoError(t, x.Write(ctx, small))
	back, err = x.Read(ctx)
	require.NoError(t, err)
	require.True(t, grid.Equal(small, back), "stale cells of the larger table must be cleared:\n%s", back)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	label, err := f.GetCellValue("Map", "C3")
	require.NoError(t, err)
	require.Equal(t, table.DefaultLabel, label)
	v, err := f.GetCellValue("Map", "E4")
	require.NoError(t, err)
	require.Equal(t, "10", v)
}

// TestXLSXFileSheets adds a second sheet to an existing workbook.
func TestXLSXFileSheets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g, err := table.Decode(squareCells())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")

	require.NoError(t, (&table.XLSXFile{Path: path}).Write(ctx, g))
	require.NoError(t, (&table.XLSXFile{Path: path, Sheet: "Second"}).Write(ctx, g))

	sheets, err := table.Sheets(path)
	require.NoError(t, err)
	require.Equal(t, []string{table.DefaultSheet, "Second"}, sheets)

	_, err = (&table.XLSXFile{Path: path, Sheet: "Missing"}).Read(ctx)
	require.ErrorIs(t, err, table.ErrSheetNotFound)

	_, err = (&table.XLSXFile{Path: path, Cell: "not a cell"}).Read(ctx)
	require.Error(t, err)
}

// TestXLSXFileEmptyRegion reports an empty table below the data.
func TestXLSXFileEmptyRegion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g, err := table.Decode(squareCells())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, (&table.XLSXFile{Path: path}).Write(ctx, g))

	_, err = (&table.XLSXFile{Path: path, Cell: "A40"}).Read(ctx)
	require.ErrorIs(t, err, table.ErrEmptyTable)
}

// TestXLSXFileIgnoresSurroundingCells reads and rewrites a table that has
// notes below it and beside its header, leaving the notes in place.
func TestXLSXFileIgnoresSurroundingCells(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g, err := table.Decode(squareCells())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	x := &table.XLSXFile{Path: path}
	require.NoError(t, x.Write(ctx, g))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(table.DefaultSheet, "A6", "calibrated 2024"))
	require.NoError(t, f.SetCellValue(table.DefaultSheet, "F1", "rev B"))
	require.NoError(t, f.SetCellValue(table.DefaultSheet, "F2", 99))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	back, err := x.Read(ctx)
	require.NoError(t, err)
	require.True(t, grid.Equal(g, back), "got\n%s", back)

	wide, err := grid.New([]float64{0, 5, 10}, []float64{0, 10}, [][]float64{{0, 5, 10}, {20, 25, 30}})
	require.NoError(t, err)
	require.NoError(t, x.Write(ctx, wide))
	back, err = x.Read(ctx)
	require.NoError(t, err)
	require.True(t, grid.Equal(wide, back), "got\n%s", back)

	f, err = excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	for cell, want := range map[string]string{"A6": "calibrated 2024", "F1": "rev B", "F2": "99"} {
		v, err := f.GetCellValue(table.DefaultSheet, cell)
		require.NoError(t, err)
		require.Equal(t, want, v, cell)
	}
}
