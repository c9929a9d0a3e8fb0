// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jason-buaa/AxisInterp/resample"
	"github.com/Jason-buaa/AxisInterp/table"
)

// TestLoadConfigDefaults resolves an empty configuration.
func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(newViper())
	require.NoError(t, err)
	require.Equal(t, []string{table.DefaultSheet}, cfg.Sheets)
	require.Equal(t, table.DefaultCell, cfg.Cell)
	require.Equal(t, table.DefaultLabel, cfg.Label)
	require.Equal(t, table.DefaultPrecision, cfg.Precision)
	require.Equal(t, resample.DefaultOrder, cfg.Order)
	require.Equal(t, resample.DefaultConcurrency, cfg.Jobs)
	require.Nil(t, cfg.TargetX)
	require.Nil(t, cfg.TargetY)
}

// TestLoadConfigValues resolves explicit values and rejects bad ones.
func TestLoadConfigValues(t *testing.T) {
	t.Parallel()

	v := newViper()
	v.Set(keyTargetX, []interface{}{0, 2.5, 5})
	v.Set(keyYSpan, "0:1:3")
	v.Set(keyOrder, "cols")
	cfg, err := loadConfig(v)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2.5, 5}, cfg.TargetX)
	require.Equal(t, []float64{0, 0.5, 1}, cfg.TargetY)
	require.Equal(t, resample.ColumnsFirst, cfg.Order)

	v = newViper()
	v.Set(keyJobs, 0)
	_, err = loadConfig(v)
	require.Error(t, err)

	v = newViper()
	v.Set(keyPrecision, -3)
	_, err = loadConfig(v)
	require.Error(t, err)

	v = newViper()
	v.Set(keyOrder, "diagonal")
	_, err = loadConfig(v)
	require.ErrorIs(t, err, resample.ErrUnknownOrder)
}

// TestListText flattens the value shapes a config source can produce.
func TestListText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", listText(nil))
	require.Equal(t, "1, 2", listText(" 1, 2 "))
	require.Equal(t, "1,2.5", listText([]interface{}{1, 2.5}))
	require.Equal(t, "3,4", listText([]string{"3", "4"}))
	require.Equal(t, "7", listText(7))
}

// TestAdapterFor picks the adapter by extension.
func TestAdapterFor(t *testing.T) {
	t.Parallel()

	cfg := config{Label: "L", Cell: "B2", Precision: 4}

	a, err := adapterFor("map.csv", "", cfg)
	require.NoError(t, err)
	require.Equal(t, &table.CSVFile{Path: "map.csv", Label: "L", Precision: 4}, a)

	a, err = adapterFor("map.TSV", "", cfg)
	require.NoError(t, err)
	require.Equal(t, '\t', a.(*table.CSVFile).Comma)

	a, err = adapterFor("book.xlsx", "Fuel", cfg)
	require.NoError(t, err)
	require.Equal(t, &table.XLSXFile{Path: "book.xlsx", Sheet: "Fuel", Cell: "B2", Label: "L"}, a)

	a, err = adapterFor(table.Stdio, "", cfg)
	require.NoError(t, err)
	require.IsType(t, &table.CSVFile{}, a)

	_, err = adapterFor("map.json", "", cfg)
	require.ErrorIs(t, err, errUnsupportedFormat)

	require.True(t, isWorkbook("a.XLSM"))
	require.False(t, isWorkbook("a.csv"))
}
