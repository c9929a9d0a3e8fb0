// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Jason-buaa/AxisInterp/axis"
	"github.com/Jason-buaa/AxisInterp/grid"
)

// ReadSheets decodes the table anchored at cell on each named sheet of the
// workbook at path, opening the file once. With no names every sheet is
// read, in workbook order. The resolved names are returned with the grids.
//
// Errors: ctx.Err(), ErrSheetNotFound, any Decode error, and workbook I/O
// errors. No grids are returned on error.
func ReadSheets(ctx context.Context, path, cell string, names ...string) ([]string, []*grid.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("table.ReadSheets: %w", err)
	}
	defer f.Close()

	if len(names) == 0 {
		names = f.GetSheetList()
	}
	out := make([]*grid.Grid, len(names))
	for i, name := range names {
		if err = ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("table.ReadSheets: %w", err)
		}
		x := &XLSXFile{Path: path, Sheet: name, Cell: cell}
		if out[i], err = x.readFrom(f); err != nil {
			return nil, nil, fmt.Errorf("table.ReadSheets: sheet %q: %w", name, err)
		}
	}

	return names, out, nil
}

// WriteSheets stores grids[i] at cell on sheet names[i] of the workbook at
// path and saves the file once. The workbook and missing sheets are created
// as XLSXFile.Write does; label is the top-left cell text of every table.
//
// Errors: axis.ErrLengthMismatch when names and grids differ in length,
// grid.ErrNilGrid, ctx.Err(), and workbook I/O errors. Nothing is saved on
// error.
func WriteSheets(ctx context.Context, path, cell, label string, names []string, grids []*grid.Grid) error {
	if len(grids) != len(names) {
		return fmt.Errorf("table.WriteSheets: %d sheets, %d grids: %w", len(names), len(grids), axis.ErrLengthMismatch)
	}
	for i, g := range grids {
		if g == nil {
			return fmt.Errorf("table.WriteSheets: sheet %q: %w", names[i], grid.ErrNilGrid)
		}
	}
	if len(names) == 0 {
		return nil
	}

	f, err := openWorkbook(path, names...)
	if err != nil {
		return fmt.Errorf("table.WriteSheets: %w", err)
	}
	defer f.Close()

	for i, name := range names {
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("table.WriteSheets: %w", err)
		}
		x := &XLSXFile{Path: path, Sheet: name, Cell: cell, Label: label}
		if err = x.writeTo(f, grids[i]); err != nil {
			return fmt.Errorf("table.WriteSheets: sheet %q: %w", name, err)
		}
	}
	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("table.WriteSheets: %w", err)
	}
	logrus.WithFields(logrus.Fields{"path": path, "sheets": len(names)}).Debug("table: xlsx sheets saved")

	return nil
}
