// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Jason-buaa/AxisInterp/grid"
)

const (
	// DefaultSheet is the sheet used when XLSXFile.Sheet is empty.
	DefaultSheet = "Sheet1"

	// DefaultCell is the anchor used when XLSXFile.Cell is empty.
	DefaultCell = "A1"
)

// XLSXFile stores a grid on one sheet of an Excel workbook, with the label
// cell of the table layout at Cell. Numbers are written as numeric cells.
type XLSXFile struct {
	Path  string
	Sheet string // empty means DefaultSheet
	Cell  string // top-left corner of the table; empty means DefaultCell
	Label string // empty means DefaultLabel
}

func (x *XLSXFile) sheet() string {
	if x.Sheet == "" {
		return DefaultSheet
	}
	return x.Sheet
}

// anchor returns the one-based column and row of the table corner.
func (x *XLSXFile) anchor() (col, row int, err error) {
	cell := x.Cell
	if cell == "" {
		cell = DefaultCell
	}
	col, row, err = excelize.CellNameToCoordinates(cell)
	if err != nil {
		return 0, 0, fmt.Errorf("anchor %q: %w", cell, err)
	}

	return col, row, nil
}

// Read opens the workbook and decodes the table at the anchor cell.
//
// Errors: ErrSheetNotFound, any Decode error, and workbook I/O errors.
func (x *XLSXFile) Read(_ context.Context) (*grid.Grid, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("XLSXFile.Read: %w", err)
	}
	defer f.Close()

	return x.readFrom(f)
}

// readFrom decodes the table at the anchor cell of an open workbook.
func (x *XLSXFile) readFrom(f *excelize.File) (*grid.Grid, error) {
	col, row, err := x.anchor()
	if err != nil {
		return nil, fmt.Errorf("XLSXFile.Read: %w", err)
	}
	cells, err := x.region(f, col, row)
	if err != nil {
		return nil, fmt.Errorf("XLSXFile.Read %s: %w", x.Path, err)
	}
	logrus.WithFields(logrus.Fields{
		"path":  x.Path,
		"sheet": x.sheet(),
		"rows":  len(cells),
	}).Debug("table: xlsx loaded")

	g, err := Decode(cells)
	if err != nil {
		return nil, fmt.Errorf("XLSXFile.Read %s!%s: %w", x.sheet(), cellName(row-1, col-1), err)
	}

	return g, nil
}

// region returns the table anchored at (col, row): the label cell plus the
// run of non-blank header cells to its right, then every following row whose
// first cell is non-blank, cut to the header width. Cells beside or below the
// table are not part of it.
func (x *XLSXFile) region(f *excelize.File, col, row int) ([][]string, error) {
	idx, err := f.GetSheetIndex(x.sheet())
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, x.sheet())
	}
	rows, err := f.GetRows(x.sheet(), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if row > len(rows) {
		return nil, nil
	}

	var out [][]string
	width := 0
	for i, r := range rows[row-1:] {
		if col > len(r) {
			break
		}
		r = r[col-1:]
		if i == 0 {
			width = 1
			for width < len(r) && strings.TrimSpace(r[width]) != "" {
				width++
			}
		} else if strings.TrimSpace(r[0]) == "" {
			break
		}
		out = append(out, r[:min(width, len(r))])
	}

	return out, nil
}

// Write stores g at the anchor cell, creating the workbook or the sheet when
// missing. The previous table at the anchor, if any, is cleared first.
func (x *XLSXFile) Write(_ context.Context, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("XLSXFile.Write: %w", grid.ErrNilGrid)
	}
	f, err := openWorkbook(x.Path, x.sheet())
	if err != nil {
		return fmt.Errorf("XLSXFile.Write: %w", err)
	}
	defer f.Close()

	if err = x.writeTo(f, g); err != nil {
		return err
	}
	if err = f.SaveAs(x.Path); err != nil {
		return fmt.Errorf("XLSXFile.Write: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":  x.Path,
		"sheet": x.sheet(),
		"rows":  g.Rows() + 1,
	}).Debug("table: xlsx saved")

	return nil
}

// writeTo replaces the table at the anchor cell of an open workbook whose
// sheet already exists. Nothing is saved.
func (x *XLSXFile) writeTo(f *excelize.File, g *grid.Grid) error {
	col, row, err := x.anchor()
	if err != nil {
		return fmt.Errorf("XLSXFile.Write: %w", err)
	}
	if err = x.clear(f, col, row); err != nil {
		return fmt.Errorf("XLSXFile.Write %s: %w", x.Path, err)
	}
	for i, values := range x.rowsOf(g) {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return fmt.Errorf("XLSXFile.Write: %w", err)
		}
		if err = f.SetSheetRow(x.sheet(), cell, &values); err != nil {
			return fmt.Errorf("XLSXFile.Write %s!%s: %w", x.sheet(), cell, err)
		}
	}

	return nil
}

// openWorkbook returns the workbook at path, or a new one whose first sheet
// carries sheets[0]. Every named sheet missing from the workbook is added.
func openWorkbook(path string, sheets ...string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		f = excelize.NewFile()
		if len(sheets) > 0 && sheets[0] != DefaultSheet {
			if err = f.SetSheetName(DefaultSheet, sheets[0]); err != nil {
				f.Close()
				return nil, err
			}
		}
	case err != nil:
		return nil, err
	}

	for _, name := range sheets {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			f.Close()
			return nil, err
		}
		if idx >= 0 {
			continue
		}
		if _, err = f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// clear blanks the table currently stored at the anchor, as bounded by region.
func (x *XLSXFile) clear(f *excelize.File, col, row int) error {
	cells, err := x.region(f, col, row)
	if err != nil {
		return err
	}
	for i, r := range cells {
		for j := range r {
			name, err := excelize.CoordinatesToCellName(col+j, row+i)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(x.sheet(), name, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// rowsOf lays out g for SetSheetRow: a label cell, then numeric cells.
func (x *XLSXFile) rowsOf(g *grid.Grid) [][]interface{} {
	label := x.Label
	if label == "" {
		label = DefaultLabel
	}
	xs, ys, values := g.XAxis(), g.YAxis(), g.Values()

	out := make([][]interface{}, 0, len(ys)+1)
	header := make([]interface{}, 0, len(xs)+1)
	header = append(header, label)
	for _, v := range xs {
		header = append(header, v)
	}
	out = append(out, header)
	for i, y := range ys {
		r := make([]interface{}, 0, len(xs)+1)
		r = append(r, y)
		for _, v := range values[i] {
			r = append(r, v)
		}
		out = append(out, r)
	}

	return out
}

// Sheets lists the sheet names of the workbook at path.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("table.Sheets: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

