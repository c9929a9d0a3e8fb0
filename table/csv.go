// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Jason-buaa/AxisInterp/grid"
)

// Stdio is the CSVFile path that reads stdin and writes stdout.
const Stdio = "-"

// CSVFile stores a grid as a comma-separated file in the table layout.
type CSVFile struct {
	Path  string // file path, or Stdio
	Comma rune   // field delimiter; 0 means ','

	// Encode settings used by Write.
	Label     string // empty means DefaultLabel
	Precision int    // see WithPrecision; 0 is treated as DefaultPrecision

	Stdout io.Writer // destination of Write for Path Stdio; nil means os.Stdout
}

// Read loads and decodes the file.
func (c *CSVFile) Read(_ context.Context) (*grid.Grid, error) {
	var r io.Reader = os.Stdin
	if c.Path != Stdio {
		f, err := os.Open(c.Path)
		if err != nil {
			return nil, fmt.Errorf("CSVFile.Read: %w", err)
		}
		defer f.Close()
		r = f
	}

	cells, err := ReadCSV(r, c.Comma)
	if err != nil {
		return nil, fmt.Errorf("CSVFile.Read %s: %w", c.Path, err)
	}
	logrus.WithFields(logrus.Fields{"path": c.Path, "rows": len(cells)}).Debug("table: csv loaded")

	g, err := Decode(cells)
	if err != nil {
		return nil, fmt.Errorf("CSVFile.Read %s: %w", c.Path, err)
	}

	return g, nil
}

// Write encodes g and replaces the file contents.
func (c *CSVFile) Write(_ context.Context, g *grid.Grid) error {
	cells, err := Encode(g, c.encodeOptions()...)
	if err != nil {
		return fmt.Errorf("CSVFile.Write: %w", err)
	}
	if c.Path == Stdio {
		out := c.Stdout
		if out == nil {
			out = os.Stdout
		}
		return WriteCSV(out, cells, c.Comma)
	}

	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("CSVFile.Write: %w", err)
	}
	if err = WriteCSV(f, cells, c.Comma); err != nil {
		f.Close()
		return fmt.Errorf("CSVFile.Write %s: %w", c.Path, err)
	}
	logrus.WithFields(logrus.Fields{"path": c.Path, "rows": len(cells)}).Debug("table: csv saved")

	return f.Close()
}

func (c *CSVFile) encodeOptions() []EncodeOption {
	var opts []EncodeOption
	if c.Label != "" {
		opts = append(opts, WithLabel(c.Label))
	}
	if c.Precision != 0 {
		opts = append(opts, WithPrecision(c.Precision))
	}

	return opts
}

// ReadCSV reads all records from r. Rows may differ in length; Decode
// decides whether that is an error.
func ReadCSV(r io.Reader, comma rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if comma != 0 {
		reader.Comma = comma
	}

	return reader.ReadAll()
}

// WriteCSV writes cells to w and flushes.
func WriteCSV(w io.Writer, cells [][]string, comma rune) error {
	writer := csv.NewWriter(w)
	if comma != 0 {
		writer.Comma = comma
	}
	if err := writer.WriteAll(cells); err != nil {
		return err
	}

	return writer.Error()
}
