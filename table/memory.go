// SPDX-License-Identifier: MIT

package table

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jason-buaa/AxisInterp/grid"
)

// Memory is an in-process host holding a cell table. It is safe for
// concurrent use.
type Memory struct {
	mu    sync.RWMutex
	cells [][]string
	opts  []EncodeOption
}

// NewMemory returns a Memory holding a copy of cells. opts are applied on
// every Write.
func NewMemory(cells [][]string, opts ...EncodeOption) *Memory {
	return &Memory{cells: copyCells(cells), opts: opts}
}

// Read decodes the current cells.
func (m *Memory) Read(_ context.Context) (*grid.Grid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, err := Decode(m.cells)
	if err != nil {
		return nil, fmt.Errorf("Memory.Read: %w", err)
	}

	return g, nil
}

// Write replaces the cells with the encoding of g.
func (m *Memory) Write(_ context.Context, g *grid.Grid) error {
	cells, err := Encode(g, m.opts...)
	if err != nil {
		return fmt.Errorf("Memory.Write: %w", err)
	}
	m.mu.Lock()
	m.cells = cells
	m.mu.Unlock()

	return nil
}

// Cells returns a copy of the current cells.
func (m *Memory) Cells() [][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return copyCells(m.cells)
}

func copyCells(cells [][]string) [][]string {
	out := make([][]string, len(cells))
	for i, row := range cells {
		out[i] = append([]string(nil), row...)
	}

	return out
}
