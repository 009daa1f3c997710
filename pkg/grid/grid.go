// Package grid holds the sample grid type and the bilinear upscaler.
package grid

import "fmt"

// Grid is a row-major block of temperature readings. It is a plain
// value: sources hand a fresh one over per tick and nothing mutates it
// afterwards.
type Grid struct {
	Rows, Cols int
	Cells      []float64
}

// New wraps cells into a Grid after checking that the slice actually
// holds rows*cols values.
func New(rows, cols int, cells []float64) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("invalid grid dimensions %dx%d", rows, cols)
	}
	if len(cells) != rows*cols {
		return Grid{}, fmt.Errorf("grid size mismatch: got %d cells, want %d (%dx%d)", len(cells), rows*cols, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols, Cells: cells}, nil
}

// At returns the value at row i, column j. No bounds check, callers
// iterate over Rows/Cols.
func (g Grid) At(i, j int) float64 {
	return g.Cells[i*g.Cols+j]
}

func (g Grid) set(i, j int, v float64) {
	g.Cells[i*g.Cols+j] = v
}
