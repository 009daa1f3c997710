package grid

import "math"

// Interpolate expands g by the integer factor k using bilinear
// interpolation, returning a (Rows*k)x(Cols*k) grid. Every output cell
// is the weighted average of its four nearest source cells; the output
// corners land exactly on the source corners. Cells on the last source
// row/column clamp instead of wrapping. Factor validation happens at
// config time, k here is assumed positive.
//
// k == 1 short-circuits to a copy so the identity case is exact.
func Interpolate(g Grid, k int) Grid {
	if k == 1 {
		cells := make([]float64, len(g.Cells))
		copy(cells, g.Cells)
		return Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
	}

	rows, cols := g.Rows*k, g.Cols*k
	out := Grid{Rows: rows, Cols: cols, Cells: make([]float64, rows*cols)}

	for i := 0; i < rows; i++ {
		x := float64(i) / float64(rows-1) * float64(g.Rows-1)
		x1 := int(math.Floor(x))
		x2 := min(x1+1, g.Rows-1)
		fx := x - float64(x1)

		for j := 0; j < cols; j++ {
			y := float64(j) / float64(cols-1) * float64(g.Cols-1)
			y1 := int(math.Floor(y))
			y2 := min(y1+1, g.Cols-1)
			fy := y - float64(y1)

			v := g.At(x1, y1)*(1-fx)*(1-fy) +
				g.At(x1, y2)*(1-fx)*fy +
				g.At(x2, y1)*fx*(1-fy) +
				g.At(x2, y2)*fx*fy
			out.set(i, j, v)
		}
	}
	return out
}
