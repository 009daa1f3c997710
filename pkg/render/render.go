// Package render turns a temperature grid into draw commands for the
// window layer. It owns no GL state; the cmd layer replays the plan
// through imdraw each tick.
package render

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"

	"github.com/hotpixel/thermoview/pkg/grid"
	"github.com/hotpixel/thermoview/pkg/palette"
)

// Cell is one filled rectangle of the heat map.
type Cell struct {
	Bounds pixel.Rect
	Color  color.RGBA
}

// Planner maps grids of a fixed output size onto a viewport. The
// expected dimensions are locked in at startup so a frame of the wrong
// shape is rejected instead of silently mis-tiled.
type Planner struct {
	rows, cols int
	colors     []color.RGBA
	minTemp    float64
	maxTemp    float64
}

func NewPlanner(rows, cols int, colors []color.RGBA, minTemp, maxTemp float64) *Planner {
	return &Planner{rows: rows, cols: cols, colors: colors, minTemp: minTemp, maxTemp: maxTemp}
}

// Plan emits one Cell per grid value in row-major order. Row 0 of the
// grid lands at the top of the viewport (pixel's Y axis points up).
// The rectangles tile the viewport exactly.
func (p *Planner) Plan(g grid.Grid, viewport pixel.Rect) ([]Cell, error) {
	if g.Rows != p.rows || g.Cols != p.cols {
		return nil, fmt.Errorf("render: frame is %dx%d, expected %dx%d", g.Rows, g.Cols, p.rows, p.cols)
	}

	cellW := viewport.W() / float64(p.cols)
	cellH := viewport.H() / float64(p.rows)

	cells := make([]Cell, 0, p.rows*p.cols)
	for i := 0; i < p.rows; i++ {
		top := viewport.Max.Y - float64(i)*cellH
		for j := 0; j < p.cols; j++ {
			left := viewport.Min.X + float64(j)*cellW
			idx := palette.Lookup(g.At(i, j), p.minTemp, p.maxTemp, len(p.colors))
			cells = append(cells, Cell{
				Bounds: pixel.R(left, top-cellH, left+cellW, top),
				Color:  p.colors[idx],
			})
		}
	}
	return cells, nil
}
