package render

import (
	"image/color"
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotpixel/thermoview/pkg/grid"
	"github.com/hotpixel/thermoview/pkg/palette"
)

func testColors(t *testing.T, n int) []color.RGBA {
	t.Helper()
	packed := []uint16{0x001F, 0x07E0, 0xFFE0, 0xF800}
	colors, err := palette.Build(packed[:n])
	require.NoError(t, err)
	return colors
}

func TestPlanTilesViewport(t *testing.T) {
	g, err := grid.New(2, 2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	p := NewPlanner(2, 2, testColors(t, 4), 10, 40)
	cells, err := p.Plan(g, pixel.R(0, 0, 400, 200))
	require.NoError(t, err)
	require.Len(t, cells, 4)

	// Row-major, row 0 at the top of the viewport.
	assert.Equal(t, pixel.R(0, 100, 200, 200), cells[0].Bounds)
	assert.Equal(t, pixel.R(200, 100, 400, 200), cells[1].Bounds)
	assert.Equal(t, pixel.R(0, 0, 200, 100), cells[2].Bounds)
	assert.Equal(t, pixel.R(200, 0, 400, 100), cells[3].Bounds)
}

func TestPlanColors(t *testing.T) {
	g, err := grid.New(2, 2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	colors := testColors(t, 4)
	p := NewPlanner(2, 2, colors, 10, 40)
	cells, err := p.Plan(g, pixel.R(0, 0, 100, 100))
	require.NoError(t, err)

	assert.Equal(t, colors[0], cells[0].Color)
	assert.Equal(t, colors[1], cells[1].Color)
	assert.Equal(t, colors[2], cells[2].Color)
	assert.Equal(t, colors[3], cells[3].Color)
}

func TestPlanRejectsWrongShape(t *testing.T) {
	g, err := grid.New(2, 2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	p := NewPlanner(8, 8, testColors(t, 4), 10, 40)
	_, err = p.Plan(g, pixel.R(0, 0, 100, 100))
	assert.Error(t, err)
}

// Full pipeline: 2x2 samples upscaled by 2, mapped through a 4-color
// ramp over [10, 40].
func TestPlanInterpolatedFrame(t *testing.T) {
	g, err := grid.New(2, 2, []float64{10, 20, 30, 40})
	require.NoError(t, err)

	out := grid.Interpolate(g, 2)
	require.Equal(t, 4, out.Rows)
	require.Equal(t, 4, out.Cols)
	assert.InDelta(t, 10, out.At(0, 0), 1e-9)
	assert.InDelta(t, 40, out.At(3, 3), 1e-9)

	colors := testColors(t, 4)
	p := NewPlanner(4, 4, colors, 10, 40)
	cells, err := p.Plan(out, pixel.R(0, 0, 400, 400))
	require.NoError(t, err)
	require.Len(t, cells, 16)

	// Every cell maps into the ramp, and indices never decrease along
	// the diagonal ramp of this source.
	lookup := func(c color.RGBA) int {
		for i, rc := range colors {
			if rc == c {
				return i
			}
		}
		t.Fatalf("color %v not in ramp", c)
		return -1
	}
	assert.Equal(t, 0, lookup(cells[0].Color))
	assert.Equal(t, 3, lookup(cells[15].Color))
	for i := 0; i < 3; i++ {
		assert.LessOrEqual(t, lookup(cells[i*5].Color), lookup(cells[(i+1)*5].Color))
	}
}
