package sensor

import (
	"context"
	"math"
	"time"

	"github.com/hotpixel/thermoview/pkg/grid"
)

// Simulator generates frames with a hot spot orbiting the grid center,
// for running the viewer without hardware. Same channel contract as
// the serial source.
type Simulator struct {
	Rows, Cols       int
	MinTemp, MaxTemp float64
	Interval         time.Duration
}

// Stream emits one synthetic frame per interval until cancelled.
func (s *Simulator) Stream() (context.CancelFunc, <-chan grid.Grid) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan grid.Grid, 1)

	go func() {
		defer close(frames)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for tick := 0; ; tick++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			select {
			case frames <- s.Frame(tick):
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel, frames
}

// Frame computes the synthetic grid for one tick. Exposed so tests can
// sample it without running the ticker.
func (s *Simulator) Frame(tick int) grid.Grid {
	phase := float64(tick) / 20 * 2 * math.Pi
	cx := float64(s.Cols-1)/2 + float64(s.Cols)/4*math.Cos(phase)
	cy := float64(s.Rows-1)/2 + float64(s.Rows)/4*math.Sin(phase)
	sigma := float64(s.Cols) / 3

	span := s.MaxTemp - s.MinTemp
	cells := make([]float64, s.Rows*s.Cols)
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			d2 := (float64(i)-cy)*(float64(i)-cy) + (float64(j)-cx)*(float64(j)-cx)
			cells[i*s.Cols+j] = s.MinTemp + span*math.Exp(-d2/(2*sigma*sigma))
		}
	}
	return grid.Grid{Rows: s.Rows, Cols: s.Cols, Cells: cells}
}
