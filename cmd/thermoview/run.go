package main

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hotpixel/thermoview/pkg/config"
	"github.com/hotpixel/thermoview/pkg/grid"
	"github.com/hotpixel/thermoview/pkg/palette"
	"github.com/hotpixel/thermoview/pkg/render"
	"github.com/hotpixel/thermoview/pkg/sensor"
)

// frameSource is what the window loop consumes: either the serial
// reader or the simulator.
type frameSource interface {
	Stream() (context.CancelFunc, <-chan grid.Grid)
}

func newRunCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the viewer window and start rendering frames",
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := config.Load(configFile)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			if err := conf.Validate(); err != nil {
				logrus.Fatalf("invalid configuration: %v", err)
			}

			colors, err := palette.Build(conf.PackedColors())
			if err != nil {
				logrus.Fatalf("invalid palette: %v", err)
			}

			var source frameSource
			if conf.Simulate {
				source = &sensor.Simulator{
					Rows: conf.Rows, Cols: conf.Cols,
					MinTemp: conf.MinTemp, MaxTemp: conf.MaxTemp,
					Interval: 100 * time.Millisecond,
				}
			} else {
				frames, err := sensor.OpenSerial(conf.Port, conf.Baud, conf.Rows, conf.Cols)
				if err != nil {
					logrus.Fatalf("%v", err)
				}
				source = frames
			}

			outRows, outCols := conf.OutputDims()
			planner := render.NewPlanner(outRows, outCols, colors, conf.MinTemp, conf.MaxTemp)

			pixelgl.Run(func() {
				runView(conf, planner, source)
			})
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "config.toml", "Path to the TOML config file")
	return cmd
}

// runView owns the window. One tick per delivered grid: interpolate if
// configured, map to colors, retile the viewport. Between ticks the
// previous plan stays on screen.
func runView(conf *config.Config, planner *render.Planner, source frameSource) {
	cfg := pixelgl.WindowConfig{
		Title:  fmt.Sprintf("thermoview %dx%d @%s", conf.Rows, conf.Cols, version),
		Bounds: pixel.R(0, 0, float64(conf.Width), float64(conf.Height)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		logrus.Fatalf("error creating window: %v", err)
	}

	cancel, frames := source.Stream()
	defer cancel()

	imd := imdraw.New(nil)
	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) || win.JustPressed(pixelgl.KeyQ) {
			return
		}

		select {
		case g, ok := <-frames:
			if !ok {
				logrus.Warn("frame source closed, keeping last frame on screen")
				frames = nil
				break
			}
			if conf.Interpolate {
				g = grid.Interpolate(g, conf.Factor)
			}
			cells, err := planner.Plan(g, win.Bounds())
			if err != nil {
				logrus.WithField("error", err).Warn("skipping frame")
				break
			}
			imd.Clear()
			for _, c := range cells {
				imd.Color = c.Color
				imd.Push(c.Bounds.Min, c.Bounds.Max)
				imd.Rectangle(0)
			}
		default:
		}

		win.Clear(color.Black)
		imd.Draw(win)
		win.Update()
	}
}
