// Package sensor supplies validated temperature grids, one per tick.
// The serial source speaks the camera's line protocol: one frame per
// line, rows*cols comma-separated float readings. Anything that does
// not parse to exactly that shape is dropped here and never reaches
// the interpolation or mapping stages.
package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/hotpixel/thermoview/pkg/grid"
)

// Frames reads line-framed sample grids from a byte stream.
type Frames struct {
	r          io.ReadCloser
	rows, cols int
	log        logrus.FieldLogger
	dropped    atomic.Uint64
}

// NewFrames wraps an already-open stream. Used directly in tests; real
// hardware goes through OpenSerial.
func NewFrames(r io.ReadCloser, rows, cols int) *Frames {
	return &Frames{r: r, rows: rows, cols: cols, log: logrus.StandardLogger()}
}

// OpenSerial opens the camera's serial port and wraps it as a frame
// source.
func OpenSerial(portName string, baudRate, rows, cols int) (*Frames, error) {
	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open sensor port %s: %w", portName, err)
	}
	return NewFrames(port, rows, cols), nil
}

// Stream starts reading frames into the returned channel. The channel
// closes on read error or cancellation. Cancelling also closes the
// underlying stream so a blocked read wakes up.
func (f *Frames) Stream() (context.CancelFunc, <-chan grid.Grid) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan grid.Grid, 1)

	go func() {
		defer close(frames)
		scanner := bufio.NewScanner(f.r)
		for scanner.Scan() {
			g, err := f.parseLine(scanner.Text())
			if err != nil {
				f.dropped.Add(1)
				f.log.WithFields(logrus.Fields{
					"dropped": f.dropped.Load(),
					"reason":  err,
				}).Warn("discarding malformed frame")
				continue
			}
			select {
			case frames <- g:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			f.log.WithField("error", err).Error("sensor stream ended")
		}
	}()

	return func() {
		cancel()
		f.r.Close()
	}, frames
}

// Dropped reports how many malformed frames have been discarded since
// the stream started. A frozen display with a climbing counter means
// the wire format is wrong, not the renderer.
func (f *Frames) Dropped() uint64 {
	return f.dropped.Load()
}

func (f *Frames) parseLine(line string) (grid.Grid, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return grid.Grid{}, fmt.Errorf("empty line")
	}
	fields := strings.Split(line, ",")
	if len(fields) != f.rows*f.cols {
		return grid.Grid{}, fmt.Errorf("got %d readings, want %d", len(fields), f.rows*f.cols)
	}
	cells := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("reading %d: %w", i, err)
		}
		cells[i] = v
	}
	return grid.New(f.rows, f.cols, cells)
}

// Ports lists serial ports that might have a camera on the other end.
func Ports() ([]*enumerator.PortDetails, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}
	return details, nil
}
