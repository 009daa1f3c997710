// Package palette maps continuous temperature values onto a fixed
// color ramp. Ramps are shipped as packed RGB565 words, the format the
// display firmware was calibrated with, and expanded to 8-bit RGBA
// once at startup.
package palette

import (
	"errors"
	"image/color"
	"math"
)

// ErrEmpty is returned when a palette has no entries. An empty ramp
// has no index 0 to clamp to, so Build refuses it outright.
var ErrEmpty = errors.New("palette: no colors")

// Build expands packed RGB565 colors into full RGBA entries. Channels
// are widened by bit replication rather than plain shifting, so 0x1F
// red becomes 0xFF instead of 0xF8 and the ramp keeps its calibrated
// endpoints.
func Build(packed []uint16) ([]color.RGBA, error) {
	if len(packed) == 0 {
		return nil, ErrEmpty
	}
	out := make([]color.RGBA, len(packed))
	for i, p := range packed {
		r := uint8(p >> 11 & 0x1F)
		g := uint8(p >> 5 & 0x3F)
		b := uint8(p & 0x1F)
		out[i] = color.RGBA{
			R: r<<3 | r>>2,
			G: g<<2 | g>>4,
			B: b<<3 | b>>2,
			A: 255,
		}
	}
	return out, nil
}

// Lookup maps v linearly from [min, max] onto palette indices 0..n-1,
// rounding to the nearest index. Out-of-range readings saturate to the
// nearest end of the ramp; a noisy sample renders as the hottest or
// coldest color instead of glitching.
func Lookup(v, min, max float64, n int) int {
	idx := int(math.Round((v - min) / (max - min) * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
