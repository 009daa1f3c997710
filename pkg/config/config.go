// Package config loads and validates the viewer configuration. All of
// the fatal error class (bad dimensions, bad factor, unknown or empty
// palette) is caught here, before any frame is processed.
package config

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"

	"github.com/hotpixel/thermoview/pkg/palette"
)

type Config struct {
	Rows        int     `koanf:"rows"`
	Cols        int     `koanf:"cols"`
	Interpolate bool    `koanf:"interpolate"`
	Factor      int     `koanf:"factor"`
	MinTemp     float64 `koanf:"mintemp"`
	MaxTemp     float64 `koanf:"maxtemp"`
	Palette     string  `koanf:"palette"`
	Colors      []int   `koanf:"colors"` // packed RGB565, overrides Palette when set
	Port        string  `koanf:"port"`
	Baud        int     `koanf:"baud"`
	Simulate    bool    `koanf:"simulate"`
	Width       int     `koanf:"width"`
	Height      int     `koanf:"height"`
}

// Default matches an 8x8 sensor module on a 115200 baud link.
func Default() *Config {
	return &Config{
		Rows:        8,
		Cols:        8,
		Interpolate: true,
		Factor:      4,
		MinTemp:     20,
		MaxTemp:     38,
		Palette:     "ironbow",
		Baud:        115200,
		Width:       512,
		Height:      512,
	}
}

// Load reads the [thermoview] section of a TOML file over the
// defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := k.Unmarshal("thermoview", conf); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Factor <= 0 {
		return fmt.Errorf("interpolation factor must be positive, got %d", c.Factor)
	}
	if c.MinTemp >= c.MaxTemp {
		return fmt.Errorf("temperature range [%g, %g] is empty", c.MinTemp, c.MaxTemp)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Colors) == 0 {
		if _, ok := palette.Palettes[c.Palette]; !ok {
			return fmt.Errorf("palette %q not found", c.Palette)
		}
	}
	for i, col := range c.Colors {
		if col < 0 || col > 0xFFFF {
			return fmt.Errorf("colors[%d] = %#x is not a packed 16-bit color", i, col)
		}
	}
	if !c.Simulate && c.Port == "" {
		return fmt.Errorf("either a serial port or simulate mode is required")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud rate must be positive, got %d", c.Baud)
	}
	return nil
}

// PackedColors returns the ramp to build: the custom color list when
// one is configured, the named built-in otherwise.
func (c *Config) PackedColors() []uint16 {
	if len(c.Colors) > 0 {
		packed := make([]uint16, len(c.Colors))
		for i, col := range c.Colors {
			packed[i] = uint16(col)
		}
		return packed
	}
	return palette.Palettes[c.Palette]
}

// OutputDims is the shape of the grid handed to the renderer each
// tick.
func (c *Config) OutputDims() (rows, cols int) {
	if c.Interpolate {
		return c.Rows * c.Factor, c.Cols * c.Factor
	}
	return c.Rows, c.Cols
}
