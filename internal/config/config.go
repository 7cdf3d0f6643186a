// Package config loads the spirograph command's settings from TOML.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dyed-eye/spirograph/curve"
	"github.com/dyed-eye/spirograph/render"
)

// Config is the full set of settings. Zero-valued fields in a file keep
// the values from Default.
type Config struct {
	// Defaults are the parameters of the example curve.
	Defaults Defaults `toml:"defaults"`
	// Policy is "lenient" (d >= 0) or "strict" (d > 0).
	Policy    string    `toml:"policy"`
	Render    Render    `toml:"render"`
	Animation Animation `toml:"animation"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Defaults holds the example curve's parameters.
type Defaults struct {
	Fixed   float64 `toml:"fixed"`
	Rolling float64 `toml:"rolling"`
	Offset  float64 `toml:"offset"`
}

// Render holds canvas settings. Colors are hex strings such as "#0000ff".
type Render struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	LineWidth  float64 `toml:"line_width"`
	Stroke     string  `toml:"stroke"`
	Background string  `toml:"background"`
	Title      string  `toml:"title"`
	Padding    float64 `toml:"padding"`
}

// Animation holds drawing pace settings.
type Animation struct {
	Delay      Duration `toml:"delay"`
	FrameEvery int      `toml:"frame_every"`
	// Preview, when set, is an image file rewritten at every frame so an
	// external viewer can follow the drawing.
	Preview string `toml:"preview"`
}

// Duration is a time.Duration written as a string like "2ms" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Defaults: Defaults{Fixed: 220, Rolling: 65, Offset: 110},
		Policy:   curve.AllowZeroOffset.String(),
		Render: Render{
			Width:      800,
			Height:     800,
			LineWidth:  1.5,
			Stroke:     "#0000ff",
			Background: "#ffffff",
			Title:      "Hypotrochoid",
			Padding:    10,
		},
		Animation: Animation{
			Delay:      Duration{time.Millisecond},
			FrameEvery: 24,
		},
		LogLevel: "warn",
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that can be checked without drawing.
func (c Config) Validate() error {
	if _, err := c.CurvePolicy(); err != nil {
		return err
	}
	if err := c.Example().Validate(curve.AllowZeroOffset); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Animation.Delay.Duration < 0 {
		return fmt.Errorf("animation delay must not be negative, got %v", c.Animation.Delay)
	}
	if c.Animation.Preview != "" {
		if _, err := render.FormatForExt(filepath.Ext(c.Animation.Preview)); err != nil {
			return fmt.Errorf("animation preview: %w", err)
		}
	}
	return nil
}

// Example returns the example curve's parameters.
func (c Config) Example() curve.Parameters {
	return curve.Parameters{Fixed: c.Defaults.Fixed, Rolling: c.Defaults.Rolling, Offset: c.Defaults.Offset}
}

// CurvePolicy parses Policy.
func (c Config) CurvePolicy() (curve.Policy, error) {
	return curve.ParsePolicy(c.Policy)
}

// Generator returns the default curve.Generator under Policy.
func (c Config) Generator() (curve.Generator, error) {
	p, err := c.CurvePolicy()
	if err != nil {
		return curve.Generator{}, err
	}
	g := curve.DefaultGenerator()
	g.Policy = p
	return g, nil
}

// Style converts the render settings into a render.Style.
func (c Config) Style() (render.Style, error) {
	stroke, err := parseColor(c.Render.Stroke)
	if err != nil {
		return render.Style{}, fmt.Errorf("render stroke: %w", err)
	}
	bg, err := parseColor(c.Render.Background)
	if err != nil {
		return render.Style{}, fmt.Errorf("render background: %w", err)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return render.Style{}, render.ErrInvalidSize
	}
	return render.Style{
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		LineWidth:  c.Render.LineWidth,
		Stroke:     stroke,
		Background: bg,
		Title:      c.Render.Title,
		Padding:    c.Render.Padding,
	}, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, err
	}
	return l, nil
}

func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return c, nil
}
