package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/paramosc/internal/oscillator"
)

const (
	DefaultTStart    = 0.0
	DefaultTEnd      = 200.0
	DefaultDt        = 0.005
	DefaultCurveStep = 0.005
	DefaultDPI       = 150
	DefaultWidthIn   = 10.0
	DefaultHeightIn  = 5.0
	DefaultViewW     = 48
	DefaultViewH     = 16

	// MaxSamples bounds the trajectory grid and the bifurcation curve.
	MaxSamples = 1_000_000
)

// ThemeNames lists the view themes, in cycling order.
var ThemeNames = []string{"minimal", "cyberpunk", "ocean"}

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Params   *oscillator.Params `yaml:"params,omitempty"`
	Sampling SamplingConfig     `yaml:"sampling"`
	Axes     AxesConfig         `yaml:"axes"`
	Output   OutputConfig       `yaml:"output"`
	View     ViewConfig         `yaml:"view"`
	LogLevel string             `yaml:"log_level"`
}

type SamplingConfig struct {
	TStart    float64 `yaml:"t_start"`
	TEnd      float64 `yaml:"t_end"`
	Dt        float64 `yaml:"dt"`
	CurveStep float64 `yaml:"curve_step"`
}

// Window is a rendering range; it never clips the sampled data.
type Window struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type AxesConfig struct {
	Growing  Window `yaml:"growing"`
	Decaying Window `yaml:"decaying"`
	// HMax is the upper h limit of the bifurcation window; w spans [0, 2 w0].
	HMax float64 `yaml:"h_max"`
}

type OutputConfig struct {
	Dir      string  `yaml:"dir"`
	Format   string  `yaml:"format"`
	DPI      int     `yaml:"dpi"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
}

type ViewConfig struct {
	Mode   string `yaml:"mode"`
	Theme  string `yaml:"theme"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Sampling: SamplingConfig{
			TStart:    DefaultTStart,
			TEnd:      DefaultTEnd,
			Dt:        DefaultDt,
			CurveStep: DefaultCurveStep,
		},
		Axes: AxesConfig{
			Growing:  Window{Min: -100, Max: 100},
			Decaying: Window{Min: -0.1, Max: 0.1},
			HMax:     2,
		},
		Output: OutputConfig{
			Format:   "png",
			DPI:      DefaultDPI,
			WidthIn:  DefaultWidthIn,
			HeightIn: DefaultHeightIn,
		},
		View: ViewConfig{
			Mode:   "tui",
			Theme:  "minimal",
			Width:  DefaultViewW,
			Height: DefaultViewH,
		},
		LogLevel: "warn",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	s := c.Sampling
	if s.Dt <= 0 || s.TEnd <= s.TStart {
		return fmt.Errorf("%w: sampling [%g, %g) step %g", ErrInvalid, s.TStart, s.TEnd, s.Dt)
	}
	if n := (s.TEnd - s.TStart) / s.Dt; n > MaxSamples {
		return fmt.Errorf("%w: sampling gives %.3g samples, limit %d", ErrInvalid, n, MaxSamples)
	}
	if s.CurveStep <= 0 {
		return fmt.Errorf("%w: curve_step %g", ErrInvalid, s.CurveStep)
	}
	for name, w := range map[string]Window{"growing": c.Axes.Growing, "decaying": c.Axes.Decaying} {
		if w.Max <= w.Min {
			return fmt.Errorf("%w: axes.%s [%g, %g]", ErrInvalid, name, w.Min, w.Max)
		}
	}
	if c.Axes.HMax <= 0 {
		return fmt.Errorf("%w: axes.h_max %g", ErrInvalid, c.Axes.HMax)
	}
	switch c.Output.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	o := c.Output
	if o.DPI <= 0 || o.WidthIn <= 0 || o.HeightIn <= 0 {
		return fmt.Errorf("%w: output size %gx%g in at %d dpi", ErrInvalid, o.WidthIn, o.HeightIn, o.DPI)
	}
	switch c.View.Mode {
	case "tui", "ascii", "none":
	default:
		return fmt.Errorf("%w: view.mode %q", ErrInvalid, c.View.Mode)
	}
	if !slices.Contains(ThemeNames, c.View.Theme) {
		return fmt.Errorf("%w: view.theme %q", ErrInvalid, c.View.Theme)
	}
	if c.View.Width < 8 || c.View.Height < 4 {
		return fmt.Errorf("%w: view size %dx%d", ErrInvalid, c.View.Width, c.View.Height)
	}
	return nil
}
