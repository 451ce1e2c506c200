package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quasilyte/gmath"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	Hull      HullConfig      `yaml:"hull"`
	Chains    ChainsConfig    `yaml:"chains"`
	Generator GeneratorConfig `yaml:"generator"`
	Viewer    ViewerConfig    `yaml:"viewer"`
}

type HullConfig struct {
	// Balance keeps the hull trees height balanced
	Balance bool `yaml:"balance"`
}

type ChainsConfig struct {
	// CacheSize is the number of localization results to remember, zero disables the cache
	CacheSize int `yaml:"cache_size"`
}

type GeneratorConfig struct {
	Seed              uint64  `yaml:"seed"`
	Count             int     `yaml:"count"`
	DeleteProbability float64 `yaml:"delete_probability"`

	// FeatureSize is the typical distance between dense regions, zero
	// derives it from the bounds
	FeatureSize float64 `yaml:"feature_size,omitempty"`

	// Precision is the number of decimals of every coordinate, negative keeps all
	Precision int `yaml:"precision"`

	Bounds Bounds `yaml:"bounds"`
}

type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

func (b Bounds) Rect() gmath.Rect {
	return gmath.Rect{
		Min: gmath.Vec{X: b.MinX, Y: b.MinY},
		Max: gmath.Vec{X: b.MaxX, Y: b.MaxY},
	}
}

type ViewerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	PointRadius float64 `yaml:"point_radius"`

	// FadeDuration is the time points take to appear or vanish
	FadeDuration time.Duration `yaml:"fade_duration"`

	// ZoomDuration is the time the camera takes to fit new content
	ZoomDuration time.Duration `yaml:"zoom_duration"`

	// Batch is the number of points added at once with the generator key
	Batch int `yaml:"batch"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Hull: HullConfig{
			Balance: true,
		},
		Chains: ChainsConfig{
			CacheSize: 1024,
		},
		Generator: GeneratorConfig{
			Seed:              1,
			Count:             1000,
			DeleteProbability: 0.25,
			Precision:         3,
			Bounds: Bounds{
				MinX: 0, MinY: 0,
				MaxX: 1000, MaxY: 1000,
			},
		},
		Viewer: ViewerConfig{
			Width:        1280,
			Height:       800,
			PointRadius:  4,
			FadeDuration: 250 * time.Millisecond,
			ZoomDuration: 400 * time.Millisecond,
			Batch:        25,
		},
	}
}

// Load reads the yaml file at path. Values missing in the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes yaml on top of the default configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Chains.CacheSize < 0 {
		return fmt.Errorf("chains.cache_size must be non-negative")
	}

	gen := c.Generator
	if gen.Count < 0 {
		return fmt.Errorf("generator.count must be non-negative")
	}

	if gen.DeleteProbability < 0 || gen.DeleteProbability > 1 {
		return fmt.Errorf("generator.delete_probability must be between 0 and 1")
	}

	if gen.FeatureSize < 0 {
		return fmt.Errorf("generator.feature_size must be non-negative")
	}

	if gen.Bounds.MinX >= gen.Bounds.MaxX || gen.Bounds.MinY >= gen.Bounds.MaxY {
		return fmt.Errorf("generator.bounds must not be empty")
	}

	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer size must be positive")
	}

	if c.Viewer.FadeDuration < 0 || c.Viewer.ZoomDuration < 0 {
		return fmt.Errorf("viewer durations must be non-negative")
	}

	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}

	return level, nil
}
