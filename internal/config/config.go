// Package config handles configuration for forms-cli.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mj1618/forms-cli/internal/geometry"
	"github.com/mj1618/forms-cli/internal/search"
	"github.com/mj1618/forms-cli/internal/watch"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config represents the workspace configuration (forms-cli.yaml).
type Config struct {
	Geometry Geometry `yaml:"geometry"`
	Labels   Labels   `yaml:"labels"`
	Watch    Watch    `yaml:"watch"`
	Log      Log      `yaml:"log"`
}

// Geometry holds the row detection tolerances, in pixels.
type Geometry struct {
	AlignTolerance int `yaml:"align_tolerance"`
	GapTolerance   int `yaml:"gap_tolerance"`
}

// Labels controls how display names are compared.
type Labels struct {
	Separator string `yaml:"separator"` // Trailing separator stripped from names
}

// Watch configures the window change watcher.
type Watch struct {
	Interval int `yaml:"interval"` // Sampling interval in milliseconds
}

// Log configures the log file.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Geometry: Geometry{
			AlignTolerance: geometry.DefaultAlignTolerance,
			GapTolerance:   geometry.DefaultGapTolerance,
		},
		Labels: Labels{Separator: search.DefaultSeparator},
		Watch:  Watch{Interval: int(watch.DefaultInterval / time.Millisecond)},
		Log:    Log{Level: "info"},
	}
}

// Load loads configuration from a file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir looks for forms-cli.yaml or forms-cli.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"forms-cli.yaml", "forms-cli.yml"} {
		configPath := filepath.Join(dir, name)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}

	// No config file found, return defaults
	return Default(), nil
}

// Validate rejects settings no comparison could work with.
func (c *Config) Validate() error {
	if c.Geometry.AlignTolerance < 0 {
		return fmt.Errorf("geometry.align_tolerance must not be negative")
	}
	if c.Geometry.GapTolerance < 0 {
		return fmt.Errorf("geometry.gap_tolerance must not be negative")
	}
	if c.Watch.Interval < 0 {
		return fmt.Errorf("watch.interval must not be negative")
	}
	return nil
}

// Set overrides one setting by its dotted key, coercing value to the
// setting's type. Used for command-line overrides.
func (c *Config) Set(key string, value interface{}) error {
	var err error
	switch key {
	case "geometry.align_tolerance":
		c.Geometry.AlignTolerance, err = cast.ToIntE(value)
	case "geometry.gap_tolerance":
		c.Geometry.GapTolerance, err = cast.ToIntE(value)
	case "labels.separator":
		c.Labels.Separator, err = cast.ToStringE(value)
	case "watch.interval":
		c.Watch.Interval, err = cast.ToIntE(value)
	case "log.file":
		c.Log.File, err = cast.ToStringE(value)
	case "log.level":
		c.Log.Level, err = cast.ToStringE(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	return c.Validate()
}

// Comparator returns the geometry comparator for these settings.
func (c *Config) Comparator() geometry.Comparator {
	return geometry.Comparator{
		AlignTolerance: c.Geometry.AlignTolerance,
		GapTolerance:   c.Geometry.GapTolerance,
	}
}

// Searcher returns a tree searcher for these settings.
func (c *Config) Searcher() search.Searcher {
	return search.Searcher{Geometry: c.Comparator(), Separator: c.Labels.Separator}
}

// WatchInterval is the watcher sampling interval.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.Watch.Interval) * time.Millisecond
}
