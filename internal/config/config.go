// Package config handles spheregen configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/uvsphere/pkg/sphere"
)

// Config holds all spheregen settings.
type Config struct {
	Sphere  SphereConfig  `yaml:"sphere"`
	Batch   BatchConfig   `yaml:"batch"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SphereConfig holds the resolution of a single generated sphere.
type SphereConfig struct {
	Slices   int  `yaml:"slices"`   // Longitude divisions
	Stacks   int  `yaml:"stacks"`   // Latitude divisions
	Textured bool `yaml:"textured"` // Emit UVs with a seam column
}

// BatchConfig lists resolutions generated by the batch command.
type BatchConfig struct {
	Spheres []SphereConfig `yaml:"spheres"`
	Workers int            `yaml:"workers"` // 0 = one goroutine per sphere
}

// OutputConfig controls how reports are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text or yaml
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sphere: SphereConfig{
			Slices: 32,
			Stacks: 16,
		},
		Batch: BatchConfig{
			Spheres: []SphereConfig{
				{Slices: 8, Stacks: 4},
				{Slices: 16, Stacks: 8},
				{Slices: 32, Stacks: 16},
				{Slices: 64, Stacks: 32},
			},
			Workers: 0,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that every sphere the config describes can be generated.
func (c *Config) Validate() error {
	if err := sphere.Validate(c.Sphere.Slices, c.Sphere.Stacks); err != nil {
		return fmt.Errorf("%w: sphere: %w", ErrInvalidConfig, err)
	}
	for i, s := range c.Batch.Spheres {
		if err := sphere.Validate(s.Slices, s.Stacks); err != nil {
			return fmt.Errorf("%w: batch.spheres[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalidConfig, c.Batch.Workers)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalidConfig, c.Output.Format, FormatText, FormatYAML)
	}
	return nil
}
