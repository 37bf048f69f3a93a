package domain

import (
	"fmt"
	"runtime"

	"go.trai.ch/zerr"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved configuration of a scan.
type Config struct {
	// Path is the config file the values were loaded from, empty when defaults are used.
	Path               string
	Exclude            []string
	DevOverridesDirect bool
	FailOnConflict     bool
	Format             string
	Color              string
	Suggest            bool
	FollowSymlinks     bool
	Concurrency        int
	Snapshot           bool
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Exclude:            DefaultExcludes(),
		DevOverridesDirect: true,
		FollowSymlinks:     true,
		Format:             FormatText,
		Color:              ColorAuto,
		Concurrency:        runtime.NumCPU(),
	}
}

// MergePolicy returns the merge policy described by the config.
func (c *Config) MergePolicy() MergePolicy {
	return MergePolicy{DevOverridesDirect: c.DevOverridesDirect}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return zerr.With(fmt.Errorf("%w", ErrInvalidFormat), "format", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return zerr.With(fmt.Errorf("%w", ErrInvalidColorMode), "color", c.Color)
	}
	if c.Concurrency < 0 {
		return zerr.With(fmt.Errorf("%w", ErrInvalidConcurrency), "concurrency", c.Concurrency)
	}
	return nil
}
