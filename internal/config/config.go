// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Detection defaults match ffmpeg's documented blackdetect
// parameters as used by the legacy script (d=0.5, pic_th=0.98).
package config

import (
	"errors"
	"fmt"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Path to the video file to analyze (positional arg).
	VideoPath string

	// Detection tuning, passed through to the blackdetect filter.
	MinDuration  float64 // Default: 0.5. Minimum black-segment length in seconds (d=).
	PicThreshold float64 // Default: 0.98. Brightness threshold for a black picture (pic_th=).

	// Display and logging.
	Verbose      bool
	ShowProgress bool      // Default: true. Cleared by --no-progress.
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.
	CheckOnly    bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		MinDuration:  0.5,
		PicThreshold: 0.98,
		Verbose:      false,
		ShowProgress: true,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// Validate checks detection parameter ranges and the color mode, and, when
// not in CheckOnly mode, requires a video path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.MinDuration <= 0 {
		return fmt.Errorf("minimum black duration must be positive (got %g)", c.MinDuration)
	}
	if c.PicThreshold <= 0 || c.PicThreshold > 1 {
		return fmt.Errorf("picture threshold must be in (0, 1] (got %g)", c.PicThreshold)
	}

	if c.CheckOnly {
		return nil
	}
	if c.VideoPath == "" {
		return errors.New("need exactly one video file path")
	}
	return nil
}
