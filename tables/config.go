package tables

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/rowscan/layout"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds classifier thresholds
type Config struct {
	// Number of lines in the neighborhood used to infer columns
	WindowSize int `yaml:"window_size" json:"window_size"`

	// Minimum columnar space between fragments (points). Accepted for
	// compatibility with existing configuration files; the classifier
	// does not consult it.
	MinimumColumnarSpace int `yaml:"minimum_columnar_space" json:"minimum_columnar_space"`

	// Minimum fragments sharing an edge for that edge to start a column
	MinimumRepeatingLines int `yaml:"minimum_repeating_lines" json:"minimum_repeating_lines"`

	// Minimum candidate columns for a window to hold a table
	MinimumColumns int `yaml:"minimum_columns" json:"minimum_columns"`

	// Consecutive lines a column gap must stay empty on
	MinimumContiguousLines int `yaml:"minimum_contiguous_lines" json:"minimum_contiguous_lines"`

	// Share of agreeing line pitches for a window to be evenly spaced (0-1)
	PitchTolerance float64 `yaml:"pitch_tolerance" json:"pitch_tolerance"`

	// How many of the leftmost columns may hold the dates
	DateColumnReach int `yaml:"date_column_reach" json:"date_column_reach"`
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		WindowSize:             layout.DefaultWindowSize,
		MinimumColumnarSpace:   3,
		MinimumRepeatingLines:  2,
		MinimumColumns:         3,
		MinimumContiguousLines: 5,
		PitchTolerance:         layout.DefaultPitchTolerance,
		DateColumnReach:        2,
	}
}

// Validate checks that every threshold is usable.
func (c Config) Validate() error {
	switch {
	case c.WindowSize < 1:
		return fmt.Errorf("%w: window_size %d must be at least 1", ErrInvalidConfig, c.WindowSize)
	case c.MinimumColumnarSpace < 0:
		return fmt.Errorf("%w: minimum_columnar_space %d must not be negative", ErrInvalidConfig, c.MinimumColumnarSpace)
	case c.MinimumRepeatingLines < 1:
		return fmt.Errorf("%w: minimum_repeating_lines %d must be at least 1", ErrInvalidConfig, c.MinimumRepeatingLines)
	case c.MinimumColumns < 1:
		return fmt.Errorf("%w: minimum_columns %d must be at least 1", ErrInvalidConfig, c.MinimumColumns)
	case c.MinimumContiguousLines < 1:
		return fmt.Errorf("%w: minimum_contiguous_lines %d must be at least 1", ErrInvalidConfig, c.MinimumContiguousLines)
	case c.PitchTolerance < 0 || c.PitchTolerance > 1:
		return fmt.Errorf("%w: pitch_tolerance %v must be between 0 and 1", ErrInvalidConfig, c.PitchTolerance)
	case c.DateColumnReach < 0:
		return fmt.Errorf("%w: date_column_reach %d must not be negative", ErrInvalidConfig, c.DateColumnReach)
	}
	return nil
}

// ParseConfig reads YAML configuration on top of the defaults. Unknown keys
// are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(bytes.NewReader(data))
}

