package main

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for the walkthrough.
const (
	DefaultMaxDim    = 5
	DefaultLower     = -1e10
	DefaultUpper     = 1e10
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var errConfig = errors.New("gaussjordan: invalid configuration")

// Config holds the command's resolved flags.
type Config struct {
	Seed      int64 // 0 means derive from the clock
	MaxDim    int
	Lower     float64
	Upper     float64
	Tolerance float64
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxDim:    DefaultMaxDim,
		Lower:     DefaultLower,
		Upper:     DefaultUpper,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Validate rejects values the matrix and samples packages would refuse later,
// so the user gets one error before any output.
func (c Config) Validate() error {
	if c.MaxDim <= 0 {
		return fmt.Errorf("%w: max-dim must be > 0, got %d", errConfig, c.MaxDim)
	}
	if !finite(c.Lower) || !finite(c.Upper) {
		return fmt.Errorf("%w: bounds must be finite", errConfig)
	}
	if !finite(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be finite and >= 0", errConfig)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log-format must be text or json, got %q", errConfig, c.LogFormat)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
