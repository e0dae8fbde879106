// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"fmt"
	"time"
)

// Config controls scoring behavior: result limits, simulated processing
// delays and the noise seed.
type Config struct {
	// Seed initializes the engine's random source. A fixed seed makes
	// scoring runs reproducible across restarts.
	Seed int64 `koanf:"seed"`

	Limits LimitsConfig `koanf:"limits"`
	Delays DelaysConfig `koanf:"delays"`
}

// LimitsConfig holds the per-scorer default result counts and the hard cap
// applied to caller-supplied limits.
type LimitsConfig struct {
	Recommendations int `koanf:"recommendations"`
	Search          int `koanf:"search"`
	Related         int `koanf:"related"`
	Trends          int `koanf:"trends"`

	// Max caps any caller-supplied limit.
	Max int `koanf:"max"`

	// MinQueryLength is the shortest search query the engine will score.
	MinQueryLength int `koanf:"min_query_length"`
}

// DelayRange is a half-open duration interval a delay is drawn from.
type DelayRange struct {
	Min time.Duration `koanf:"min"`
	Max time.Duration `koanf:"max"`
}

// DelaysConfig holds the per-scorer simulated processing delay ranges.
// Disabled delays make every scorer return as fast as it can compute,
// which is what tests want.
type DelaysConfig struct {
	Enabled bool `koanf:"enabled"`

	Recommendations DelayRange `koanf:"recommendations"`
	Search          DelayRange `koanf:"search"`
	Related         DelayRange `koanf:"related"`
	Trends          DelayRange `koanf:"trends"`
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Limits: LimitsConfig{
			Recommendations: 5,
			Search:          10,
			Related:         4,
			Trends:          3,
			Max:             100,
			MinQueryLength:  2,
		},
		Delays: DelaysConfig{
			Enabled:         true,
			Recommendations: DelayRange{Min: 300 * time.Millisecond, Max: 800 * time.Millisecond},
			Search:          DelayRange{Min: 200 * time.Millisecond, Max: 600 * time.Millisecond},
			Related:         DelayRange{Min: 400 * time.Millisecond, Max: 900 * time.Millisecond},
			Trends:          DelayRange{Min: 500 * time.Millisecond, Max: 1000 * time.Millisecond},
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	limits := map[string]int{
		"recommendations": c.Limits.Recommendations,
		"search":          c.Limits.Search,
		"related":         c.Limits.Related,
		"trends":          c.Limits.Trends,
	}
	for name, limit := range limits {
		if limit <= 0 {
			return fmt.Errorf("limits.%s must be positive, got %d", name, limit)
		}
		if limit > c.Limits.Max {
			return fmt.Errorf("limits.%s (%d) exceeds limits.max (%d)", name, limit, c.Limits.Max)
		}
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be positive, got %d", c.Limits.Max)
	}
	if c.Limits.MinQueryLength < 1 {
		return fmt.Errorf("limits.min_query_length must be at least 1, got %d", c.Limits.MinQueryLength)
	}

	ranges := map[string]DelayRange{
		"recommendations": c.Delays.Recommendations,
		"search":          c.Delays.Search,
		"related":         c.Delays.Related,
		"trends":          c.Delays.Trends,
	}
	for name, r := range ranges {
		if r.Min < 0 {
			return fmt.Errorf("delays.%s.min must not be negative, got %s", name, r.Min)
		}
		if r.Max < r.Min {
			return fmt.Errorf("delays.%s: max (%s) below min (%s)", name, r.Max, r.Min)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() Config {
	return *c
}
