// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pmarkee/ecosphere/internal/catalog"
	"github.com/pmarkee/ecosphere/internal/interactions"
	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/metrics"
)

// CatalogProvider supplies the current catalog snapshot. *catalog.Store
// satisfies it; tests pass fixed snapshots through snapshotProvider.
type CatalogProvider interface {
	Snapshot() *catalog.Snapshot
}

// Engine runs the four scorers over a shared catalog and interaction
// history. All scoring methods are safe for concurrent use and block for
// the configured simulated processing delay unless cancelled.
type Engine struct {
	cfg     Config
	catalog CatalogProvider
	tracker *interactions.Tracker
	rng     *lockedRand
	delay   DelayStrategy
	logger  zerolog.Logger
}

// Option configures an Engine beyond its Config.
type Option func(*Engine)

// WithDelayStrategy overrides the delay strategy derived from the config.
// Tests use this with NoDelay.
func WithDelayStrategy(d DelayStrategy) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// WithLogger overrides the engine's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates a scoring engine over the given catalog and tracker.
func NewEngine(cfg Config, provider CatalogProvider, tracker *interactions.Tracker, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("catalog provider is required")
	}
	if tracker == nil {
		return nil, fmt.Errorf("interaction tracker is required")
	}

	rng := newLockedRand(cfg.Seed)

	e := &Engine{
		cfg:     cfg,
		catalog: provider,
		tracker: tracker,
		rng:     rng,
		logger:  logging.Logger().With().Str("component", "scoring").Logger(),
	}

	if cfg.Delays.Enabled {
		e.delay = NewUniformDelay(rng)
	} else {
		e.delay = NoDelay{}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Tracker returns the engine's interaction tracker.
func (e *Engine) Tracker() *interactions.Tracker {
	return e.tracker
}

// observe records the scoring metrics and log line shared by all scorers.
func (e *Engine) observe(scorer string, results int, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.RecordScoring(scorer, results, elapsed, err)

	evt := e.logger.Debug().
		Str("scorer", scorer).
		Int("results", results).
		Dur("elapsed", elapsed)
	if err != nil {
		evt = e.logger.Warn().
			Str("scorer", scorer).
			Dur("elapsed", elapsed).
			Err(err)
	}
	evt.Msg("scoring completed")
}
