// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"time"
)

// DelayStrategy injects the simulated processing latency each scorer pays
// before computing. Production wires UniformDelay; tests wire NoDelay.
type DelayStrategy interface {
	// Wait blocks for the scorer's delay or until the context is done.
	// Returns the context error on cancellation.
	Wait(ctx context.Context, r DelayRange) error
}

// UniformDelay draws durations uniformly from the configured range using
// the engine's random source.
type UniformDelay struct {
	rng *lockedRand
}

// NewUniformDelay creates a delay strategy backed by the given source.
func NewUniformDelay(rng *lockedRand) *UniformDelay {
	return &UniformDelay{rng: rng}
}

// Wait sleeps for a duration in [r.Min, r.Max], honoring cancellation.
func (d *UniformDelay) Wait(ctx context.Context, r DelayRange) error {
	span := r.Max - r.Min
	delay := r.Min
	if span > 0 {
		delay += time.Duration(d.rng.Int63n(int64(span) + 1))
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay skips the simulated latency entirely. It still observes an
// already-cancelled context so scorer cancellation paths stay testable.
type NoDelay struct{}

// Wait returns immediately, or the context error if ctx is already done.
func (NoDelay) Wait(ctx context.Context, _ DelayRange) error {
	return ctx.Err()
}
