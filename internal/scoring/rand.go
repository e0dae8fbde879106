// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"math/rand"
	"sync"
)

// lockedRand is a seeded *rand.Rand safe for concurrent use. math/rand's
// global source would serialize all engines on one lock and cannot be
// reseeded per instance, so each engine owns one of these.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // scoring noise, not crypto
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

// Int63n returns a pseudo-random number in [0, n).
func (l *lockedRand) Int63n(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Int63n(n)
}
