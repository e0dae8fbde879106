// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package scoring implements the four catalog scorers: recommendations,
// search relevance, item similarity and category trends.
//
// All scorers share one Engine, which owns a seeded random source for the
// noise components and a DelayStrategy for the simulated processing
// latency. Scoring calls block until the delay elapses or the context is
// cancelled; with a fixed seed and identical inputs a run is fully
// reproducible.
//
// Empty results are ordinary outcomes, not errors: an empty catalog, an
// unknown category or item ID, a too-short query and an explicit zero
// limit all produce an empty slice and a nil error. The only scorer error
// is context cancellation during the delay.
package scoring
