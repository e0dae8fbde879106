// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import "sort"

// rankTop sorts results by descending score and truncates to limit.
// The sort is stable so equal-scored items keep their catalog order,
// which keeps rankings deterministic under a fixed seed.
// A limit of 0 or below yields an empty (non-nil) slice.
func rankTop[T any](results []T, score func(T) float64, limit int) []T {
	sort.SliceStable(results, func(i, j int) bool {
		return score(results[i]) > score(results[j])
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// clampLimit resolves a caller-supplied limit against the configured
// default and hard cap. Negative values mean "use the default"; zero is
// honored as an explicit request for no results.
func clampLimit(requested, def, max int) int {
	if requested < 0 {
		requested = def
	}
	if requested > max {
		requested = max
	}
	return requested
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
