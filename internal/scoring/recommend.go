// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pmarkee/ecosphere/internal/catalog"
)

// Score weights for the recommendation factors.
const (
	recommendBaseline      = 0.5
	recommendNoiseSpan     = 0.3
	recommendInteractionWt = 0.1
	recommendCompleteWt    = 0.2
	recommendPopularityWt  = 0.15
)

// CategoryAll disables category filtering when passed to Recommend.
const CategoryAll = "all"

// Recommend scores items for discovery, optionally restricted to one
// category. The category filter matches exactly; an unknown category
// yields an empty result, not an error. A limit below zero selects the
// configured default, zero returns no results.
func (e *Engine) Recommend(ctx context.Context, category string, limit int) ([]Recommendation, error) {
	start := time.Now()

	if err := e.delay.Wait(ctx, e.cfg.Delays.Recommendations); err != nil {
		e.observe("recommendations", 0, start, err)
		return nil, err
	}

	snap := e.catalog.Snapshot()
	limit = clampLimit(limit, e.cfg.Limits.Recommendations, e.cfg.Limits.Max)

	if snap.Len() == 0 {
		e.observe("recommendations", 0, start, nil)
		return []Recommendation{}, nil
	}

	items := snap.Items()
	total := snap.Len()
	results := make([]Recommendation, 0, len(items))

	for i := range items {
		item := items[i]
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}

		score := recommendBaseline + e.rng.Float64()*recommendNoiseSpan

		interaction := float64(e.tracker.WeightOf(item.ID))
		score += interaction * recommendInteractionWt

		completeness := completenessScore(&item)
		score += completeness * recommendCompleteWt

		popularity := float64(snap.CategoryCount(item.Category)) / float64(total)
		score += popularity * recommendPopularityWt

		results = append(results, Recommendation{
			Item:   item,
			Score:  score,
			Reason: recommendationReason(&item, interaction, completeness, popularity),
		})
	}

	results = rankTop(results, func(r Recommendation) float64 { return r.Score }, limit)
	e.observe("recommendations", len(results), start, nil)
	return results, nil
}

// completenessScore rewards items that fill in more of their profile.
// The maximum is 1.0 when every field is present.
func completenessScore(item *catalog.Item) float64 {
	score := 0.0
	if len(item.Description) > 10 {
		score += 0.3
	}
	if item.Website != "" {
		score += 0.2
	}
	if item.GitHub != "" {
		score += 0.15
	}
	if item.Twitter != "" {
		score += 0.1
	}
	if item.Telegram != "" {
		score += 0.1
	}
	if item.Logo != "" {
		score += 0.15
	}
	return score
}

// recommendationReason builds the human-readable justification from the
// strongest contributing factors, keeping at most two.
func recommendationReason(item *catalog.Item, interaction, completeness, popularity float64) string {
	reasons := make([]string, 0, 5)

	if interaction > 0 {
		reasons = append(reasons, "based on your recent activity")
	}
	if completeness > 0.5 {
		reasons = append(reasons, "well-documented project")
	}
	if popularity > 0.2 {
		reasons = append(reasons, fmt.Sprintf("popular %s category", item.Category))
	}
	if item.GitHub != "" {
		reasons = append(reasons, "active development")
	}
	if len(item.Description) > 100 {
		reasons = append(reasons, "comprehensive information")
	}

	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "matches your interests")
	}

	return "Recommended for " + strings.Join(reasons, " and ")
}
