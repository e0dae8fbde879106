// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"strings"
	"time"
)

// Whole-query field match weights.
const (
	searchNameWt        = 0.8
	searchCategoryWt    = 0.5
	searchSubcategoryWt = 0.6
	searchDescriptionWt = 0.4
)

// Per-term partial match weights.
const (
	termNameWt        = 0.3
	termCategoryWt    = 0.2
	termSubcategoryWt = 0.25
	termDescriptionWt = 0.15
	termTagWt         = 0.35
)

// searchMinTermLength drops noise terms from per-term matching. Shorter
// terms still count toward the term-score denominator.
const searchMinTermLength = 3

// searchRelevanceFloor is the exclusive lower bound for keeping a result.
const searchRelevanceFloor = 0.1

// Search scores items against a free-text query, optionally restricted to
// one category. Queries shorter than the configured minimum (after
// trimming) return an empty result. Relevance is clamped to 1.0 and
// results at or below the noise floor are dropped before ranking.
func (e *Engine) Search(ctx context.Context, query, category string, limit int) ([]SearchResult, error) {
	start := time.Now()

	if err := e.delay.Wait(ctx, e.cfg.Delays.Search); err != nil {
		e.observe("search", 0, start, err)
		return nil, err
	}

	snap := e.catalog.Snapshot()
	limit = clampLimit(limit, e.cfg.Limits.Search, e.cfg.Limits.Max)

	normalized := strings.ToLower(strings.TrimSpace(query))
	if len(normalized) < e.cfg.Limits.MinQueryLength || snap.Len() == 0 {
		e.observe("search", 0, start, nil)
		return []SearchResult{}, nil
	}

	terms := strings.Fields(normalized)

	items := snap.Items()
	results := make([]SearchResult, 0, len(items))

	for i := range items {
		item := items[i]
		if category != "" && category != CategoryAll && item.Category != category {
			continue
		}

		name := strings.ToLower(item.Name)
		cat := strings.ToLower(item.Category)
		sub := strings.ToLower(item.Subcategory)
		desc := strings.ToLower(item.Description)

		relevance := 0.0
		if strings.Contains(name, normalized) {
			relevance += searchNameWt
		}
		if strings.Contains(cat, normalized) {
			relevance += searchCategoryWt
		}
		if strings.Contains(sub, normalized) {
			relevance += searchSubcategoryWt
		}
		if desc != "" && strings.Contains(desc, normalized) {
			relevance += searchDescriptionWt
		}

		matched := []string{}
		termScore := 0.0
		for _, term := range terms {
			if len(term) < searchMinTermLength {
				continue
			}
			if strings.Contains(name, term) {
				matched = append(matched, "name: "+term)
				termScore += termNameWt
			}
			if strings.Contains(cat, term) {
				matched = append(matched, "category: "+term)
				termScore += termCategoryWt
			}
			if strings.Contains(sub, term) {
				matched = append(matched, "subcategory: "+term)
				termScore += termSubcategoryWt
			}
			if desc != "" && strings.Contains(desc, term) {
				matched = append(matched, "description: "+term)
				termScore += termDescriptionWt
			}
			for _, tag := range item.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					matched = append(matched, "tag: "+term)
					termScore += termTagWt
					break
				}
			}
		}

		if len(terms) > 0 {
			relevance += termScore / float64(len(terms))
		}
		relevance = clamp01(relevance)

		if relevance <= searchRelevanceFloor {
			continue
		}

		results = append(results, SearchResult{
			Item:         item,
			Relevance:    relevance,
			MatchedTerms: matched,
		})
	}

	results = rankTop(results, func(r SearchResult) float64 { return r.Relevance }, limit)
	e.observe("search", len(results), start, nil)
	return results, nil
}
