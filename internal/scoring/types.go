// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import "github.com/pmarkee/ecosphere/internal/catalog"

// Trend classifies the direction of a category's activity.
type Trend string

const (
	// TrendRising indicates growing activity.
	TrendRising Trend = "rising"
	// TrendStable indicates steady activity.
	TrendStable Trend = "stable"
	// TrendDeclining indicates shrinking activity.
	TrendDeclining Trend = "declining"
)

// Recommendation is one scored item from the recommendation scorer.
//
// Score combines a noise baseline with interaction history, item
// completeness and category popularity. It is intentionally not clamped
// to 1.0; display rounding is the caller's concern.
type Recommendation struct {
	Item   catalog.Item `json:"item"`
	Score  float64      `json:"score"`
	Reason string       `json:"reason"`
}

// SearchResult is one scored item from the search relevance scorer.
// Relevance is clamped to [0, 1]; results at or below the noise floor
// (0.1) are dropped before ranking.
type SearchResult struct {
	Item         catalog.Item `json:"item"`
	Relevance    float64      `json:"relevance_score"`
	MatchedTerms []string     `json:"matched_terms"`
}

// RelatedItem is one scored item from the similarity scorer.
// Similarity is clamped to [0, 1]. CommonFactors lists the shared
// attributes that produced the score.
type RelatedItem struct {
	Item          catalog.Item `json:"item"`
	Similarity    float64      `json:"similarity_score"`
	CommonFactors []string     `json:"common_factors"`
}

// TrendInsight is one scored category from the trend scorer.
// Confidence is bounded to [0.5, 1.0]: larger categories produce more
// confident narratives.
type TrendInsight struct {
	Category    string  `json:"category"`
	Trend       Trend   `json:"trend"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}
