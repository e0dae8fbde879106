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

// Similarity factor weights.
const (
	relatedCategoryWt    = 0.3
	relatedSubcategoryWt = 0.4
	relatedTagWt         = 0.05
	relatedNameWordWt    = 0.1
	relatedNoiseSpan     = 0.1
)

// relatedMinWordLength is the shortest name token considered meaningful
// for the name-overlap factor.
const relatedMinWordLength = 4

// Related scores every other item against the source item and returns the
// most similar ones. An unknown source ID yields an empty result, not an
// error.
func (e *Engine) Related(ctx context.Context, itemID string, limit int) ([]RelatedItem, error) {
	start := time.Now()

	if err := e.delay.Wait(ctx, e.cfg.Delays.Related); err != nil {
		e.observe("related", 0, start, err)
		return nil, err
	}

	snap := e.catalog.Snapshot()
	limit = clampLimit(limit, e.cfg.Limits.Related, e.cfg.Limits.Max)

	source, ok := snap.Item(itemID)
	if !ok || snap.Len() == 0 {
		e.observe("related", 0, start, nil)
		return []RelatedItem{}, nil
	}

	sourceWords := nameWords(source.Name)

	items := snap.Items()
	results := make([]RelatedItem, 0, len(items))

	for i := range items {
		item := items[i]
		if item.ID == itemID {
			continue
		}

		factors := []string{}
		similarity := 0.0

		if item.Category == source.Category {
			similarity += relatedCategoryWt
			factors = append(factors, "Same category: "+item.Category)
		}
		if item.Subcategory == source.Subcategory {
			similarity += relatedSubcategoryWt
			factors = append(factors, "Same subcategory: "+item.Subcategory)
		}

		if len(item.Tags) > 0 && len(source.Tags) > 0 {
			common := make([]string, 0, len(item.Tags))
			for _, tag := range item.Tags {
				if source.HasTag(tag) {
					common = append(common, tag)
				}
			}
			if len(common) > 0 {
				similarity += relatedTagWt * float64(len(common))
				factors = append(factors, "Common tags: "+strings.Join(common, ", "))
			}
		}

		shared := 0
		for _, word := range nameWords(item.Name) {
			if len(word) >= relatedMinWordLength && containsWord(sourceWords, word) {
				shared++
			}
		}
		if shared > 0 {
			similarity += relatedNameWordWt * float64(shared)
			factors = append(factors, "Similar name elements")
		}

		similarity += e.rng.Float64() * relatedNoiseSpan
		similarity = clamp01(similarity)

		results = append(results, RelatedItem{
			Item:          item,
			Similarity:    similarity,
			CommonFactors: factors,
		})
	}

	results = rankTop(results, func(r RelatedItem) float64 { return r.Similarity }, limit)
	e.observe("related", len(results), start, nil)
	return results, nil
}

func nameWords(name string) []string {
	return strings.Fields(strings.ToLower(name))
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
