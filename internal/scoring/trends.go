// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"fmt"
	"time"
)

// Trend classification thresholds on the drawn activity value.
const (
	trendRisingAbove = 0.6
	trendStableAbove = 0.3
)

// trendConfidenceItemCap bounds the item count's contribution to the
// confidence score, so very large categories top out at 1.0.
const trendConfidenceItemCap = 50

// Trends produces one insight per category and returns the most confident
// ones. Direction is drawn from the engine's random source; confidence
// grows with category size and is bounded to [0.5, 1.0]. An empty catalog
// yields an empty result.
func (e *Engine) Trends(ctx context.Context, limit int) ([]TrendInsight, error) {
	start := time.Now()

	if err := e.delay.Wait(ctx, e.cfg.Delays.Trends); err != nil {
		e.observe("trends", 0, start, err)
		return nil, err
	}

	snap := e.catalog.Snapshot()
	limit = clampLimit(limit, e.cfg.Limits.Trends, e.cfg.Limits.Max)

	categories := snap.Categories()
	if len(categories) == 0 {
		e.observe("trends", 0, start, nil)
		return []TrendInsight{}, nil
	}

	insights := make([]TrendInsight, 0, len(categories))
	for _, cat := range categories {
		v := e.rng.Float64()
		trend := TrendDeclining
		switch {
		case v > trendRisingAbove:
			trend = TrendRising
		case v > trendStableAbove:
			trend = TrendStable
		}

		count := cat.Count
		if count > trendConfidenceItemCap {
			count = trendConfidenceItemCap
		}
		confidence := 0.5 + float64(count)/100

		insights = append(insights, TrendInsight{
			Category:    cat.Name,
			Trend:       trend,
			Confidence:  confidence,
			Description: trendDescription(cat.Name, trend, cat.Count),
		})
	}

	insights = rankTop(insights, func(t TrendInsight) float64 { return t.Confidence }, limit)
	e.observe("trends", len(insights), start, nil)
	return insights, nil
}

func trendDescription(category string, trend Trend, count int) string {
	switch trend {
	case TrendRising:
		return fmt.Sprintf("The %s sector is showing strong growth with %d projects and increasing developer activity.", category, count)
	case TrendStable:
		return fmt.Sprintf("The %s sector remains stable with %d established projects maintaining consistent development.", category, count)
	default:
		return fmt.Sprintf("The %s sector with %d projects is showing reduced growth compared to other categories.", category, count)
	}
}
