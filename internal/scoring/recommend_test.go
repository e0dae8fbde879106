// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/pmarkee/ecosphere/internal/catalog"
	"github.com/pmarkee/ecosphere/internal/interactions"
)

func TestRecommendEmptyCatalog(t *testing.T) {
	e := newTestEngineWith(t, nil, nil)

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("results = %d, want 0", len(recs))
	}
}

func TestRecommendZeroLimit(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("explicit zero limit should yield no results, got %d", len(recs))
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// 4 fixture items, default limit 5.
	if len(recs) != 4 {
		t.Errorf("results = %d, want 4", len(recs))
	}
}

func TestRecommendCategoryFilter(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "DeFi", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("results = %d, want 3", len(recs))
	}
	for _, r := range recs {
		if r.Item.Category != "DeFi" {
			t.Errorf("item %s has category %s, want DeFi", r.Item.ID, r.Item.Category)
		}
	}
}

func TestRecommendUnknownCategoryYieldsEmpty(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "Gaming", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("results = %d, want 0 for unknown category", len(recs))
	}
}

func TestRecommendAllSentinelDisablesFilter(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), CategoryAll, -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 4 {
		t.Errorf("results = %d, want all 4", len(recs))
	}
}

func TestRecommendScoresStartAtBaseline(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for _, r := range recs {
		if r.Score < recommendBaseline {
			t.Errorf("item %s scored %f, below baseline %f", r.Item.ID, r.Score, recommendBaseline)
		}
	}
}

func TestRecommendSortedDescending(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("results not sorted: %f before %f", recs[i-1].Score, recs[i].Score)
		}
	}
}

func TestRecommendInteractionsDominate(t *testing.T) {
	e := newTestEngine(t)

	// Five clicks add weight 15, worth +1.5 to the score. No other factor
	// combination can outweigh that.
	for i := 0; i < 5; i++ {
		e.Tracker().Record("nft-marketplace-delta", interactions.KindClick)
	}

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("no results")
	}
	if recs[0].Item.ID != "nft-marketplace-delta" {
		t.Errorf("top result = %s, want heavily-interacted nft-marketplace-delta", recs[0].Item.ID)
	}
	if !strings.Contains(recs[0].Reason, "based on your recent activity") {
		t.Errorf("reason %q should mention recent activity", recs[0].Reason)
	}
}

func TestRecommendReasonFormat(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), "", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for _, r := range recs {
		if !strings.HasPrefix(r.Reason, "Recommended for ") {
			t.Errorf("reason %q missing prefix", r.Reason)
		}
		if strings.Count(r.Reason, " and ") > 1 {
			t.Errorf("reason %q joins more than two fragments", r.Reason)
		}
	}
}

func TestRecommendPopularCategoryReason(t *testing.T) {
	e := newTestEngine(t)

	// NFT holds 1 of 4 items, popularity 0.25, above the 0.2 threshold.
	recs, err := e.Recommend(context.Background(), "NFT", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("results = %d, want 1", len(recs))
	}
	if !strings.Contains(recs[0].Reason, "popular NFT category") {
		t.Errorf("reason = %q, want popular-category fragment", recs[0].Reason)
	}
}

func TestRecommendGenericReasonForBareItem(t *testing.T) {
	// Six items so the lone Misc entry's category popularity (1/6) stays
	// under the 0.2 threshold; the item itself has nothing else going on.
	items := []catalog.Item{
		{ID: "defi-lending-a", Name: "A", Category: "DeFi", Subcategory: "Lending"},
		{ID: "defi-lending-b", Name: "B", Category: "DeFi", Subcategory: "Lending"},
		{ID: "defi-lending-c", Name: "C", Category: "DeFi", Subcategory: "Lending"},
		{ID: "defi-lending-d", Name: "D", Category: "DeFi", Subcategory: "Lending"},
		{ID: "defi-lending-e", Name: "E", Category: "DeFi", Subcategory: "Lending"},
		{ID: "misc-other-bare", Name: "Bare", Category: "Misc", Subcategory: "Other"},
	}
	categories := []catalog.Category{
		{Name: "DeFi", Count: 5, Subcategories: []catalog.Subcategory{{Name: "Lending", Count: 5}}},
		{Name: "Misc", Count: 1, Subcategories: []catalog.Subcategory{{Name: "Other", Count: 1}}},
	}
	e := newTestEngineWith(t, items, categories)

	recs, err := e.Recommend(context.Background(), "Misc", -1)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("results = %d, want 1", len(recs))
	}
	if recs[0].Reason != "Recommended for matches your interests" {
		t.Errorf("reason = %q, want generic fallback", recs[0].Reason)
	}
}

func TestCompletenessScore(t *testing.T) {
	items := testItems()

	// Alpha: description>10 (0.3) + website (0.2) + github (0.15) = 0.65.
	if got := completenessScore(&items[0]); got < 0.64 || got > 0.66 {
		t.Errorf("alpha completeness = %f, want 0.65", got)
	}
	// Delta: description>10 only.
	if got := completenessScore(&items[3]); got < 0.29 || got > 0.31 {
		t.Errorf("delta completeness = %f, want 0.3", got)
	}
}
