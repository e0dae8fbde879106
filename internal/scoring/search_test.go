// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"strings"
	"testing"
)

func TestSearchMatchesAcrossFields(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "lending", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	ids := make(map[string]bool, len(results))
	for _, r := range results {
		ids[r.Item.ID] = true
	}
	// Both lending items match on subcategory, description and tag.
	if !ids["defi-lending-alpha"] || !ids["defi-lending-beta"] {
		t.Errorf("lending search missed expected items, got %v", ids)
	}
	if ids["nft-marketplace-delta"] {
		t.Error("delta should not match lending")
	}
}

func TestSearchExactNameRanksFirst(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "gamma swap", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Item.ID != "defi-dex-gamma-swap" {
		t.Errorf("top result = %s, want exact name match", results[0].Item.ID)
	}
}

func TestSearchTooShortQuery(t *testing.T) {
	e := newTestEngine(t)

	for _, q := range []string{"", "a", "  a  "} {
		results, err := e.Search(context.Background(), q, "", -1)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", q, err)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(results))
		}
	}
}

func TestSearchNoMatchYieldsEmpty(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "quantum blockchain zebra", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestSearchRelevanceClamped(t *testing.T) {
	e := newTestEngine(t)

	// "lending" hits subcategory, description, tag, and the per-term
	// weights on top; the sum would exceed 1 without the clamp.
	results, err := e.Search(context.Background(), "lending", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, r := range results {
		if r.Relevance > 1.0 {
			t.Errorf("item %s relevance %f exceeds 1.0", r.Item.ID, r.Relevance)
		}
		if r.Relevance <= searchRelevanceFloor {
			t.Errorf("item %s relevance %f at or below floor, should be filtered", r.Item.ID, r.Relevance)
		}
	}
}

func TestSearchSortedDescending(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "defi lending", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Relevance > results[i-1].Relevance {
			t.Errorf("results not sorted: %f before %f", results[i-1].Relevance, results[i].Relevance)
		}
	}
}

func TestSearchMatchedTermLabels(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "amm", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}

	found := false
	for _, term := range results[0].MatchedTerms {
		if term == "tag: amm" {
			found = true
		}
		if !strings.Contains(term, ": ") {
			t.Errorf("matched term %q missing field label", term)
		}
	}
	if !found {
		t.Errorf("matched terms %v missing tag match", results[0].MatchedTerms)
	}
}

func TestSearchShortTermsDiluteScore(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	plain, err := e.Search(ctx, "lending", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// "to" is under three characters: skipped for matching but still part
	// of the term-score denominator.
	diluted, err := e.Search(ctx, "lending to", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(plain) == 0 || len(diluted) == 0 {
		t.Fatal("expected results for both queries")
	}
	if diluted[0].Relevance > plain[0].Relevance {
		t.Errorf("short filler term raised relevance: %f > %f", diluted[0].Relevance, plain[0].Relevance)
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	e := newTestEngine(t)

	// "market" appears in Alpha's description ("money market") and in
	// Gamma's ("market maker") and Delta is in Marketplace; restricting to
	// NFT keeps only Delta's subcategory match.
	results, err := e.Search(context.Background(), "market", "NFT", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, r := range results {
		if r.Item.Category != "NFT" {
			t.Errorf("item %s leaked through NFT filter", r.Item.ID)
		}
	}
	if len(results) != 1 {
		t.Errorf("results = %d, want 1", len(results))
	}
}

func TestSearchLimitTruncates(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.Search(context.Background(), "defi", "", 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("results = %d, want 1", len(results))
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	e := newTestEngineWith(t, nil, nil)

	results, err := e.Search(context.Background(), "lending", "", -1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}
