// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package scoring

import (
	"context"
	"testing"

	"github.com/pmarkee/ecosphere/internal/catalog"
	"github.com/pmarkee/ecosphere/internal/interactions"
)

// testItems is the shared fixture: two DeFi/Lending items, one DeFi/DEX,
// one NFT/Marketplace.
func testItems() []catalog.Item {
	return []catalog.Item{
		{
			ID:          "defi-lending-alpha",
			Name:        "Alpha",
			Category:    "DeFi",
			Subcategory: "Lending",
			Description: "A money market protocol for lending and borrowing assets",
			Website:     "https://alpha.example",
			GitHub:      "https://github.com/alpha",
			Tags:        []string{"lending", "yield"},
		},
		{
			ID:          "defi-lending-beta",
			Name:        "Beta",
			Category:    "DeFi",
			Subcategory: "Lending",
			Description: "Overcollateralized lending",
			Tags:        []string{"lending"},
		},
		{
			ID:          "defi-dex-gamma-swap",
			Name:        "Gamma Swap",
			Category:    "DeFi",
			Subcategory: "DEX",
			Description: "Automated market maker",
			Tags:        []string{"amm"},
		},
		{
			ID:          "nft-marketplace-delta",
			Name:        "Delta",
			Category:    "NFT",
			Subcategory: "Marketplace",
			Description: "Trade digital collectibles",
		},
	}
}

func testCategories() []catalog.Category {
	return []catalog.Category{
		{Name: "DeFi", Count: 3, Subcategories: []catalog.Subcategory{
			{Name: "Lending", Count: 2},
			{Name: "DEX", Count: 1},
		}},
		{Name: "NFT", Count: 1, Subcategories: []catalog.Subcategory{
			{Name: "Marketplace", Count: 1},
		}},
	}
}

// newTestEngine builds an engine over the fixture catalog with delays
// disabled and a fixed seed.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngineWith(t, testItems(), testCategories())
}

func newTestEngineWith(t *testing.T, items []catalog.Item, categories []catalog.Category) *Engine {
	t.Helper()

	store := catalog.NewStore()
	store.Replace(catalog.NewSnapshot(items, categories))

	cfg := DefaultConfig()
	cfg.Delays.Enabled = false

	e, err := NewEngine(cfg, store, interactions.NewTracker())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.Search = 0

	if _, err := NewEngine(cfg, catalog.NewStore(), interactions.NewTracker()); err == nil {
		t.Error("expected error for zero search limit")
	}
}

func TestNewEngineRequiresCollaborators(t *testing.T) {
	cfg := DefaultConfig()

	if _, err := NewEngine(cfg, nil, interactions.NewTracker()); err == nil {
		t.Error("expected error for nil catalog provider")
	}
	if _, err := NewEngine(cfg, catalog.NewStore(), nil); err == nil {
		t.Error("expected error for nil tracker")
	}
}

func TestScoringIsReproducibleAcrossEngines(t *testing.T) {
	first := newTestEngine(t)
	second := newTestEngine(t)

	ctx := context.Background()

	a, err := first.Recommend(ctx, "", -1)
	if err != nil {
		t.Fatalf("first Recommend failed: %v", err)
	}
	b, err := second.Recommend(ctx, "", -1)
	if err != nil {
		t.Fatalf("second Recommend failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("result counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Item.ID != b[i].Item.ID || a[i].Score != b[i].Score {
			t.Errorf("result %d differs: %s/%f vs %s/%f",
				i, a[i].Item.ID, a[i].Score, b[i].Item.ID, b[i].Score)
		}
	}
}

func TestScoringCancelledContext(t *testing.T) {
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recommend(ctx, "", -1); err == nil {
		t.Error("Recommend should fail on cancelled context")
	}
	if _, err := e.Search(ctx, "lending", "", -1); err == nil {
		t.Error("Search should fail on cancelled context")
	}
	if _, err := e.Related(ctx, "defi-lending-alpha", -1); err == nil {
		t.Error("Related should fail on cancelled context")
	}
	if _, err := e.Trends(ctx, -1); err == nil {
		t.Error("Trends should fail on cancelled context")
	}
}
