// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/metrics"
)

// The upstream catalog is a nested document: categories contain
// subcategories, subcategories contain projects. Each level is decoded
// individually so one malformed entry drops only itself, never the
// document.

// document is the top-level upstream shape.
type document struct {
	Categories []json.RawMessage `json:"categories"`
}

// rawCategory decodes one category node; Subcategories stays raw so a bad
// subcategory cannot fail the whole category.
type rawCategory struct {
	Name          string            `json:"name"`
	Subcategories []json.RawMessage `json:"subcategories"`
}

// rawSubcategory decodes one subcategory node.
type rawSubcategory struct {
	Name     string            `json:"name"`
	Projects []json.RawMessage `json:"projects"`
}

// LoadStats summarizes one load: what survived and what was skipped.
type LoadStats struct {
	Items                int `json:"items"`
	Categories           int `json:"categories"`
	SkippedCategories    int `json:"skipped_categories"`
	SkippedSubcategories int `json:"skipped_subcategories"`
	SkippedItems         int `json:"skipped_items"`
}

// whitespaceRun matches runs of whitespace for ID synthesis.
var whitespaceRun = regexp.MustCompile(`\s+`)

// SynthesizeID builds the stable item identifier
// lowercase(category-subcategory-name) with whitespace collapsed to hyphens.
func SynthesizeID(category, subcategory, name string) string {
	joined := category + "-" + subcategory + "-" + name
	return strings.ToLower(whitespaceRun.ReplaceAllString(joined, "-"))
}

// Load parses an upstream catalog document into a snapshot.
//
// Malformed categories (missing name or non-array subcategories), malformed
// subcategories (missing name or non-array projects) and nameless projects
// are skipped and counted in LoadStats; they never fail the load. An error
// is returned only when the document itself is unparseable or missing the
// categories key.
func Load(data []byte) (*Snapshot, LoadStats, error) {
	var stats LoadStats

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, stats, fmt.Errorf("parse catalog document: %w", err)
	}
	if doc.Categories == nil {
		return nil, stats, fmt.Errorf("invalid catalog document: missing categories")
	}

	var items []Item
	var categories []Category

	for _, rawCat := range doc.Categories {
		var cat rawCategory
		if err := json.Unmarshal(rawCat, &cat); err != nil || cat.Name == "" || cat.Subcategories == nil {
			stats.SkippedCategories++
			metrics.RecordSkippedEntry("category")
			continue
		}

		aggregate := Category{Name: cat.Name, Subcategories: []Subcategory{}}

		for _, rawSub := range cat.Subcategories {
			var sub rawSubcategory
			if err := json.Unmarshal(rawSub, &sub); err != nil || sub.Name == "" || sub.Projects == nil {
				stats.SkippedSubcategories++
				metrics.RecordSkippedEntry("subcategory")
				continue
			}

			valid := 0
			for _, rawItem := range sub.Projects {
				var item Item
				if err := json.Unmarshal(rawItem, &item); err != nil || item.Name == "" {
					stats.SkippedItems++
					metrics.RecordSkippedEntry("item")
					continue
				}

				// The enclosing nodes are authoritative for classification.
				item.Category = cat.Name
				item.Subcategory = sub.Name
				item.ID = SynthesizeID(cat.Name, sub.Name, item.Name)

				items = append(items, item)
				valid++
			}

			aggregate.Subcategories = append(aggregate.Subcategories, Subcategory{
				Name:  sub.Name,
				Count: valid,
			})
			aggregate.Count += valid
		}

		categories = append(categories, aggregate)
	}

	stats.Items = len(items)
	stats.Categories = len(categories)

	logging.Debug().
		Int("items", stats.Items).
		Int("categories", stats.Categories).
		Int("skipped_categories", stats.SkippedCategories).
		Int("skipped_subcategories", stats.SkippedSubcategories).
		Int("skipped_items", stats.SkippedItems).
		Msg("catalog document loaded")

	return NewSnapshot(items, categories), stats, nil
}
