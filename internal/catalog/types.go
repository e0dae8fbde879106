// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package catalog

// Item represents one catalog entry (a "project" in the upstream document).
// Items are immutable for the lifetime of a snapshot; the whole snapshot is
// replaced on reload.
type Item struct {
	// ID is synthesized by the loader from category, subcategory and name.
	// Unique within one snapshot.
	ID string `json:"id"`

	// Name is the project name. Never empty; the loader drops nameless entries.
	Name string `json:"name"`

	// Category and Subcategory are the two-level classification, copied from
	// the enclosing document nodes.
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// Description is free-form project text.
	Description string `json:"description,omitempty"`

	// Optional presence/link fields, used by the completeness score.
	Logo     string `json:"logo,omitempty"`
	Website  string `json:"website,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`

	// Tags is an unordered set of labels.
	Tags []string `json:"tags,omitempty"`

	// Metrics holds optional upstream activity numbers.
	Metrics *ItemMetrics `json:"metrics,omitempty"`
}

// ItemMetrics holds optional numeric metrics supplied by the upstream document.
type ItemMetrics struct {
	TVL          float64 `json:"tvl,omitempty"`
	Users        float64 `json:"users,omitempty"`
	Transactions float64 `json:"transactions,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Subcategory is the aggregate view of one subcategory within a category.
type Subcategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Category is the aggregate view over items sharing a category name.
// Count equals the sum of its subcategory counts, which equals the number
// of items carrying that category.
type Category struct {
	Name          string        `json:"name"`
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Snapshot is one immutable catalog load: the flattened item list plus the
// derived category aggregates. Built by Load and replaced wholesale.
type Snapshot struct {
	items      []Item
	categories []Category
	byID       map[string]int
	byCategory map[string]int
}

// NewSnapshot builds a snapshot from already-flattened items and aggregates.
// Used by tests and by callers that assemble catalogs programmatically;
// Load is the path for upstream JSON documents.
func NewSnapshot(items []Item, categories []Category) *Snapshot {
	s := &Snapshot{
		items:      items,
		categories: categories,
		byID:       make(map[string]int, len(items)),
		byCategory: make(map[string]int, len(categories)),
	}
	for i := range items {
		s.byID[items[i].ID] = i
	}
	for i := range categories {
		s.byCategory[categories[i].Name] = i
	}
	return s
}

// EmptySnapshot returns a snapshot with no items and no categories.
func EmptySnapshot() *Snapshot {
	return NewSnapshot(nil, nil)
}

// Items returns the flattened item list in document order.
// Callers must not mutate the returned slice.
func (s *Snapshot) Items() []Item {
	return s.items
}

// Categories returns the category aggregates in document order.
// Callers must not mutate the returned slice.
func (s *Snapshot) Categories() []Category {
	return s.categories
}

// Len returns the number of items in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.items)
}

// Item returns the item with the given ID.
func (s *Snapshot) Item(id string) (Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Category returns the aggregate for the given category name (exact match).
func (s *Snapshot) Category(name string) (Category, bool) {
	i, ok := s.byCategory[name]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

// CategoryCount returns the item count for a category, or 0 if unknown.
func (s *Snapshot) CategoryCount(name string) int {
	if c, ok := s.Category(name); ok {
		return c.Count
	}
	return 0
}
