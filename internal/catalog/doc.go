// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package catalog holds the catalog snapshot: the flattened item list and
// the category aggregates derived from the upstream nested JSON document.
//
// Snapshots are immutable. A reload builds a complete new snapshot and the
// Store swaps it in atomically; the scoring engine reads whichever snapshot
// was current when its call started.
//
// Aggregate invariants maintained by the loader:
//
//	category.Count == sum(subcategory.Count)
//	sum(category.Count) == len(items)
package catalog
