// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package catalog

import (
	"sync"

	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/metrics"
)

// Store holds the current catalog snapshot. Replacement is atomic under a
// read-write mutex; readers always observe a complete snapshot, never a
// partially loaded one. The store starts empty, which every consumer treats
// as "no results" rather than an error.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	return &Store{snapshot: EmptySnapshot()}
}

// Replace swaps in a new snapshot. Idempotent: replacing with an equivalent
// snapshot yields identical aggregates.
func (s *Store) Replace(snapshot *Snapshot) {
	if snapshot == nil {
		snapshot = EmptySnapshot()
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	metrics.RecordCatalogReload(snapshot.Len(), len(snapshot.Categories()))
	logging.Info().
		Int("items", snapshot.Len()).
		Int("categories", len(snapshot.Categories())).
		Msg("catalog snapshot replaced")
}

// Snapshot returns the current snapshot. The returned value is immutable.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
