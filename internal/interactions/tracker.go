// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package interactions tracks per-item engagement weights from user actions.
//
// Weights only accumulate: there is no decay, no cap, and no teardown API.
// The tracker is owned by an engine instance rather than being process
// global, so independent catalog sessions keep independent histories.
package interactions

import (
	"sync"

	"github.com/pmarkee/ecosphere/internal/metrics"
)

// Kind classifies a user interaction with a catalog item.
type Kind string

const (
	// KindView is a passive impression of an item.
	KindView Kind = "view"
	// KindClick is a direct selection of an item.
	KindClick Kind = "click"
	// KindSearch is an item surfaced through a search the user ran.
	KindSearch Kind = "search"
)

// kindWeights is the fixed engagement weight table.
var kindWeights = map[Kind]int{
	KindView:   1,
	KindClick:  3,
	KindSearch: 2,
}

// Weight returns the engagement weight this kind contributes, or 0 for an
// unknown kind.
func (k Kind) Weight() int {
	return kindWeights[k]
}

// Valid reports whether the kind is one of view, click or search.
func (k Kind) Valid() bool {
	_, ok := kindWeights[k]
	return ok
}

// ParseKind converts a wire string into a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, k.Valid()
}

// Tracker accumulates engagement weights per item ID.
// It is safe for concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	weights map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{weights: make(map[string]int)}
}

// Record adds the kind's weight to the item's accumulated score.
// A no-op for empty item IDs and unknown kinds; Record never fails.
func (t *Tracker) Record(itemID string, kind Kind) {
	if itemID == "" || !kind.Valid() {
		return
	}

	t.mu.Lock()
	t.weights[itemID] += kind.Weight()
	t.mu.Unlock()

	metrics.RecordInteraction(string(kind))
}

// WeightOf returns the accumulated weight for an item, 0 if unseen.
func (t *Tracker) WeightOf(itemID string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.weights[itemID]
}

// Len returns the number of items with recorded interactions.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.weights)
}
