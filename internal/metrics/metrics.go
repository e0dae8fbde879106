// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Scoring engine calls per scorer
// - Catalog snapshot sizes and reloads
// - Interaction tracking
// - WebSocket connections

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Scoring engine metrics
	ScoringRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_requests_total",
			Help: "Total number of scoring engine calls",
		},
		[]string{"scorer", "outcome"}, // outcome: "ok", "empty", "error"
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_duration_seconds",
			Help:    "Scorer call duration in seconds, including the simulated processing delay",
			Buckets: []float64{0.1, 0.25, 0.5, 0.75, 1, 1.5, 2, 5},
		},
		[]string{"scorer"},
	)

	ScoringResultCount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_result_count",
			Help:    "Number of results returned per scorer call",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"scorer"},
	)

	// Catalog metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the current catalog snapshot",
		},
	)

	CatalogCategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_categories",
			Help: "Number of categories in the current catalog snapshot",
		},
	)

	CatalogReloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog snapshot replacements",
		},
	)

	CatalogSkippedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_skipped_entries_total",
			Help: "Malformed entries skipped during catalog loading",
		},
		[]string{"kind"}, // "category", "subcategory", "item"
	)

	// Interaction metrics
	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_total",
			Help: "Total number of recorded user interactions",
		},
		[]string{"kind"},
	)

	// WebSocket metrics
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_clients",
			Help: "Number of connected live-update clients",
		},
	)

	WebSocketBroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_broadcasts_total",
			Help: "Total number of broadcast messages by type",
		},
		[]string{"type"},
	)
)

// RecordAPIRequest records metrics for an API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordScoring records metrics for one scoring engine call.
func RecordScoring(scorer string, results int, duration time.Duration, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case results == 0:
		outcome = "empty"
	}

	ScoringRequestsTotal.WithLabelValues(scorer, outcome).Inc()
	ScoringDuration.WithLabelValues(scorer).Observe(duration.Seconds())
	ScoringResultCount.WithLabelValues(scorer).Observe(float64(results))
}

// RecordCatalogReload updates catalog gauges after a snapshot replacement.
func RecordCatalogReload(items, categories int) {
	CatalogReloadsTotal.Inc()
	CatalogItems.Set(float64(items))
	CatalogCategories.Set(float64(categories))
}

// RecordSkippedEntry counts a malformed entry dropped by the loader.
func RecordSkippedEntry(kind string) {
	CatalogSkippedEntries.WithLabelValues(kind).Inc()
}

// RecordInteraction counts a recorded user interaction.
func RecordInteraction(kind string) {
	InteractionsTotal.WithLabelValues(kind).Inc()
}

// RecordBroadcast counts a websocket broadcast by message type.
func RecordBroadcast(messageType string) {
	WebSocketBroadcastsTotal.WithLabelValues(messageType).Inc()
}
