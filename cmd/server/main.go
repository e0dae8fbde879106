// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package main is the entry point for the Ecosphere server.
//
// Ecosphere is a self-hosted catalog and discovery engine for categorized
// project ecosystems. It serves a curated catalog over a REST API and
// computes recommendations, search relevance, related-item similarity, and
// category trend insights from the catalog and recorded user interactions.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from config file and environment (Koanf v2)
//  2. Catalog Store: Load the initial catalog document if CATALOG_PATH is set
//  3. Interaction Tracker: In-memory interaction weight accumulation
//  4. Scoring Engine: Seeded scorers for recommendations, search, related, trends
//  5. WebSocket Hub: Real-time catalog and interaction broadcasts
//  6. HTTP Server: REST API under /api/v1 plus Prometheus /metrics
//
// Components run under a suture supervision tree with a messaging layer
// (websocket hub) and an API layer (HTTP server), so a failure in one
// restarts independently of the other.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, CATALOG_PATH, SCORING_SEED, ...)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes websocket clients
//
// # Example Usage
//
// Development with a local catalog file:
//
//	export CATALOG_PATH=./catalog.json
//	export LOG_FORMAT=console
//	./ecosphere
//
// Production:
//
//	export ENVIRONMENT=production
//	export HTTP_PORT=8274
//	export CORS_ORIGINS=https://yourdomain.com
//	./ecosphere
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pmarkee/ecosphere/internal/api"
	"github.com/pmarkee/ecosphere/internal/catalog"
	"github.com/pmarkee/ecosphere/internal/config"
	"github.com/pmarkee/ecosphere/internal/interactions"
	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/scoring"
	"github.com/pmarkee/ecosphere/internal/supervisor"
	"github.com/pmarkee/ecosphere/internal/supervisor/services"
	ws "github.com/pmarkee/ecosphere/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Ecosphere")

	store := catalog.NewStore()
	if cfg.Catalog.Path != "" {
		if err := loadInitialCatalog(store, cfg.Catalog.Path); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load initial catalog")
		}
	} else {
		logging.Info().Msg("No catalog path configured, starting with an empty catalog")
	}

	tracker := interactions.NewTracker()

	engine, err := scoring.NewEngine(cfg.Scoring, store, tracker)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create scoring engine")
	}
	logging.Info().
		Int64("seed", cfg.Scoring.Seed).
		Bool("delays_enabled", cfg.Scoring.Delays.Enabled).
		Msg("Scoring engine initialized")

	hub := ws.NewHub()

	handler := api.NewHandler(cfg, store, engine, tracker, hub)
	router := api.NewRouter(cfg, handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bridge zerolog to slog for sutureslog
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("Services added to supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadInitialCatalog reads and validates a catalog document from disk and
// installs it in the store.
func loadInitialCatalog(store *catalog.Store, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return err
	}

	snapshot, stats, err := catalog.Load(data)
	if err != nil {
		return err
	}

	store.Replace(snapshot)
	logging.Info().
		Int("items", stats.Items).
		Int("categories", stats.Categories).
		Int("skipped_items", stats.SkippedItems).
		Str("path", path).
		Msg("Initial catalog loaded")
	return nil
}
