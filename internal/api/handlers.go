// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/pmarkee/ecosphere/internal/catalog"
	"github.com/pmarkee/ecosphere/internal/config"
	"github.com/pmarkee/ecosphere/internal/interactions"
	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/scoring"
	"github.com/pmarkee/ecosphere/internal/validation"
	ws "github.com/pmarkee/ecosphere/internal/websocket"

	gorillaws "github.com/gorilla/websocket"
)

// Handler holds the dependencies of all HTTP endpoints.
type Handler struct {
	cfg     *config.Config
	store   *catalog.Store
	engine  *scoring.Engine
	tracker *interactions.Tracker
	hub     *ws.Hub

	// reloadLimiter throttles catalog replacements, which rebuild the
	// whole snapshot.
	reloadLimiter *rate.Limiter

	upgrader gorillaws.Upgrader
}

// NewHandler wires the endpoint dependencies together.
func NewHandler(cfg *config.Config, store *catalog.Store, engine *scoring.Engine, tracker *interactions.Tracker, hub *ws.Hub) *Handler {
	return &Handler{
		cfg:     cfg,
		store:   store,
		engine:  engine,
		tracker: tracker,
		hub:     hub,
		reloadLimiter: rate.NewLimiter(
			rate.Limit(float64(cfg.Catalog.ReloadsPerMinute)/60.0),
			cfg.Catalog.ReloadsPerMinute,
		),
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// parseLimit reads the limit query parameter. Absent means -1, which the
// engine resolves to its configured default. Explicit zero is honored.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return -1, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}
	return limit, nil
}

// CatalogReplace ingests a new catalog document and swaps it in.
// PUT /api/v1/catalog
func (h *Handler) CatalogReplace(w http.ResponseWriter, r *http.Request) {
	if !h.reloadLimiter.Allow() {
		respondError(w, r, http.StatusTooManyRequests, ErrCodeRateLimitExceeded,
			"catalog reload budget exhausted, retry later", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.cfg.Catalog.MaxUploadBytes+1))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeCatalog, "failed to read request body", nil)
		return
	}
	if int64(len(body)) > h.cfg.Catalog.MaxUploadBytes {
		respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeCatalog,
			"catalog document exceeds the upload size limit", nil)
		return
	}

	snapshot, stats, err := catalog.Load(body)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeCatalog, err.Error(), nil)
		return
	}

	h.store.Replace(snapshot)
	skipped := stats.SkippedCategories + stats.SkippedSubcategories + stats.SkippedItems
	h.hub.BroadcastCatalogReloaded(stats.Items, stats.Categories, skipped)

	logging.Ctx(r.Context()).Info().
		Int("items", stats.Items).
		Int("categories", stats.Categories).
		Int("skipped", skipped).
		Msg("catalog replaced")

	respondJSON(w, r, http.StatusOK, stats, 0)
}

// CatalogStatsResponse is the payload of the catalog stats endpoint.
type CatalogStatsResponse struct {
	Items               int                `json:"items"`
	Categories          []catalog.Category `json:"categories"`
	TrackedInteractions int                `json:"tracked_interactions"`
}

// CatalogStats reports the current snapshot's aggregates.
// GET /api/v1/catalog/stats
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	categories := snap.Categories()
	if categories == nil {
		categories = []catalog.Category{}
	}

	respondJSON(w, r, http.StatusOK, CatalogStatsResponse{
		Items:               snap.Len(),
		Categories:          categories,
		TrackedInteractions: h.tracker.Len(),
	}, 0)
}

// InteractionRequest is the body of the interaction recording endpoint.
type InteractionRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Kind   string `json:"kind" validate:"required,interaction_kind"`
}

// RecordInteraction stores an engagement signal for future scoring.
// POST /api/v1/interactions
func (h *Handler) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "invalid JSON body", nil)
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	kind, _ := interactions.ParseKind(req.Kind)
	h.tracker.Record(req.ItemID, kind)
	h.hub.BroadcastInteraction(req.ItemID, req.Kind)

	// Accepted rather than OK: the weight feeds future scoring runs, the
	// caller gets nothing back now.
	respondJSON(w, r, http.StatusAccepted, map[string]string{
		"item_id": req.ItemID,
		"kind":    req.Kind,
	}, 0)
}

// Recommendations returns scored discovery suggestions.
// GET /api/v1/recommendations?category=DeFi&limit=5
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	start := time.Now()
	recs, err := h.engine.Recommend(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		respondScoringError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, recs, time.Since(start))
}

// Search returns relevance-scored items for a text query.
// GET /api/v1/search?q=lending&category=DeFi&limit=10
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	query := r.URL.Query().Get("q")

	start := time.Now()
	results, err := h.engine.Search(r.Context(), query, r.URL.Query().Get("category"), limit)
	if err != nil {
		respondScoringError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, results, time.Since(start))
}

// Related returns items similar to the given one.
// GET /api/v1/related/{itemID}?limit=4
func (h *Handler) Related(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	itemID := chi.URLParam(r, "itemID")

	start := time.Now()
	related, err := h.engine.Related(r.Context(), itemID, limit)
	if err != nil {
		respondScoringError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, related, time.Since(start))
}

// Trends returns per-category trend insights.
// GET /api/v1/trends?limit=3
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	start := time.Now()
	insights, err := h.engine.Trends(r.Context(), limit)
	if err != nil {
		respondScoringError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, insights, time.Since(start))
}

// respondScoringError maps scorer failures to HTTP errors. The only
// expected failure is context cancellation, reported as 503 so clients
// and load balancers retry.
func respondScoringError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Warn().Err(err).Msg("scoring request failed")
	respondError(w, r, http.StatusServiceUnavailable, ErrCodeScoring,
		"scoring was interrupted, retry later", nil)
}

// WebSocket upgrades the connection and attaches it to the live-update
// hub.
// GET /api/v1/ws
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn)
	h.hub.Register <- client
	client.Start()
}

// HealthLive reports process liveness.
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "alive"}, 0)
}

// HealthReady reports whether the service can answer scoring requests.
// The service is ready even with an empty catalog; scorers return empty
// results rather than failing.
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":     "ready",
		"items":      snap.Len(),
		"categories": len(snap.Categories()),
	}, 0)
}
