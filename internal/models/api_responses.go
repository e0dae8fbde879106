// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package models holds the shared API wire types used by all HTTP endpoints.
package models

import "time"

// APIResponse is the standardized response wrapper for every endpoint.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Empty-result conditions (empty catalog, unknown source item, unmatched
// category filter) are successes with empty Data, never errors.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// ScoringTimeMS covers the full scorer call including the simulated
// processing delay, so dashboards can show realistic loading behavior.
type Metadata struct {
	Timestamp     time.Time `json:"timestamp"`
	ScoringTimeMS int64     `json:"scoring_time_ms,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
}

// APIError carries structured error details.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - SCORING_ERROR: scorer failed unexpectedly
//   - CATALOG_ERROR: catalog document could not be parsed
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
