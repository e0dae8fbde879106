// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/models"
)

// Error codes used in API error responses.
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeCatalog           = "CATALOG_ERROR"
	ErrCodeScoring           = "SCORING_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// respondJSON writes a success envelope. scoringTime of zero omits the
// scoring_time_ms field, so non-scoring endpoints stay clean.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, scoringTime time.Duration) {
	resp := models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:     time.Now().UTC(),
			ScoringTimeMS: scoringTime.Milliseconds(),
			RequestID:     logging.RequestIDFromContext(r.Context()),
		},
	}

	writeJSON(w, status, resp)
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	resp := models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("failed to encode JSON response")
	}
}
