// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package api exposes the catalog and scoring engine over HTTP using the
// chi router. Every endpoint responds with the models.APIResponse
// envelope; scoring endpoints additionally report their elapsed scoring
// time in the response metadata.
package api
