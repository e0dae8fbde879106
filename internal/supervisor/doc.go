// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package supervisor builds the suture supervision tree for the server:
// a messaging layer for the websocket hub and an API layer for the HTTP
// server, so a failure in one restarts independently of the other.
package supervisor
