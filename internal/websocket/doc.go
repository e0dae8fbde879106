// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package websocket pushes live catalog events to connected dashboards:
// catalog reloads and recorded interactions. Delivery is best-effort;
// slow clients are disconnected rather than allowed to stall the hub.
package websocket
