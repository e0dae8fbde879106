// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package services adapts the server's long-running components to
// suture.Service via small interfaces, keeping the supervisor free of
// direct dependencies on the wrapped packages.
package services
