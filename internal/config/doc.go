// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

// Package config loads and validates the Ecosphere configuration from
// layered sources: built-in defaults, an optional YAML file and
// environment variables, in increasing precedence.
package config
