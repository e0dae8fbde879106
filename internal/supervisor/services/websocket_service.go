// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package services

import "context"

// Hub matches the websocket hub's supervised run loop without importing
// the websocket package.
type Hub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService wraps the live-update hub as a supervised service.
// A crashed hub restarts with zero clients; dashboards reconnect.
type WebSocketHubService struct {
	hub  Hub
	name string
}

// NewWebSocketHubService wraps the hub for supervision.
func NewWebSocketHubService(hub Hub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service.
func (s *WebSocketHubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

// String identifies the service in suture's logs.
func (s *WebSocketHubService) String() string {
	return s.name
}
