// Ecosphere - Ecosystem Catalog and Discovery Engine
// Copyright 2026 Peter M. (pmarkee)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pmarkee/ecosphere

package websocket

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pmarkee/ecosphere/internal/logging"
	"github.com/pmarkee/ecosphere/internal/metrics"
)

// Message types pushed to connected dashboards.
const (
	MessageTypeCatalogReloaded     = "catalog_reloaded"
	MessageTypeInteractionRecorded = "interaction_recorded"
	MessageTypePing                = "ping"
	MessageTypePong                = "pong"
)

// Message is one WebSocket frame payload.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub maintains the set of active clients and fans broadcast messages out
// to them. Lifecycle events always win over broadcasts so client state is
// consistent before any message is delivered.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a hub with no clients.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext runs the hub until the context is cancelled, then closes
// every client and returns ctx.Err(). Designed for suture supervision: a
// restarted hub starts clean with no orphaned connections.
//
// Channel selection is prioritized (shutdown, then lifecycle, then
// broadcast) because Go's select picks randomly among ready cases.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.addClient(client)

		case client := <-h.Unregister:
			h.removeClient(client)

		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	count := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketClients.Set(float64(count))
	logging.Info().Int("total_clients", count).Msg("websocket client connected")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketClients.Set(float64(count))
	logging.Info().Int("total_clients", count).Msg("websocket client disconnected")
}

// shutdown closes every client and logs the reason. Context cancellation
// is expected during graceful shutdown, so it is not logged as an error.
func (h *Hub) shutdown(ctx context.Context) {
	count := h.ClientCount()
	h.closeAllClients()

	reason := "context_canceled"
	if ctx.Err() == context.DeadlineExceeded {
		reason = "context_deadline"
	}

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", reason).
		Int("clients_closed", count).
		Msg("websocket hub stopped")
}

// broadcastToClients delivers a message to every client in ID order.
// Sorting keeps delivery order reproducible; clients with a full send
// buffer are dropped rather than blocking the hub.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	var toRemove []*Client
	for _, client := range clients {
		select {
		case client.send <- message:
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
	}

	metrics.RecordBroadcast(message.Type)
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	for _, client := range clients {
		close(client.send)
		delete(h.clients, client)
	}
	metrics.WebSocketClients.Set(0)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastJSON queues a message for delivery to all clients. Messages
// are dropped when the broadcast buffer is full; live updates are
// best-effort.
func (h *Hub) BroadcastJSON(messageType string, data interface{}) {
	message := Message{Type: messageType, Data: data}

	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("message_type", messageType).Msg("broadcast channel full, dropping message")
	}
}

// CatalogReloadedData is the payload of a catalog_reloaded message.
type CatalogReloadedData struct {
	Timestamp  string `json:"timestamp"`
	Items      int    `json:"items"`
	Categories int    `json:"categories"`
	Skipped    int    `json:"skipped"`
}

// BroadcastCatalogReloaded notifies clients that a new catalog snapshot
// is live.
func (h *Hub) BroadcastCatalogReloaded(items, categories, skipped int) {
	h.BroadcastJSON(MessageTypeCatalogReloaded, CatalogReloadedData{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Items:      items,
		Categories: categories,
		Skipped:    skipped,
	})
}

// InteractionRecordedData is the payload of an interaction_recorded message.
type InteractionRecordedData struct {
	Timestamp string `json:"timestamp"`
	ItemID    string `json:"item_id"`
	Kind      string `json:"kind"`
}

// BroadcastInteraction notifies clients that an interaction was recorded.
func (h *Hub) BroadcastInteraction(itemID, kind string) {
	h.BroadcastJSON(MessageTypeInteractionRecorded, InteractionRecordedData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ItemID:    itemID,
		Kind:      kind,
	})
}
