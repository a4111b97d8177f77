// Package ws pushes inventory change events to connected household
// clients over websockets.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/pantrybase/pantrygo/internal/inventory"
)

// Hub maintains the set of active clients and broadcasts events
type Hub struct {
	// Registered clients map: ClientID -> Client
	clients map[string]*Client

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Outbound event fan-out
	broadcast chan []byte

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// A reconnecting client replaces its old connection
			if old, ok := h.clients[client.ClientID]; ok {
				close(old.send)
			}
			h.clients[client.ClientID] = client
			log.Printf("📱 Client connected: %s", client.ClientID)
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ClientID]; ok {
				delete(h.clients, client.ClientID)
				close(client.send)
				log.Printf("📴 Client disconnected: %s", client.ClientID)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full or client dead, drop the event
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(message interface{}) {
	jsonMsg, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}
	h.broadcast <- jsonMsg
}

// SyncStateChanged implements the sync engine's notifier hook.
func (h *Hub) SyncStateChanged(state inventory.SyncState) {
	h.Broadcast(map[string]string{
		"type":  "SYNC_STATE",
		"state": state.String(),
	})
}

// ItemsChanged implements the sync engine's notifier hook.
func (h *Hub) ItemsChanged() {
	h.Broadcast(map[string]string{
		"type": "ITEMS_CHANGED",
	})
}
