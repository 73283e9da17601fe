// Package websocket pushes live inquiry events to connected admin
// dashboard sessions.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// EventType represents the type of event pushed to admin clients
type EventType string

const (
	EventTypeNewInquiry     EventType = "new_inquiry"
	EventTypeInquiryUpdated EventType = "inquiry_updated"
	EventTypeError          EventType = "error"
)

// Event is the envelope for messages pushed to admin clients
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// InquiryPayload is the payload for inquiry events
type InquiryPayload struct {
	ID            uint   `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PaintingID    *uint  `json:"painting_id,omitempty"`
	PaintingTitle string `json:"painting_title,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// Hub maintains the set of connected admin clients and broadcasts
// inquiry events to all of them. There is a single feed; every admin
// session sees every event.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex

	logger *slog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("admin client connected")
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("admin client disconnected")
			}

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected admin clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastNewInquiry pushes a new-inquiry event to every connected client
func (h *Hub) BroadcastNewInquiry(payload *InquiryPayload) {
	h.broadcastEvent(Event{Type: EventTypeNewInquiry, Payload: payload})
}

// BroadcastInquiryUpdated pushes an inquiry-updated event to every connected client
func (h *Hub) BroadcastInquiryUpdated(payload *InquiryPayload) {
	h.broadcastEvent(Event{Type: EventTypeInquiryUpdated, Payload: payload})
}

func (h *Hub) broadcastEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal broadcast event", slog.Any("error", err))
		}
		return
	}

	h.broadcast <- data
}
