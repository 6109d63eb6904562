package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Message is a live-preview notification pushed to editor clients watching
// an event.
type Message struct {
	Type    string         `json:"type"`
	EventID string         `json:"eventId"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// PreviewRefresh tells preview clients to re-render the invitation.
func PreviewRefresh(eventID string, extra map[string]any) Message {
	return Message{Type: "preview_refresh", EventID: eventID, Extra: extra}
}

// CountdownTick carries the current remaining-time values once a second.
func CountdownTick(eventID string, days, hours, minutes, seconds int) Message {
	return Message{
		Type:    "countdown_tick",
		EventID: eventID,
		Extra: map[string]any{
			"days":    days,
			"hours":   hours,
			"minutes": minutes,
			"seconds": seconds,
		},
	}
}

// Hub tracks preview clients grouped into per-event rooms and broadcasts
// messages to a room.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *slog.Logger

	onFirst func(room string)
	onEmpty func(room string)
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

// SetRoomHooks registers callbacks for a room gaining its first client and
// losing its last one. Call before serving traffic; hooks run with the hub
// lock released.
func (h *Hub) SetRoomHooks(onFirst, onEmpty func(room string)) {
	h.onFirst = onFirst
	h.onEmpty = onEmpty
}

// Register adds a client to its room.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[c.room]
	if !ok {
		clients = make(map[*Client]struct{})
		h.rooms[c.room] = clients
	}
	clients[c] = struct{}{}
	first := len(clients) == 1
	h.mu.Unlock()

	if first && h.onFirst != nil {
		h.onFirst(c.room)
	}
}

// Unregister removes a client from its room and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	empty := false
	if clients, ok := h.rooms[c.room]; ok {
		if _, ok := clients[c]; ok {
			delete(clients, c)
			close(c.send)
		}
		if len(clients) == 0 {
			delete(h.rooms, c.room)
			empty = true
		}
	}
	h.mu.Unlock()

	if empty && h.onEmpty != nil {
		h.onEmpty(c.room)
	}
}

// Broadcast sends a message to every client in the message's room.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal broadcast", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[msg.EventID] {
		select {
		case c.send <- data:
		default:
			// Client buffer full — drop message to avoid blocking
		}
	}
}

// RoomCount returns the number of clients watching an event.
func (h *Hub) RoomCount(eventID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[eventID])
}
