package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// ChangeEvent tells a client that an entity collection changed and its
// cached views should be re-fetched. A write to either collection
// invalidates progress, which joins both, so clients refresh on any event.
type ChangeEvent struct {
	Entity string `json:"entity"` // "medications" | "medication_logs"
	Action string `json:"action"` // "created" | "updated" | "deleted"
	ID     string `json:"id"`
}

// WSConn is the slice of *websocket.Conn the hub needs.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type WSClient struct {
	UserID string
	Conn   WSConn
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

// Hub is the process-wide hub the controllers publish to.
var Hub = NewRealtimeHub()

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastChange fans an event out to every connection the user holds.
// Other users never see it.
func (h *RealtimeHub) BroadcastChange(userID string, event ChangeEvent) {
	msg, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
