package services

import (
	"encoding/json"
	"sync"

	"github.com/Shxreef603/Fitly/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// SyncHub fans sync events out to every websocket a user has open, so
// the UI can show its "syncing" indicator without polling.
type SyncHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewSyncHub() *SyncHub {
	return &SyncHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *SyncHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *SyncHub) Unregister(c *WSClient) {
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

func (h *SyncHub) BroadcastSync(ev models.SyncEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[ev.UserID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
