package models

import "time"

// SyncEvent is pushed over the websocket while a remote mirror attempt
// runs, so clients can show a sync indicator. It has no correctness
// role.
type SyncEvent struct {
	UserID    uint      `json:"-"`
	Kind      string    `json:"kind"` // sync.started | sync.completed | sync.failed
	Key       string    `json:"key"`  // which record was mirrored
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
