package conversation

import "time"

// Summary is one conversation-list row: the counterpart account annotated
// with the single most recent message exchanged with it, in either direction.
// Derived on demand, never persisted.
type Summary struct {
	AccountID     string    `json:"accountId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LastMessage   string    `json:"lastMessage"`
	LastTimestamp time.Time `json:"lastTimestamp"`
}
