package realtime

import (
	"encoding/json"
	"time"
)

// Envelope is the payload pushed to a receiver's room as a message:receive
// event. Its ID is the store-generated id of the persisted message.
type Envelope struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// Router fans message events out to the receiver's room. Routing is
// fire-and-forget: it never waits on the receiver and an empty room simply
// means the recipient is offline.
type Router struct {
	registry *Registry
}

// NewRouter constructs a Router over the given registry.
func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

type receiveFrame struct {
	Type string `json:"type"`
	Envelope
}

// Deliver pushes the envelope to every connection in the receiver's room as a
// message:receive frame and returns the number of connections that accepted
// it. Zero is not an error.
func (r *Router) Deliver(env Envelope) int {
	payload, err := json.Marshal(receiveFrame{Type: "message:receive", Envelope: env})
	if err != nil {
		return 0
	}

	delivered := 0
	for _, conn := range r.registry.Room(env.ReceiverID) {
		if conn.Send(payload) == nil {
			delivered++
		}
	}
	return delivered
}
