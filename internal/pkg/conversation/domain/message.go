package conversation

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrPartnerNotFound means the partner reference matched neither a worker
	// profile nor an account.
	ErrPartnerNotFound = errors.New("conversation partner not found")

	// ErrEmptyMessage rejects sends with no text after trimming.
	ErrEmptyMessage = errors.New("message text is required")

	// ErrSelfConversation rejects sends addressed to the sender itself.
	ErrSelfConversation = errors.New("cannot message yourself")
)

// Message is an immutable, directed log entry between two accounts. Both ids
// are canonical account ids; partner references are resolved before a Message
// is ever constructed.
type Message struct {
	ID         string    `db:"id"`
	SenderID   string    `db:"sender_id"`
	ReceiverID string    `db:"receiver_id"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewMessage validates and stamps a message for persistence.
func NewMessage(m Message) (*Message, error) {
	m.Body = strings.TrimSpace(m.Body)
	if m.Body == "" {
		return nil, ErrEmptyMessage
	}
	if m.SenderID == "" || m.ReceiverID == "" {
		return nil, errors.New("sender and receiver are required")
	}
	if m.SenderID == m.ReceiverID {
		return nil, ErrSelfConversation
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return &m, nil
}
