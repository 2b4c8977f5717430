package repository

import (
	"context"

	conversation "ruralconnect/internal/pkg/conversation/domain"
)

// MessageRepository defines append-only persistence for directed messages.
type MessageRepository interface {
	// Save appends a message and returns its store-generated id.
	Save(ctx context.Context, m conversation.Message) (string, error)

	// History returns all messages between the two accounts in either
	// direction, ascending by timestamp with a stable tie-break. An empty
	// slice means no conversation yet; it is not an error.
	History(ctx context.Context, a, b string) ([]conversation.Message, error)

	// ListByParticipant returns every message the account sent or received,
	// in the same order History uses.
	ListByParticipant(ctx context.Context, accountID string) ([]conversation.Message, error)

	// Count returns the total number of stored messages.
	Count(ctx context.Context) (int64, error)
}
