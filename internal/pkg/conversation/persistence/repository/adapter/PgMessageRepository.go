package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	conversation "ruralconnect/internal/pkg/conversation/domain"
	repository "ruralconnect/internal/pkg/conversation/persistence/repository/port"
)

var _ repository.MessageRepository = (*PgMessageRepository)(nil)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Save(ctx context.Context, m conversation.Message) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgMessageRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO message (sender_id, receiver_id, body, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, m.SenderID, m.ReceiverID, m.Body, m.CreatedAt).Scan(&id)
	return id, err
}

// History orders by created_at with the serial id as tie-break, so ties from
// near-simultaneous sends read back in insertion order on every request.
func (r *PgMessageRepository) History(ctx context.Context, a, b string) ([]conversation.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	if uuid.Validate(a) != nil || uuid.Validate(b) != nil {
		return []conversation.Message{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, receiver_id::text, body, created_at
		FROM message
		WHERE (sender_id = $1::uuid AND receiver_id = $2::uuid)
		   OR (sender_id = $2::uuid AND receiver_id = $1::uuid)
		ORDER BY created_at, id
	`, a, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *PgMessageRepository) ListByParticipant(ctx context.Context, accountID string) ([]conversation.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	if uuid.Validate(accountID) != nil {
		return []conversation.Message{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, receiver_id::text, body, created_at
		FROM message
		WHERE sender_id = $1::uuid OR receiver_id = $1::uuid
		ORDER BY created_at, id
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

func (r *PgMessageRepository) Count(ctx context.Context) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgMessageRepository: nil pool")
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM message`).Scan(&n)
	return n, err
}

func scanMessages(rows pgx.Rows) ([]conversation.Message, error) {
	msgs := []conversation.Message{}
	for rows.Next() {
		var m conversation.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
