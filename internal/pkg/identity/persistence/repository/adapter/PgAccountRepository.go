package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

var _ repository.AccountRepository = (*PgAccountRepository)(nil)

type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func (r *PgAccountRepository) Create(ctx context.Context, a identity.Account) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgAccountRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO account (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`, a.Name, a.Email, a.PasswordHash, a.Role, a.CreatedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", identity.ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

func (r *PgAccountRepository) GetByID(ctx context.Context, id string) (*identity.Account, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgAccountRepository: nil pool")
	}
	if uuid.Validate(id) != nil {
		return nil, identity.ErrAccountNotFound
	}
	var a identity.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, email, password_hash, role, created_at
		FROM account WHERE id = $1::uuid
	`, id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgAccountRepository) GetByEmail(ctx context.Context, email string) (*identity.Account, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgAccountRepository: nil pool")
	}
	var a identity.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, email, password_hash, role, created_at
		FROM account WHERE email = $1
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgAccountRepository) Count(ctx context.Context) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgAccountRepository: nil pool")
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM account`).Scan(&n)
	return n, err
}
