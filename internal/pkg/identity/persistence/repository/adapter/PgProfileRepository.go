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

var _ repository.ProfileRepository = (*PgProfileRepository)(nil)

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Create(ctx context.Context, p identity.WorkerProfile) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgProfileRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO worker_profile (account_id, skill, rating, experience, area, street, city, state, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text
	`, p.AccountID, p.Skill, p.Rating, p.Experience,
		p.Address.Area, p.Address.Street, p.Address.City, p.Address.State, p.CreatedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", identity.ErrProfileExists
		}
		return "", err
	}
	return id, nil
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (*identity.WorkerListing, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	if uuid.Validate(id) != nil {
		return nil, identity.ErrProfileNotFound
	}
	var w identity.WorkerListing
	err := r.pool.QueryRow(ctx, `
		SELECT p.id::text, p.account_id::text, p.skill, p.rating, p.experience,
		       p.area, p.street, p.city, p.state, p.created_at,
		       a.name, a.email
		FROM worker_profile p
		JOIN account a ON a.id = p.account_id
		WHERE p.id = $1::uuid
	`, id).Scan(&w.ID, &w.AccountID, &w.Skill, &w.Rating, &w.Experience,
		&w.Address.Area, &w.Address.Street, &w.Address.City, &w.Address.State, &w.CreatedAt,
		&w.Name, &w.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PgProfileRepository) GetByAccount(ctx context.Context, accountID string) (*identity.WorkerProfile, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	if uuid.Validate(accountID) != nil {
		return nil, identity.ErrProfileNotFound
	}
	var p identity.WorkerProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, account_id::text, skill, rating, experience, area, street, city, state, created_at
		FROM worker_profile WHERE account_id = $1::uuid
	`, accountID).Scan(&p.ID, &p.AccountID, &p.Skill, &p.Rating, &p.Experience,
		&p.Address.Area, &p.Address.Street, &p.Address.City, &p.Address.State, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Search filters the directory by exact skill (case-insensitive) and by a
// substring match over any address field.
func (r *PgProfileRepository) Search(ctx context.Context, skill, location string) ([]identity.WorkerListing, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text, p.account_id::text, p.skill, p.rating, p.experience,
		       p.area, p.street, p.city, p.state, p.created_at,
		       a.name, a.email
		FROM worker_profile p
		JOIN account a ON a.id = p.account_id
		WHERE ($1 = '' OR lower(p.skill) = lower($1))
		  AND ($2 = '' OR p.area ILIKE '%' || $2 || '%' OR p.street ILIKE '%' || $2 || '%'
		       OR p.city ILIKE '%' || $2 || '%' OR p.state ILIKE '%' || $2 || '%')
		ORDER BY p.created_at DESC
	`, skill, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []identity.WorkerListing
	for rows.Next() {
		var w identity.WorkerListing
		if err := rows.Scan(&w.ID, &w.AccountID, &w.Skill, &w.Rating, &w.Experience,
			&w.Address.Area, &w.Address.Street, &w.Address.City, &w.Address.State, &w.CreatedAt,
			&w.Name, &w.Email); err != nil {
			return nil, err
		}
		listings = append(listings, w)
	}
	return listings, rows.Err()
}

func (r *PgProfileRepository) Count(ctx context.Context) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgProfileRepository: nil pool")
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM worker_profile`).Scan(&n)
	return n, err
}

func (r *PgProfileRepository) CountBySkill(ctx context.Context) (map[string]int64, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT skill, count(*) FROM worker_profile GROUP BY skill`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var skill string
		var n int64
		if err := rows.Scan(&skill, &n); err != nil {
			return nil, err
		}
		out[skill] = n
	}
	return out, rows.Err()
}
