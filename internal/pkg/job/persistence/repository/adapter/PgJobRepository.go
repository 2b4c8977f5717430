package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	job "ruralconnect/internal/pkg/job/domain"
	"ruralconnect/internal/pkg/job/persistence/repository/port"
)

var _ port.JobRepository = (*PgJobRepository)(nil)

type PgJobRepository struct {
	pool *pgxpool.Pool
}

func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

func (r *PgJobRepository) Create(ctx context.Context, j *job.Job) error {
	if r == nil || r.pool == nil {
		return errors.New("PgJobRepository: nil pool")
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO job (skill, village, location, date, "time", description, budget, status, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::uuid, $10)
		RETURNING id::text
	`, j.Skill, j.Village, j.Location, j.Date, j.Time, j.Description, j.Budget, j.Status, j.PostedBy, j.CreatedAt).Scan(&j.ID)
}

func (r *PgJobRepository) List(ctx context.Context, filter port.JobFilter) ([]job.Posting, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgJobRepository: nil pool")
	}
	query := `
		SELECT j.id::text, j.skill, j.village, j.location, j.date, j."time",
		       j.description, j.budget, j.status, j.posted_by::text, j.created_at,
		       a.name, a.email
		FROM job j
		JOIN account a ON a.id = j.posted_by
	`
	clauses := []string{}
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("j.status = $%d", len(args)))
	}
	if filter.Skill != "" {
		args = append(args, filter.Skill)
		clauses = append(clauses, fmt.Sprintf("j.skill ILIKE $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(j.location ILIKE '%%' || $%d || '%%' OR j.village ILIKE '%%' || $%d || '%%')", n, n))
	}
	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ")
	}
	rows, err := r.pool.Query(ctx, query+" ORDER BY j.created_at DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	postings := []job.Posting{}
	for rows.Next() {
		var p job.Posting
		if err := rows.Scan(
			&p.ID, &p.Skill, &p.Village, &p.Location, &p.Date, &p.Time,
			&p.Description, &p.Budget, &p.Status, &p.PostedBy, &p.CreatedAt,
			&p.PostedByName, &p.PostedByEmail,
		); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func (r *PgJobRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgJobRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM job GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *PgJobRepository) Count(ctx context.Context) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgJobRepository: nil pool")
	}
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM job`).Scan(&n)
	return n, err
}
