package port

import (
	"context"

	job "ruralconnect/internal/pkg/job/domain"
)

// JobFilter narrows a listing query. Zero values mean no filtering.
type JobFilter struct {
	Status   string
	Skill    string
	Location string
}

type JobRepository interface {
	Create(ctx context.Context, j *job.Job) error
	List(ctx context.Context, filter JobFilter) ([]job.Posting, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
