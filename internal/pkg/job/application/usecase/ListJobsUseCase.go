package usecase

import (
	"context"
	"fmt"

	job "ruralconnect/internal/pkg/job/domain"
	"ruralconnect/internal/pkg/job/persistence/repository/port"
)

type ListJobsUseCase struct {
	Jobs port.JobRepository
}

func NewListJobsUseCase(jobs port.JobRepository) *ListJobsUseCase {
	return &ListJobsUseCase{Jobs: jobs}
}

func (uc *ListJobsUseCase) Execute(ctx context.Context, filter port.JobFilter) ([]job.Posting, error) {
	postings, err := uc.Jobs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return postings, nil
}
