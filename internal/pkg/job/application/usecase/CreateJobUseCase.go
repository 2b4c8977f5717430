package usecase

import (
	"context"
	"fmt"
	"time"

	job "ruralconnect/internal/pkg/job/domain"
	"ruralconnect/internal/pkg/job/persistence/repository/port"
)

type CreateJobInput struct {
	PosterID    string
	Skill       string
	Village     string
	Location    string
	Date        time.Time
	Time        string
	Description string
	Budget      *float64
}

type CreateJobUseCase struct {
	Jobs port.JobRepository
}

func NewCreateJobUseCase(jobs port.JobRepository) *CreateJobUseCase {
	return &CreateJobUseCase{Jobs: jobs}
}

func (uc *CreateJobUseCase) Execute(ctx context.Context, in CreateJobInput) (*job.Job, error) {
	j, err := job.NewJob(job.Job{
		Skill:       in.Skill,
		Village:     in.Village,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Description: in.Description,
		Budget:      in.Budget,
		PostedBy:    in.PosterID,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.Jobs.Create(ctx, j); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return j, nil
}
