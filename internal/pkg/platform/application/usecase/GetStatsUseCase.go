package usecase

import (
	"context"
	"fmt"
	"sort"

	identityPort "ruralconnect/internal/pkg/identity/persistence/repository/port"
	jobPort "ruralconnect/internal/pkg/job/persistence/repository/port"
)

var ErrPersistence = fmt.Errorf("persistence failure")

// SkillCount is one slice of the worker distribution.
type SkillCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type Stats struct {
	TotalUsers         int64        `json:"totalUsers"`
	TotalWorkers       int64        `json:"totalWorkers"`
	TotalJobs          int64        `json:"totalJobs"`
	PendingJobs        int64        `json:"pendingJobs"`
	CompletedJobs      int64        `json:"completedJobs"`
	WorkerDistribution []SkillCount `json:"workerDistribution"`
}

// GetStatsUseCase aggregates platform totals for the dashboard.
type GetStatsUseCase struct {
	Accounts identityPort.AccountRepository
	Profiles identityPort.ProfileRepository
	Jobs     jobPort.JobRepository
}

func NewGetStatsUseCase(accounts identityPort.AccountRepository, profiles identityPort.ProfileRepository, jobs jobPort.JobRepository) *GetStatsUseCase {
	return &GetStatsUseCase{Accounts: accounts, Profiles: profiles, Jobs: jobs}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*Stats, error) {
	users, err := uc.Accounts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	workers, err := uc.Profiles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	jobs, err := uc.Jobs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	byStatus, err := uc.Jobs.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	bySkill, err := uc.Profiles.CountBySkill(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	dist := make([]SkillCount, 0, len(bySkill))
	for skill, n := range bySkill {
		dist = append(dist, SkillCount{Name: skill, Value: n})
	}
	// map iteration order is random; keep the distribution deterministic
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Value != dist[j].Value {
			return dist[i].Value > dist[j].Value
		}
		return dist[i].Name < dist[j].Name
	})

	return &Stats{
		TotalUsers:         users,
		TotalWorkers:       workers,
		TotalJobs:          jobs,
		PendingJobs:        byStatus["pending"],
		CompletedJobs:      byStatus["completed"],
		WorkerDistribution: dist,
	}, nil
}
