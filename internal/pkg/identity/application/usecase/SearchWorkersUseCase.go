package usecase

import (
	"context"
	"fmt"
	"strings"

	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

type SearchWorkersInput struct {
	Skill    string
	Location string
}

// SearchWorkersUseCase lists directory entries matching the given filters.
// Empty filters match everything.
type SearchWorkersUseCase struct {
	Profiles repository.ProfileRepository
}

func NewSearchWorkersUseCase(profiles repository.ProfileRepository) *SearchWorkersUseCase {
	return &SearchWorkersUseCase{Profiles: profiles}
}

func (uc *SearchWorkersUseCase) Execute(ctx context.Context, in SearchWorkersInput) ([]identity.WorkerListing, error) {
	listings, err := uc.Profiles.Search(ctx, strings.TrimSpace(in.Skill), strings.TrimSpace(in.Location))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return listings, nil
}
