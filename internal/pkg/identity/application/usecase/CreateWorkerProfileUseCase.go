package usecase

import (
	"context"
	"errors"
	"fmt"

	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

type CreateWorkerProfileInput struct {
	AccountID  string
	Skill      string
	Rating     float64
	Experience string
	Address    identity.Address
}

// CreateWorkerProfileUseCase exposes a service listing for the calling
// account. An account may hold at most one profile.
type CreateWorkerProfileUseCase struct {
	Profiles repository.ProfileRepository
}

func NewCreateWorkerProfileUseCase(profiles repository.ProfileRepository) *CreateWorkerProfileUseCase {
	return &CreateWorkerProfileUseCase{Profiles: profiles}
}

func (uc *CreateWorkerProfileUseCase) Execute(ctx context.Context, in CreateWorkerProfileInput) (*identity.WorkerProfile, error) {
	if _, err := uc.Profiles.GetByAccount(ctx, in.AccountID); err == nil {
		return nil, identity.ErrProfileExists
	} else if !errors.Is(err, identity.ErrProfileNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	profile, err := identity.NewWorkerProfile(identity.WorkerProfile{
		AccountID:  in.AccountID,
		Skill:      in.Skill,
		Rating:     in.Rating,
		Experience: in.Experience,
		Address:    in.Address,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Profiles.Create(ctx, *profile)
	if err != nil {
		if errors.Is(err, identity.ErrProfileExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	profile.ID = id
	return profile, nil
}
