package repository

import (
	"context"

	identity "ruralconnect/internal/pkg/identity/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, a identity.Account) (string, error)
	GetByID(ctx context.Context, id string) (*identity.Account, error)
	GetByEmail(ctx context.Context, email string) (*identity.Account, error)
	Count(ctx context.Context) (int64, error)
}

// ProfileRepository defines persistence operations for worker profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p identity.WorkerProfile) (string, error)
	GetByID(ctx context.Context, id string) (*identity.WorkerListing, error)
	GetByAccount(ctx context.Context, accountID string) (*identity.WorkerProfile, error)
	Search(ctx context.Context, skill, location string) ([]identity.WorkerListing, error)
	Count(ctx context.Context) (int64, error)
	CountBySkill(ctx context.Context) (map[string]int64, error)
}
