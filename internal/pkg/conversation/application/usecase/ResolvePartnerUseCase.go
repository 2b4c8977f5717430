package usecase

import (
	"context"
	"errors"
	"fmt"

	conversation "ruralconnect/internal/pkg/conversation/domain"
	identity "ruralconnect/internal/pkg/identity/domain"
	identityrepo "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

// ResolvedPartner is the canonical identity behind a partner reference. Every
// downstream operation keys on Account.ID; ProfileID is carried only for
// response metadata when the reference named a worker profile.
type ResolvedPartner struct {
	Account   identity.Account
	ProfileID string
}

// ResolvePartnerUseCase disambiguates a caller-supplied partner reference
// into an account. Untagged references try the worker-profile interpretation
// first and fall back to a direct account lookup; profile ids and account ids
// share an id space, so the order is load-bearing.
type ResolvePartnerUseCase struct {
	Accounts identityrepo.AccountRepository
	Profiles identityrepo.ProfileRepository
}

func NewResolvePartnerUseCase(accounts identityrepo.AccountRepository, profiles identityrepo.ProfileRepository) *ResolvePartnerUseCase {
	return &ResolvePartnerUseCase{Accounts: accounts, Profiles: profiles}
}

func (uc *ResolvePartnerUseCase) Execute(ctx context.Context, ref conversation.PartnerRef) (*ResolvedPartner, error) {
	if ref.ID == "" {
		return nil, conversation.ErrPartnerNotFound
	}

	switch ref.Kind {
	case conversation.PartnerProfile:
		return uc.byProfile(ctx, ref.ID)
	case conversation.PartnerAccount:
		return uc.byAccount(ctx, ref.ID)
	default:
		resolved, err := uc.byProfile(ctx, ref.ID)
		if err == nil {
			return resolved, nil
		}
		if !errors.Is(err, conversation.ErrPartnerNotFound) {
			return nil, err
		}
		return uc.byAccount(ctx, ref.ID)
	}
}

func (uc *ResolvePartnerUseCase) byProfile(ctx context.Context, id string) (*ResolvedPartner, error) {
	listing, err := uc.Profiles.GetByID(ctx, id)
	if errors.Is(err, identity.ErrProfileNotFound) {
		return nil, conversation.ErrPartnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	account, err := uc.Accounts.GetByID(ctx, listing.AccountID)
	if errors.Is(err, identity.ErrAccountNotFound) {
		// Profile without a live owner; treat as unresolvable.
		return nil, conversation.ErrPartnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &ResolvedPartner{Account: *account, ProfileID: listing.ID}, nil
}

func (uc *ResolvePartnerUseCase) byAccount(ctx context.Context, id string) (*ResolvedPartner, error) {
	account, err := uc.Accounts.GetByID(ctx, id)
	if errors.Is(err, identity.ErrAccountNotFound) {
		return nil, conversation.ErrPartnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &ResolvedPartner{Account: *account}, nil
}
