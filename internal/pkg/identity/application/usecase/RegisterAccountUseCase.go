package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

// RegisterAccountInput carries registration data. Password arrives in plain
// text and is hashed here; it is never persisted as-is.
type RegisterAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     identity.Role
}

// RegisterAccountUseCase creates a new account with a bcrypt-hashed password.
// One class per use case (own file).
type RegisterAccountUseCase struct {
	Accounts repository.AccountRepository
}

func NewRegisterAccountUseCase(accounts repository.AccountRepository) *RegisterAccountUseCase {
	return &RegisterAccountUseCase{Accounts: accounts}
}

// Execute registers the account and returns it with its generated id.
func (uc *RegisterAccountUseCase) Execute(ctx context.Context, in RegisterAccountInput) (*identity.Account, error) {
	if len(in.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := identity.NewAccount(identity.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Accounts.Create(ctx, *account)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	account.ID = id
	account.PasswordHash = ""
	return account, nil
}
