package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ruralconnect/internal/infrastructure/auth"
	identity "ruralconnect/internal/pkg/identity/domain"
	repository "ruralconnect/internal/pkg/identity/persistence/repository/port"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token   string
	Account identity.Account
}

// LoginUseCase verifies credentials and issues an access token.
type LoginUseCase struct {
	Accounts repository.AccountRepository
	Tokens   *auth.TokenManager
}

func NewLoginUseCase(accounts repository.AccountRepository, tokens *auth.TokenManager) *LoginUseCase {
	return &LoginUseCase{Accounts: accounts, Tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	account, err := uc.Accounts.GetByEmail(ctx, email)
	if errors.Is(err, identity.ErrAccountNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.Tokens.Sign(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	account.PasswordHash = ""
	return &LoginOutput{Token: token, Account: *account}, nil
}
