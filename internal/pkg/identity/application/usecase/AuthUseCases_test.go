package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"ruralconnect/internal/infrastructure/auth"
	identity "ruralconnect/internal/pkg/identity/domain"
)

type memAccountRepo struct {
	accounts map[string]identity.Account
	seq      int
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]identity.Account{}}
}

func (r *memAccountRepo) Create(_ context.Context, a identity.Account) (string, error) {
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return "", identity.ErrEmailTaken
		}
	}
	r.seq++
	a.ID = "acc-" + strconv.Itoa(r.seq)
	r.accounts[a.ID] = a
	return a.ID, nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id string) (*identity.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, identity.ErrAccountNotFound
	}
	return &a, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*identity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, identity.ErrAccountNotFound
}

func (r *memAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.accounts)), nil
}

func TestRegisterThenLogin(t *testing.T) {
	accounts := newMemAccountRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	register := NewRegisterAccountUseCase(accounts)
	login := NewLoginUseCase(accounts, tokens)
	ctx := context.Background()

	created, err := register.Execute(ctx, RegisterAccountInput{
		Name:     "Anita Singh",
		Email:    "Anita@Example.com",
		Password: "password123",
		Role:     identity.RoleWorker,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID == "" {
		t.Error("id not assigned")
	}
	if created.Email != "anita@example.com" {
		t.Errorf("email = %q, want lowercased", created.Email)
	}
	if created.PasswordHash != "" {
		t.Error("password hash leaked out of the use case")
	}

	out, err := login.Execute(ctx, LoginInput{Email: "anita@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Parse(out.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.AccountID != created.ID || claims.Role != "worker" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	accounts := newMemAccountRepo()
	register := NewRegisterAccountUseCase(accounts)
	ctx := context.Background()

	in := RegisterAccountInput{Name: "Anita", Email: "anita@example.com", Password: "password123", Role: identity.RoleWorker}
	if _, err := register.Execute(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := register.Execute(ctx, in); !errors.Is(err, identity.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	register := NewRegisterAccountUseCase(newMemAccountRepo())
	if _, err := register.Execute(context.Background(), RegisterAccountInput{
		Name: "Anita", Email: "anita@example.com", Password: "12345", Role: identity.RoleWorker,
	}); err == nil {
		t.Error("short password accepted")
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	accounts := newMemAccountRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	register := NewRegisterAccountUseCase(accounts)
	login := NewLoginUseCase(accounts, tokens)
	ctx := context.Background()

	if _, err := register.Execute(ctx, RegisterAccountInput{
		Name: "Anita", Email: "anita@example.com", Password: "password123", Role: identity.RoleWorker,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := login.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "password123"})
	_, wrongErr := login.Execute(ctx, LoginInput{Email: "anita@example.com", Password: "wrong"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("unknown=%v wrong=%v, want ErrInvalidCredentials for both", unknownErr, wrongErr)
	}
}
