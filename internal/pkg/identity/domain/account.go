package identity

import (
	"errors"
	"strings"
	"time"
)

// Role tags an account as either side of the marketplace.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("an account with this email already exists")
	ErrProfileNotFound = errors.New("worker profile not found")
	ErrProfileExists   = errors.New("worker profile already exists")
)

// Account is a registered identity. Accounts are immutable once created as
// far as the messaging subsystem is concerned.
type Account struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// NewAccount validates and normalizes registration input.
func NewAccount(a Account) (*Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Name == "" {
		return nil, errors.New("name is required")
	}
	if a.Email == "" || !strings.Contains(a.Email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if a.Role != RoleWorker && a.Role != RoleEmployer {
		return nil, errors.New("role must be worker or employer")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return &a, nil
}
