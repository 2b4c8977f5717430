package identity

import (
	"errors"
	"strings"
	"time"
)

// Address locates a worker for directory search. All fields optional.
type Address struct {
	Area   string `db:"area" json:"area,omitempty"`
	Street string `db:"street" json:"street,omitempty"`
	City   string `db:"city" json:"city,omitempty"`
	State  string `db:"state" json:"state,omitempty"`
}

// WorkerProfile is a derived identity attached to exactly one account,
// exposing a service listing. Its id and the owning account id are distinct
// values drawn from the same id space.
type WorkerProfile struct {
	ID         string    `db:"id"`
	AccountID  string    `db:"account_id"`
	Skill      string    `db:"skill"`
	Rating     float64   `db:"rating"`
	Experience string    `db:"experience"`
	Address    Address   `db:"address"`
	CreatedAt  time.Time `db:"created_at"`
}

// WorkerListing is a profile hydrated with its owner's display fields, the
// shape returned by the worker directory.
type WorkerListing struct {
	WorkerProfile
	Name  string `db:"name"`
	Email string `db:"email"`
}

// NewWorkerProfile validates profile creation input.
func NewWorkerProfile(p WorkerProfile) (*WorkerProfile, error) {
	p.Skill = strings.TrimSpace(p.Skill)
	if p.AccountID == "" {
		return nil, errors.New("account id is required")
	}
	if p.Skill == "" {
		return nil, errors.New("skill is required")
	}
	if p.Rating < 0 || p.Rating > 5 {
		return nil, errors.New("rating must be between 0 and 5")
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return &p, nil
}
