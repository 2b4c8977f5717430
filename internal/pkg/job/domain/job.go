package job

import (
	"errors"
	"strings"
	"time"
)

// Status tracks a job posting through its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Job is a work request posted by an employer account.
type Job struct {
	ID          string     `db:"id"`
	Skill       string     `db:"skill"`
	Village     string     `db:"village"`
	Location    string     `db:"location"`
	Date        time.Time  `db:"date"`
	Time        string     `db:"time"`
	Description string     `db:"description"`
	Budget      *float64   `db:"budget"`
	Status      Status     `db:"status"`
	PostedBy    string     `db:"posted_by"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Posting is a job hydrated with the poster's display fields.
type Posting struct {
	Job
	PostedByName  string `db:"name"`
	PostedByEmail string `db:"email"`
}

// NewJob validates a posting request.
func NewJob(j Job) (*Job, error) {
	j.Skill = strings.TrimSpace(j.Skill)
	j.Location = strings.TrimSpace(j.Location)
	if j.Skill == "" || j.Location == "" || j.Date.IsZero() {
		return nil, errors.New("skill, location, and date are required")
	}
	if j.PostedBy == "" {
		return nil, errors.New("poster account is required")
	}
	if j.Village == "" {
		j.Village = j.Location
	}
	if j.Status == "" {
		j.Status = StatusPending
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	return &j, nil
}
