package job

import (
	"testing"
	"time"
)

func TestNewJobDefaults(t *testing.T) {
	j, err := NewJob(Job{
		Skill:    "Carpenter",
		Location: "Pune",
		Date:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		PostedBy: "acc-1",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if j.Status != StatusPending {
		t.Errorf("status = %q, want pending default", j.Status)
	}
	if j.Village != "Pune" {
		t.Errorf("village = %q, want location fallback", j.Village)
	}
	if j.CreatedAt.IsZero() {
		t.Error("created_at not stamped")
	}
}

func TestNewJobRejectsIncomplete(t *testing.T) {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		in   Job
	}{
		{"missing skill", Job{Location: "Pune", Date: date, PostedBy: "acc-1"}},
		{"missing location", Job{Skill: "Carpenter", Date: date, PostedBy: "acc-1"}},
		{"missing date", Job{Skill: "Carpenter", Location: "Pune", PostedBy: "acc-1"}},
		{"missing poster", Job{Skill: "Carpenter", Location: "Pune", Date: date}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewJob(tc.in); err == nil {
				t.Error("accepted")
			}
		})
	}
}
