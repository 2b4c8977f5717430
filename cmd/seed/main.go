package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"ruralconnect/internal/config"
	"ruralconnect/internal/infrastructure/database"
	identity "ruralconnect/internal/pkg/identity/domain"
	identityAdapter "ruralconnect/internal/pkg/identity/persistence/repository/adapter"
	job "ruralconnect/internal/pkg/job/domain"
	jobAdapter "ruralconnect/internal/pkg/job/persistence/repository/adapter"
)

// Seeds the database with a small demo dataset: three accounts, two worker
// listings, two jobs. Destructive; it truncates first.
func main() {
	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DBUrl)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `TRUNCATE message, job, worker_profile, account`); err != nil {
		logger.Fatal().Err(err).Msg("truncate failed")
	}

	accounts := identityAdapter.NewPgAccountRepository(pool)
	profiles := identityAdapter.NewPgProfileRepository(pool)
	jobs := jobAdapter.NewPgJobRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash failed")
	}

	seedAccounts := []identity.Account{
		{Name: "Anita Singh", Email: "anita@example.com", Role: identity.RoleWorker},
		{Name: "Ravi Verma", Email: "ravi@example.com", Role: identity.RoleEmployer},
		{Name: "Saira Khan", Email: "saira@example.com", Role: identity.RoleWorker},
	}
	ids := make([]string, len(seedAccounts))
	for i, a := range seedAccounts {
		a.PasswordHash = string(hash)
		acct, err := identity.NewAccount(a)
		if err != nil {
			logger.Fatal().Err(err).Str("email", a.Email).Msg("invalid account")
		}
		id, err := accounts.Create(ctx, *acct)
		if err != nil {
			logger.Fatal().Err(err).Str("email", a.Email).Msg("account insert failed")
		}
		ids[i] = id
	}

	seedProfiles := []identity.WorkerProfile{
		{AccountID: ids[0], Skill: "Carpenter", Rating: 4.6, Experience: "5 years",
			Address: identity.Address{Area: "Sector 5", Street: "Main Rd", City: "Pune", State: "MH"}},
		{AccountID: ids[2], Skill: "Plumber", Rating: 4.3, Experience: "3 years",
			Address: identity.Address{Area: "DLF Phase 1", Street: "Park St", City: "Gurugram", State: "HR"}},
	}
	for _, p := range seedProfiles {
		profile, err := identity.NewWorkerProfile(p)
		if err != nil {
			logger.Fatal().Err(err).Str("skill", p.Skill).Msg("invalid profile")
		}
		if _, err := profiles.Create(ctx, *profile); err != nil {
			logger.Fatal().Err(err).Str("skill", p.Skill).Msg("profile insert failed")
		}
	}

	budget1, budget2 := 800.0, 1200.0
	seedJobs := []job.Job{
		{Skill: "Carpenter", Location: "Pune", Date: time.Now().AddDate(0, 0, 7),
			Description: "Bedroom door hinges noisy", Budget: &budget1,
			Status: job.StatusPending, PostedBy: ids[1]},
		{Skill: "Plumber", Location: "Pune", Date: time.Now().AddDate(0, 0, -14),
			Description: "Leak under kitchen sink", Budget: &budget2,
			Status: job.StatusCompleted, PostedBy: ids[1]},
	}
	for _, j := range seedJobs {
		posting, err := job.NewJob(j)
		if err != nil {
			logger.Fatal().Err(err).Str("skill", j.Skill).Msg("invalid job")
		}
		if err := jobs.Create(ctx, posting); err != nil {
			logger.Fatal().Err(err).Str("skill", j.Skill).Msg("job insert failed")
		}
	}

	logger.Info().Msg("seeded")
}
