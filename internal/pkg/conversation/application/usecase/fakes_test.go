package usecase

import (
	"context"
	"strconv"
	"time"

	cacheport "ruralconnect/internal/infrastructure/cache/port"
	qport "ruralconnect/internal/infrastructure/queue/port"
	"ruralconnect/internal/infrastructure/realtime"
	conversation "ruralconnect/internal/pkg/conversation/domain"
	identity "ruralconnect/internal/pkg/identity/domain"
)

// memMessageRepo is an append-only in-memory message store. Messages keep
// insertion order, which doubles as the ascending timestamp order the
// Postgres adapter guarantees.
type memMessageRepo struct {
	msgs []conversation.Message
}

func (r *memMessageRepo) Save(_ context.Context, m conversation.Message) (string, error) {
	m.ID = strconv.Itoa(len(r.msgs) + 1)
	r.msgs = append(r.msgs, m)
	return m.ID, nil
}

func (r *memMessageRepo) History(_ context.Context, a, b string) ([]conversation.Message, error) {
	out := []conversation.Message{}
	for _, m := range r.msgs {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) ListByParticipant(_ context.Context, accountID string) ([]conversation.Message, error) {
	out := []conversation.Message{}
	for _, m := range r.msgs {
		if m.SenderID == accountID || m.ReceiverID == accountID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMessageRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.msgs)), nil
}

type memAccountRepo struct {
	accounts map[string]identity.Account
}

func (r *memAccountRepo) Create(_ context.Context, a identity.Account) (string, error) {
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

type memProfileRepo struct {
	profiles map[string]identity.WorkerListing
}

func (r *memProfileRepo) Create(_ context.Context, p identity.WorkerProfile) (string, error) {
	r.profiles[p.ID] = identity.WorkerListing{WorkerProfile: p}
	return p.ID, nil
}

func (r *memProfileRepo) GetByID(_ context.Context, id string) (*identity.WorkerListing, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, identity.ErrProfileNotFound
	}
	return &p, nil
}

func (r *memProfileRepo) GetByAccount(_ context.Context, accountID string) (*identity.WorkerProfile, error) {
	for _, p := range r.profiles {
		if p.AccountID == accountID {
			profile := p.WorkerProfile
			return &profile, nil
		}
	}
	return nil, identity.ErrProfileNotFound
}

func (r *memProfileRepo) Search(_ context.Context, _, _ string) ([]identity.WorkerListing, error) {
	out := []identity.WorkerListing{}
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProfileRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *memProfileRepo) CountBySkill(_ context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, p := range r.profiles {
		counts[p.Skill]++
	}
	return counts, nil
}

// fakeDeliverer records envelopes and reports a fixed connection count.
type fakeDeliverer struct {
	delivered []realtime.Envelope
	count     int
}

func (d *fakeDeliverer) Deliver(env realtime.Envelope) int {
	d.delivered = append(d.delivered, env)
	return d.count
}

type fakeQueue struct {
	tasks []qport.Task
}

func (q *fakeQueue) Enqueue(_ context.Context, t qport.Task, _ ...qport.EnqueueOption) (string, error) {
	q.tasks = append(q.tasks, t)
	return strconv.Itoa(len(q.tasks)), nil
}

func (q *fakeQueue) Close() error { return nil }

type fakeCache struct {
	entries map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.entries[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) (int64, error) {
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return int64(len(keys)), nil
}

func (c *fakeCache) Ping(_ context.Context) error { return nil }

func (c *fakeCache) Close() error { return nil }

func newTestWorld() (*memMessageRepo, *memAccountRepo, *memProfileRepo, *ResolvePartnerUseCase) {
	msgs := &memMessageRepo{}
	accounts := &memAccountRepo{accounts: map[string]identity.Account{
		"acc-employer": {ID: "acc-employer", Name: "Ravi Verma", Email: "ravi@example.com", Role: identity.RoleEmployer},
		"acc-worker":   {ID: "acc-worker", Name: "Anita Singh", Email: "anita@example.com", Role: identity.RoleWorker},
		"acc-other":    {ID: "acc-other", Name: "Saira Khan", Email: "saira@example.com", Role: identity.RoleWorker},
	}}
	profiles := &memProfileRepo{profiles: map[string]identity.WorkerListing{
		"prof-1": {WorkerProfile: identity.WorkerProfile{ID: "prof-1", AccountID: "acc-worker", Skill: "Carpenter"}},
	}}
	resolver := NewResolvePartnerUseCase(accounts, profiles)
	return msgs, accounts, profiles, resolver
}
