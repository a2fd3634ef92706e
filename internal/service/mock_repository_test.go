package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memRegistrationRepo: in-memory RegistrationRepository with a unique email index
// ---------------------------------------------------------------------------

type memRegistrationRepo struct {
	mu      sync.Mutex
	rows    []*model.Registration
	findErr error
	// skipFind makes FindByEmail miss, simulating a concurrent insert
	// that lands between the lookup and the insert.
	skipFind bool
}

func (r *memRegistrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Email == reg.Email {
			return repository.ErrDuplicate
		}
	}
	reg.ID = uuid.NewString()
	reg.CreatedAt = time.Now().UTC()
	cp := *reg
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memRegistrationRepo) FindByEmail(ctx context.Context, email string) (*model.Registration, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.skipFind {
		for _, existing := range r.rows {
			if existing.Email == email {
				cp := *existing
				return &cp, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRegistrationRepo) List(ctx context.Context, limit int) ([]*model.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Registration, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, r.rows[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRegistrationRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows), nil
}

// ---------------------------------------------------------------------------
// memMessageRepo: in-memory MessageRepository
// ---------------------------------------------------------------------------

type memMessageRepo struct {
	mu    sync.Mutex
	rows  map[string]*model.Message
	calls int
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{rows: make(map[string]*model.Message)}
}

func (r *memMessageRepo) Save(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	now := time.Now().UTC()
	msg.ID = uuid.NewString()
	msg.Read = false
	msg.Reply = nil
	msg.RepliedAt = nil
	msg.CreatedAt = now
	msg.UpdatedAt = now
	cp := *msg
	r.rows[msg.ID] = &cp
	return nil
}

func (r *memMessageRepo) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	var out []*model.Message
	for _, m := range r.rows {
		switch opts.Status {
		case "read":
			if !m.Read {
				continue
			}
		case "unread":
			if m.Read {
				continue
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memMessageRepo) GetByID(ctx context.Context, id string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	m, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMessageRepo) SetRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	m, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.Read = read
	m.UpdatedAt = time.Now().UTC()
	cp := *m
	return &cp, nil
}

func (r *memMessageRepo) Reply(ctx context.Context, id, reply string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	m, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	now := time.Now().UTC()
	m.Reply = &reply
	m.RepliedAt = &now
	m.Read = true
	m.UpdatedAt = now
	cp := *m
	return &cp, nil
}

func (r *memMessageRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memMessageRepo) Count(ctx context.Context) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	unread := 0
	for _, m := range r.rows {
		if !m.Read {
			unread++
		}
	}
	return len(r.rows), unread, nil
}

// ---------------------------------------------------------------------------
// function-field mocks for contestants and panelists
// ---------------------------------------------------------------------------

type mockContestantRepo struct {
	createFunc func(ctx context.Context, c *model.Contestant) error
	updateFunc func(ctx context.Context, c *model.Contestant) error
	deleteFunc func(ctx context.Context, id string) error
	listFunc   func(ctx context.Context) ([]*model.Contestant, error)
	count      int
}

func (m *mockContestantRepo) Create(ctx context.Context, c *model.Contestant) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *mockContestantRepo) Update(ctx context.Context, c *model.Contestant) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockContestantRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockContestantRepo) List(ctx context.Context) ([]*model.Contestant, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContestantRepo) Count(ctx context.Context) (int, error) { return m.count, nil }

type mockPanelistRepo struct {
	createFunc  func(ctx context.Context, p *model.Panelist) error
	getByIDFunc func(ctx context.Context, id string) (*model.Panelist, error)
	deleteFunc  func(ctx context.Context, id string) error
	count       int
}

func (m *mockPanelistRepo) Create(ctx context.Context, p *model.Panelist) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockPanelistRepo) GetByID(ctx context.Context, id string) (*model.Panelist, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPanelistRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPanelistRepo) List(ctx context.Context) ([]*model.Panelist, error) { return nil, nil }

func (m *mockPanelistRepo) Count(ctx context.Context) (int, error) { return m.count, nil }
