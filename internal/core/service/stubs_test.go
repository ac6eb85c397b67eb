package service

import (
	"context"
	"sort"
	"strings"

	"github.com/buildservice/build-service/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[int64]*domain.User
	nextID  int64
	findErr error // if set, every lookup returns this error
	lookups int
	deleted []int64
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
	for _, u := range users {
		clone := *u
		r.byID[u.ID] = &clone
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.lookups++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.lookups++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubContractorRepo struct {
	byID    map[int64]*domain.Contractor
	nextID  int64
	lookups int
}

func newStubContractorRepo(contractors ...*domain.Contractor) *stubContractorRepo {
	r := &stubContractorRepo{byID: make(map[int64]*domain.Contractor), nextID: 1}
	for _, c := range contractors {
		clone := *c
		r.byID[c.ID] = &clone
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubContractorRepo) Create(_ context.Context, c *domain.Contractor) (*domain.Contractor, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubContractorRepo) FindByID(_ context.Context, id int64) (*domain.Contractor, error) {
	r.lookups++
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrContractorNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContractorRepo) FindByEmail(_ context.Context, email string) (*domain.Contractor, error) {
	r.lookups++
	for _, c := range r.byID {
		if strings.EqualFold(c.Email, email) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContractorNotFound
}

func (r *stubContractorRepo) FindByUserID(_ context.Context, userID int64) (*domain.Contractor, error) {
	for _, c := range r.byID {
		if c.UserID != nil && *c.UserID == userID {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrContractorNotFound
}

func (r *stubContractorRepo) List(_ context.Context) ([]*domain.Contractor, error) {
	out := make([]*domain.Contractor, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubContractorRepo) Update(_ context.Context, c *domain.Contractor) (*domain.Contractor, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, domain.ErrContractorNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubContractorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrContractorNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubCommentRepo struct {
	byID   map[int64]*domain.Comment
	nextID int64
}

func newStubCommentRepo(comments ...*domain.Comment) *stubCommentRepo {
	r := &stubCommentRepo{byID: make(map[int64]*domain.Comment), nextID: 1}
	for _, c := range comments {
		clone := *c
		r.byID[c.ID] = &clone
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) ListByContractor(_ context.Context, contractorID int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.byID {
		if c.ContractorID == contractorID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.byID {
		if c.UserID != nil && *c.UserID == userID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) UpdateText(_ context.Context, id int64, text string) (*domain.Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Comment = text
	c.IsChanged = true
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubWorkingSiteRepo struct {
	byID       map[int64]*domain.WorkingSite
	nextID     int64
	lastLinks  []int64
	updateCall int
}

func newStubWorkingSiteRepo(sites ...*domain.WorkingSite) *stubWorkingSiteRepo {
	r := &stubWorkingSiteRepo{byID: make(map[int64]*domain.WorkingSite), nextID: 1}
	for _, s := range sites {
		clone := *s
		r.byID[s.ID] = &clone
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *stubWorkingSiteRepo) Create(_ context.Context, s *domain.WorkingSite) (*domain.WorkingSite, error) {
	clone := *s
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkingSiteRepo) FindByID(_ context.Context, id int64) (*domain.WorkingSite, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWorkingSiteNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubWorkingSiteRepo) List(_ context.Context) ([]*domain.WorkingSite, error) {
	out := make([]*domain.WorkingSite, 0, len(r.byID))
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubWorkingSiteRepo) Update(_ context.Context, s *domain.WorkingSite, contractorIDs []int64) (*domain.WorkingSite, error) {
	r.updateCall++
	r.lastLinks = contractorIDs
	clone := *s
	if contractorIDs != nil {
		clone.ContractorIDs = contractorIDs
	}
	r.byID[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkingSiteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrWorkingSiteNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubLoginEventRepo struct {
	lastLimit int
	events    []*domain.LoginEvent
}

func (r *stubLoginEventRepo) Insert(_ context.Context, e *domain.LoginEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *stubLoginEventRepo) ListRecent(_ context.Context, limit int) ([]*domain.LoginEvent, error) {
	r.lastLimit = limit
	if limit > len(r.events) {
		limit = len(r.events)
	}
	return r.events[:limit], nil
}

// ---------------------------------------------------------------------------
// Security stubs
// ---------------------------------------------------------------------------

// plainHasher stores passwords with a fixed prefix so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Verify(plain, hash string) bool { return hash == "hashed:"+plain }

type stubIssuer struct {
	issued []domain.Principal
	err    error
}

func (i *stubIssuer) Issue(p domain.Principal) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	i.issued = append(i.issued, p)
	return "token-for-" + strings.ToLower(p.Email), nil
}

type stubThrottle struct {
	locked   bool
	allowErr error
	failures map[string]int
	resets   []string
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int)}
}

func (t *stubThrottle) Allow(_ context.Context, _ string) error {
	if t.allowErr != nil {
		return t.allowErr
	}
	if t.locked {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	t.resets = append(t.resets, email)
	return nil
}

type recordingAuditor struct {
	events []domain.LoginEvent
}

func (a *recordingAuditor) Record(e domain.LoginEvent) {
	a.events = append(a.events, e)
}
