package service

import (
	"context"
	"fmt"
	"time"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
	err    error // when set, every call fails with it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("usr%03d", r.nextID)
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByCPF(_ context.Context, cpf string) (*domain.User, error) {
	for _, u := range r.users {
		if u.CPF == cpf {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) PushSubscription(_ context.Context, userID string, sub domain.Subscription) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Subscriptions = append(u.Subscriptions, sub)
	return nil
}

func (r *stubUserRepo) PushContract(_ context.Context, userID string, contract domain.ContractEntry) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Contracts = append(u.Contracts, contract)
	return nil
}

// stubRevocations is an in-memory RevocationStore.
type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]bool)}
}

func (s *stubRevocations) Revoke(_ context.Context, tokenHash string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[tokenHash] = true
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenHash], nil
}

// stubServiceRepo is an in-memory ports.ServiceRepository.
type stubServiceRepo struct {
	services map[string]*domain.Service
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) Create(_ context.Context, svc *domain.Service) error {
	clone := *svc
	r.services[svc.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := r.services[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *stubServiceRepo) List(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubServiceRepo) UpdateStatus(_ context.Context, id string, status domain.ServiceStatus) error {
	s, ok := r.services[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	s.Status = status
	return nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

// stubTicketRepo is an in-memory ports.TicketRepository.
type stubTicketRepo struct {
	tickets map[string]*domain.Ticket
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[string]*domain.Ticket)}
}

func (r *stubTicketRepo) Create(_ context.Context, t *domain.Ticket) error {
	clone := *t
	r.tickets[t.ID] = &clone
	return nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id string) (*domain.Ticket, error) {
	if t, ok := r.tickets[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrTicketNotFound
}

func (r *stubTicketRepo) ListByRequester(_ context.Context, requesterID string) ([]*domain.Ticket, error) {
	var out []*domain.Ticket
	for _, t := range r.tickets {
		if t.Requester.ID == requesterID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTicketRepo) UpdateStatus(_ context.Context, id string, status domain.TicketStatus) error {
	t, ok := r.tickets[id]
	if !ok {
		return domain.ErrTicketNotFound
	}
	t.Status = status
	return nil
}

func (r *stubTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrTicketNotFound
	}
	delete(r.tickets, id)
	return nil
}

// stubFileStore is an in-memory ports.FileStore.
type stubFileStore struct {
	files  map[string]storedBlob
	nextID int
}

type storedBlob struct {
	name     string
	data     []byte
	metadata map[string]string
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{files: make(map[string]storedBlob)}
}

func (s *stubFileStore) Upload(_ context.Context, filename string, data []byte, metadata map[string]string) (string, error) {
	s.nextID++
	id := fmt.Sprintf("file%03d", s.nextID)
	cp := make([]byte, len(data))
	copy(cp, data)
	s.files[id] = storedBlob{name: filename, data: cp, metadata: metadata}
	return id, nil
}

func (s *stubFileStore) Download(_ context.Context, id string) (*ports.StoredFile, error) {
	b, ok := s.files[id]
	if !ok {
		return nil, domain.ErrFileNotFound
	}
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return &ports.StoredFile{ID: id, Name: b.name, Data: cp, Metadata: b.metadata}, nil
}

func (s *stubFileStore) Delete(_ context.Context, id string) error {
	delete(s.files, id)
	return nil
}
