package command

import (
	"context"
	"time"

	"pawhaven/internal/user/domain"
)

// memUserRepo is an in-memory UserRepository for handler tests
type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Update(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

// memSessionStore records revocations with their TTL
type memSessionStore struct {
	revoked map[string]time.Duration
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{revoked: make(map[string]time.Duration)}
}

func (s *memSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.revoked[tokenID] = ttl
	return nil
}

func (s *memSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}
