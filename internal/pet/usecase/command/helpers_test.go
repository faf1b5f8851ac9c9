package command

import (
	"context"

	"pawhaven/internal/pet/domain"
	"pawhaven/kafka"
)

// memPetRepo is an in-memory PetRepository for handler tests. It mirrors the
// SQL repository's semantics: likes clamp at zero and adoption only succeeds
// while adopted_by is still null.
type memPetRepo struct {
	pets      map[string]*domain.Pet
	createErr error
	created   []*domain.Pet
}

func newMemPetRepo(pets ...*domain.Pet) *memPetRepo {
	repo := &memPetRepo{pets: make(map[string]*domain.Pet)}
	for _, p := range pets {
		repo.pets[p.ID] = p
	}
	return repo
}

func (r *memPetRepo) Create(pet *domain.Pet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.pets[pet.ID] = pet
	r.created = append(r.created, pet)
	return nil
}

func (r *memPetRepo) FindByID(id string) (*domain.Pet, error) {
	pet, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *pet
	return &copied, nil
}

func (r *memPetRepo) FindAll() ([]domain.Pet, error) {
	out := make([]domain.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPetRepo) FindByIDs(ids []string) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPetRepo) Update(pet *domain.Pet) error {
	if _, ok := r.pets[pet.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *pet
	r.pets[pet.ID] = &copied
	return nil
}

func (r *memPetRepo) Delete(id string) error {
	if _, ok := r.pets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

func (r *memPetRepo) AddLikes(id string, delta int) (int, error) {
	pet, ok := r.pets[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	pet.Likes += delta
	if pet.Likes < 0 {
		pet.Likes = 0
	}
	return pet.Likes, nil
}

func (r *memPetRepo) Adopt(id, adopterID string) error {
	pet, ok := r.pets[id]
	if !ok {
		return domain.ErrNotFound
	}
	if pet.IsAdopted() {
		return domain.ErrAlreadyAdopted
	}
	pet.AdoptedBy = &adopterID
	return nil
}

func (r *memPetRepo) CountByOwner(ownerID string) (int64, error) {
	var n int64
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *memPetRepo) CountByAdopter(userID string) (int64, error) {
	var n int64
	for _, p := range r.pets {
		if p.AdoptedBy != nil && *p.AdoptedBy == userID {
			n++
		}
	}
	return n, nil
}

func (r *memPetRepo) Count() (int64, error) {
	return int64(len(r.pets)), nil
}

// memLikedStore is an in-memory LikedStore
type memLikedStore struct {
	liked map[string]map[string]bool
}

func newMemLikedStore() *memLikedStore {
	return &memLikedStore{liked: make(map[string]map[string]bool)}
}

func (s *memLikedStore) Add(ctx context.Context, userID, petID string) error {
	if s.liked[userID] == nil {
		s.liked[userID] = make(map[string]bool)
	}
	s.liked[userID][petID] = true
	return nil
}

func (s *memLikedStore) Remove(ctx context.Context, userID, petID string) error {
	delete(s.liked[userID], petID)
	return nil
}

func (s *memLikedStore) Contains(ctx context.Context, userID, petID string) (bool, error) {
	return s.liked[userID][petID], nil
}

func (s *memLikedStore) List(ctx context.Context, userID string) ([]string, error) {
	var out []string
	for petID := range s.liked[userID] {
		out = append(out, petID)
	}
	return out, nil
}

// stubPublisher records published adoption events
type stubPublisher struct {
	events []kafka.PetAdoptedEvent
	err    error
}

func (p *stubPublisher) PublishPetAdopted(ctx context.Context, event kafka.PetAdoptedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func intPtr(n int) *int { return &n }
