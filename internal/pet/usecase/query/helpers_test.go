package query

import (
	"context"

	"pawhaven/internal/pet/domain"
)

// memPetRepo is a slice-backed PetRepository for query tests. FindAll
// returns pets in the order they were added, newest first, matching the
// SQL repository's ordering.
type memPetRepo struct {
	pets []domain.Pet
}

func newMemPetRepo(pets ...domain.Pet) *memPetRepo {
	return &memPetRepo{pets: pets}
}

func (r *memPetRepo) Create(pet *domain.Pet) error {
	r.pets = append([]domain.Pet{*pet}, r.pets...)
	return nil
}

func (r *memPetRepo) FindByID(id string) (*domain.Pet, error) {
	for i := range r.pets {
		if r.pets[i].ID == id {
			copied := r.pets[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memPetRepo) FindAll() ([]domain.Pet, error) {
	return append([]domain.Pet{}, r.pets...), nil
}

func (r *memPetRepo) FindByIDs(ids []string) ([]domain.Pet, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.Pet
	for _, p := range r.pets {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPetRepo) Update(pet *domain.Pet) error {
	for i := range r.pets {
		if r.pets[i].ID == pet.ID {
			r.pets[i] = *pet
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPetRepo) Delete(id string) error {
	for i := range r.pets {
		if r.pets[i].ID == id {
			r.pets = append(r.pets[:i], r.pets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPetRepo) AddLikes(id string, delta int) (int, error) {
	for i := range r.pets {
		if r.pets[i].ID == id {
			r.pets[i].Likes += delta
			if r.pets[i].Likes < 0 {
				r.pets[i].Likes = 0
			}
			return r.pets[i].Likes, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (r *memPetRepo) Adopt(id, adopterID string) error {
	for i := range r.pets {
		if r.pets[i].ID == id {
			if r.pets[i].IsAdopted() {
				return domain.ErrAlreadyAdopted
			}
			r.pets[i].AdoptedBy = &adopterID
			return nil
		}
	}
	return domain.ErrNotFound
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
