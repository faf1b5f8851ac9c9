package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a pet record does not exist.
	ErrNotFound = errors.New("pet not found")
	// ErrAlreadyAdopted is returned when an adoption races or repeats.
	// Adoption is a one-way transition: adopted_by never reverts to null.
	ErrAlreadyAdopted = errors.New("pet has already been adopted")
)

// Pet represents a pet listed on the adoption marketplace
type Pet struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Breed       string    `json:"breed"`
	Age         *int      `json:"age"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	Likes       int       `json:"likes" gorm:"not null;default:0"`
	OwnerID     string    `json:"owner_id" gorm:"type:uuid;not null;index"`
	AdoptedBy   *string   `json:"adopted_by" gorm:"type:uuid;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Pet) TableName() string {
	return "pets"
}

// IsAdopted reports whether the pet has been adopted
func (p *Pet) IsAdopted() bool {
	return p.AdoptedBy != nil && *p.AdoptedBy != ""
}

// OwnedBy reports whether the given user created this pet
func (p *Pet) OwnedBy(userID string) bool {
	return userID != "" && p.OwnerID == userID
}

// PetRepository defines the contract for pet data access
type PetRepository interface {
	Create(pet *Pet) error
	FindByID(id string) (*Pet, error)
	// FindAll returns every pet ordered by creation time descending.
	FindAll() ([]Pet, error)
	FindByIDs(ids []string) ([]Pet, error)
	Update(pet *Pet) error
	Delete(id string) error
	// AddLikes applies a ±1 delta to the likes counter, clamped at zero,
	// and returns the new count.
	AddLikes(id string, delta int) (int, error)
	// Adopt sets adopted_by if and only if it is still null.
	Adopt(id, adopterID string) error
	CountByOwner(ownerID string) (int64, error)
	CountByAdopter(userID string) (int64, error)
	Count() (int64, error)
}

// LikedStore tracks which pets a user has liked. It is advisory state used
// to render the like toggle and the favorites list; the authoritative like
// count lives on the pet record.
type LikedStore interface {
	Add(ctx context.Context, userID, petID string) error
	Remove(ctx context.Context, userID, petID string) error
	Contains(ctx context.Context, userID, petID string) (bool, error)
	List(ctx context.Context, userID string) ([]string, error)
}
