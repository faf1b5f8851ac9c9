package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pawhaven/internal/pet/domain"
)

// GormPetRepository implements PetRepository using GORM
type GormPetRepository struct {
	db *gorm.DB
}

// NewGormPetRepository creates a new GORM pet repository
func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// Create inserts a new pet into the database
func (r *GormPetRepository) Create(pet *domain.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// FindByID retrieves a pet by ID
func (r *GormPetRepository) FindByID(id string) (*domain.Pet, error) {
	var pet domain.Pet
	if err := r.db.Where("id = ?", id).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pet: %w", err)
	}
	return &pet, nil
}

// FindAll retrieves every pet ordered by creation time descending
func (r *GormPetRepository) FindAll() ([]domain.Pet, error) {
	var pets []domain.Pet
	if err := r.db.Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to find pets: %w", err)
	}
	return pets, nil
}

// FindByIDs retrieves the pets with the given IDs, newest first
func (r *GormPetRepository) FindByIDs(ids []string) ([]domain.Pet, error) {
	if len(ids) == 0 {
		return []domain.Pet{}, nil
	}

	var pets []domain.Pet
	if err := r.db.Where("id IN ?", ids).Order("created_at DESC").Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to find pets: %w", err)
	}
	return pets, nil
}

// Update saves a pet's mutable fields
func (r *GormPetRepository) Update(pet *domain.Pet) error {
	if err := r.db.Save(pet).Error; err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	return nil
}

// Delete removes a pet from the database
func (r *GormPetRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&domain.Pet{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete pet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddLikes applies a delta to the likes counter, clamped at zero in SQL so
// concurrent toggles can never drive the counter negative.
func (r *GormPetRepository) AddLikes(id string, delta int) (int, error) {
	result := r.db.Model(&domain.Pet{}).
		Where("id = ?", id).
		Update("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update likes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, domain.ErrNotFound
	}

	var likes int
	if err := r.db.Model(&domain.Pet{}).Select("likes").Where("id = ?", id).Scan(&likes).Error; err != nil {
		return 0, fmt.Errorf("failed to read likes: %w", err)
	}
	return likes, nil
}

// Adopt sets adopted_by if and only if the pet is still unadopted. The
// conditional update makes the null-to-adopter transition race-safe.
func (r *GormPetRepository) Adopt(id, adopterID string) error {
	result := r.db.Model(&domain.Pet{}).
		Where("id = ? AND adopted_by IS NULL", id).
		Update("adopted_by", adopterID)
	if result.Error != nil {
		return fmt.Errorf("failed to adopt pet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
		return domain.ErrAlreadyAdopted
	}
	return nil
}

// CountByOwner returns how many pets the user has listed
func (r *GormPetRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Pet{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pets by owner: %w", err)
	}
	return count, nil
}

// CountByAdopter returns how many pets the user has adopted
func (r *GormPetRepository) CountByAdopter(userID string) (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Pet{}).Where("adopted_by = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pets by adopter: %w", err)
	}
	return count, nil
}

// Count returns the total number of pets
func (r *GormPetRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Pet{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pets: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormPetRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Pet{})
}
