package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/pet/domain"
)

// CreatePetCommand represents the command to list a new pet
type CreatePetCommand struct {
	OwnerID     string
	Name        string
	Breed       string
	Age         *int
	Description string
	ImageURL    string
}

// CreatePetHandler handles pet creation
type CreatePetHandler struct {
	repo domain.PetRepository
}

// NewCreatePetHandler creates a new create pet handler
func NewCreatePetHandler(repo domain.PetRepository) *CreatePetHandler {
	return &CreatePetHandler{repo: repo}
}

// Handle executes the create pet command
func (h *CreatePetHandler) Handle(cmd CreatePetCommand) (*domain.Pet, error) {
	if cmd.OwnerID == "" {
		return nil, fmt.Errorf("you must be logged in to add a pet")
	}
	if err := validatePetFields(cmd.Name, cmd.Age, cmd.ImageURL); err != nil {
		return nil, err
	}

	now := time.Now()
	pet := &domain.Pet{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(cmd.Name),
		Breed:       strings.TrimSpace(cmd.Breed),
		Age:         cmd.Age,
		Description: strings.TrimSpace(cmd.Description),
		ImageURL:    cmd.ImageURL,
		Likes:       0,
		OwnerID:     cmd.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	return pet, nil
}

// validatePetFields enforces the shared create/edit rules: name mandatory,
// age within [0,30], image always present.
func validatePetFields(name string, age *int, imageURL string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("pet name is required")
	}
	if age != nil && (*age < 0 || *age > 30) {
		return fmt.Errorf("age must be between 0 and 30")
	}
	if strings.TrimSpace(imageURL) == "" {
		return fmt.Errorf("a pet image is required")
	}
	return nil
}
