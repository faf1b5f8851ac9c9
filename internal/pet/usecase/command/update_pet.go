package command

import (
	"fmt"
	"strings"
	"time"

	"pawhaven/internal/pet/domain"
)

// UpdatePetCommand represents the command to edit a pet listing
type UpdatePetCommand struct {
	PetID       string
	UserID      string
	Name        string
	Breed       string
	Age         *int
	Description string
	ImageURL    string
}

// UpdatePetHandler handles pet updates
type UpdatePetHandler struct {
	repo domain.PetRepository
}

// NewUpdatePetHandler creates a new update pet handler
func NewUpdatePetHandler(repo domain.PetRepository) *UpdatePetHandler {
	return &UpdatePetHandler{repo: repo}
}

// Handle executes the update pet command. Only the owner may edit, and the
// listing can never lose its image. Ownership, likes and adoption state are
// not editable through this path.
func (h *UpdatePetHandler) Handle(cmd UpdatePetCommand) (*domain.Pet, error) {
	pet, err := h.repo.FindByID(cmd.PetID)
	if err != nil {
		return nil, err
	}

	if !pet.OwnedBy(cmd.UserID) {
		return nil, fmt.Errorf("only the owner can edit this pet")
	}

	// An omitted image keeps the current one; the listing must always have one.
	imageURL := cmd.ImageURL
	if strings.TrimSpace(imageURL) == "" {
		imageURL = pet.ImageURL
	}
	if err := validatePetFields(cmd.Name, cmd.Age, imageURL); err != nil {
		return nil, err
	}

	pet.Name = strings.TrimSpace(cmd.Name)
	pet.Breed = strings.TrimSpace(cmd.Breed)
	pet.Age = cmd.Age
	pet.Description = strings.TrimSpace(cmd.Description)
	pet.ImageURL = imageURL
	pet.UpdatedAt = time.Now()

	if err := h.repo.Update(pet); err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	return pet, nil
}
