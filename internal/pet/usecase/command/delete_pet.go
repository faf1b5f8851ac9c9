package command

import (
	"fmt"

	"pawhaven/internal/pet/domain"
)

// DeletePetCommand represents the command to remove a pet listing
type DeletePetCommand struct {
	PetID  string
	UserID string
}

// DeletePetHandler handles pet deletion
type DeletePetHandler struct {
	repo domain.PetRepository
}

// NewDeletePetHandler creates a new delete pet handler
func NewDeletePetHandler(repo domain.PetRepository) *DeletePetHandler {
	return &DeletePetHandler{repo: repo}
}

// Handle executes the delete pet command. Only the owner may delete.
func (h *DeletePetHandler) Handle(cmd DeletePetCommand) error {
	pet, err := h.repo.FindByID(cmd.PetID)
	if err != nil {
		return err
	}

	if !pet.OwnedBy(cmd.UserID) {
		return fmt.Errorf("only the owner can delete this pet")
	}

	if err := h.repo.Delete(cmd.PetID); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	return nil
}
