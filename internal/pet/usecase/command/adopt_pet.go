package command

import (
	"context"
	"fmt"
	"time"

	"pawhaven/internal/pet/domain"
	"pawhaven/kafka"
	"pawhaven/pkg/logger"
)

// AdoptPetCommand represents the command to adopt a pet
type AdoptPetCommand struct {
	PetID   string
	UserID  string
	Confirm bool
}

// EventPublisher publishes adoption events to downstream consumers
type EventPublisher interface {
	PublishPetAdopted(ctx context.Context, event kafka.PetAdoptedEvent) error
}

// AdoptPetHandler handles pet adoption
type AdoptPetHandler struct {
	repo      domain.PetRepository
	publisher EventPublisher
}

// NewAdoptPetHandler creates a new adopt pet handler. The publisher may be
// nil when the broker is not configured.
func NewAdoptPetHandler(repo domain.PetRepository, publisher EventPublisher) *AdoptPetHandler {
	return &AdoptPetHandler{repo: repo, publisher: publisher}
}

// Handle executes the adopt pet command. Adoption is one-way: once a pet has
// an adopter it can never be adopted again.
func (h *AdoptPetHandler) Handle(ctx context.Context, cmd AdoptPetCommand) (*domain.Pet, error) {
	if !cmd.Confirm {
		return nil, fmt.Errorf("adoption must be confirmed")
	}

	pet, err := h.repo.FindByID(cmd.PetID)
	if err != nil {
		return nil, err
	}

	if pet.OwnedBy(cmd.UserID) {
		return nil, fmt.Errorf("you cannot adopt your own pet")
	}
	if pet.IsAdopted() {
		return nil, domain.ErrAlreadyAdopted
	}

	// The conditional update in the repository closes the race between the
	// check above and a concurrent adopter.
	if err := h.repo.Adopt(cmd.PetID, cmd.UserID); err != nil {
		return nil, err
	}

	pet, err = h.repo.FindByID(cmd.PetID)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.PetAdoptedEvent{
			PetID:     pet.ID,
			PetName:   pet.Name,
			OwnerID:   pet.OwnerID,
			AdopterID: cmd.UserID,
			Timestamp: time.Now(),
		}
		if err := h.publisher.PublishPetAdopted(ctx, event); err != nil {
			// The adoption is committed; the event is best-effort.
			logger.Error(ctx).Err(err).Str("pet_id", pet.ID).Msg("Failed to publish adoption event")
		}
	}

	return pet, nil
}
