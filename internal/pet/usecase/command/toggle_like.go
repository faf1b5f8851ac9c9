package command

import (
	"context"
	"fmt"

	"pawhaven/internal/pet/domain"
	"pawhaven/pkg/logger"
)

// ToggleLikeCommand represents the command to like or unlike a pet
type ToggleLikeCommand struct {
	PetID  string
	UserID string
}

// ToggleLikeResult carries the outcome of a like toggle
type ToggleLikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ToggleLikeHandler handles like toggling
type ToggleLikeHandler struct {
	repo  domain.PetRepository
	liked domain.LikedStore
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(repo domain.PetRepository, liked domain.LikedStore) *ToggleLikeHandler {
	return &ToggleLikeHandler{repo: repo, liked: liked}
}

// Handle executes the toggle like command. The pet's counter is the source
// of truth; the per-user liked set only remembers which direction the next
// toggle goes. Counts never drop below zero.
func (h *ToggleLikeHandler) Handle(ctx context.Context, cmd ToggleLikeCommand) (*ToggleLikeResult, error) {
	pet, err := h.repo.FindByID(cmd.PetID)
	if err != nil {
		return nil, err
	}

	if pet.OwnedBy(cmd.UserID) {
		return nil, fmt.Errorf("you cannot like your own pet")
	}
	if pet.IsAdopted() {
		return nil, fmt.Errorf("this pet has already been adopted")
	}

	hasLiked, err := h.liked.Contains(ctx, cmd.UserID, cmd.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check liked set: %w", err)
	}

	delta := 1
	if hasLiked {
		delta = -1
	}

	likes, err := h.repo.AddLikes(cmd.PetID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to update likes: %w", err)
	}

	// The counter is already committed; a liked-set failure only costs the
	// user their highlight state, so log and carry on.
	if hasLiked {
		if err := h.liked.Remove(ctx, cmd.UserID, cmd.PetID); err != nil {
			logger.Error(ctx).Err(err).Str("pet_id", cmd.PetID).Msg("Failed to remove from liked set")
		}
	} else {
		if err := h.liked.Add(ctx, cmd.UserID, cmd.PetID); err != nil {
			logger.Error(ctx).Err(err).Str("pet_id", cmd.PetID).Msg("Failed to add to liked set")
		}
	}

	return &ToggleLikeResult{Likes: likes, Liked: !hasLiked}, nil
}
