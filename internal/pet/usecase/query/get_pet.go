package query

import (
	"context"

	"pawhaven/internal/pet/domain"
	"pawhaven/pkg/logger"
)

// GetPetQuery represents the query to fetch a single pet. ViewerID is empty
// for anonymous visitors.
type GetPetQuery struct {
	PetID    string
	ViewerID string
}

// PetDetail is a pet enriched with viewer-specific flags
type PetDetail struct {
	domain.Pet
	IsOwner   bool `json:"is_owner"`
	IsAdopted bool `json:"is_adopted"`
	IsLiked   bool `json:"is_liked"`
}

// GetPetHandler handles single pet queries
type GetPetHandler struct {
	repo  domain.PetRepository
	liked domain.LikedStore
}

// NewGetPetHandler creates a new get pet handler
func NewGetPetHandler(repo domain.PetRepository, liked domain.LikedStore) *GetPetHandler {
	return &GetPetHandler{repo: repo, liked: liked}
}

// Handle executes the get pet query
func (h *GetPetHandler) Handle(ctx context.Context, q GetPetQuery) (*PetDetail, error) {
	pet, err := h.repo.FindByID(q.PetID)
	if err != nil {
		return nil, err
	}

	detail := &PetDetail{
		Pet:       *pet,
		IsOwner:   q.ViewerID != "" && pet.OwnedBy(q.ViewerID),
		IsAdopted: pet.IsAdopted(),
	}

	if q.ViewerID != "" && !detail.IsOwner {
		liked, err := h.liked.Contains(ctx, q.ViewerID, pet.ID)
		if err != nil {
			// Highlight state is advisory; the detail page still renders.
			logger.Warn(ctx).Err(err).Str("pet_id", pet.ID).Msg("Failed to read liked set")
		} else {
			detail.IsLiked = liked
		}
	}

	return detail, nil
}
