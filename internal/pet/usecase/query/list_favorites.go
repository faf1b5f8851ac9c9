package query

import (
	"context"
	"fmt"

	"pawhaven/internal/pet/domain"
)

// ListFavoritesQuery represents the favorites query
type ListFavoritesQuery struct {
	UserID string
}

// ListFavoritesHandler handles favorites queries
type ListFavoritesHandler struct {
	repo  domain.PetRepository
	liked domain.LikedStore
}

// NewListFavoritesHandler creates a new favorites handler
func NewListFavoritesHandler(repo domain.PetRepository, liked domain.LikedStore) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo, liked: liked}
}

// Handle returns the pets the user has liked. IDs in the liked set whose
// pets were deleted in the meantime are silently dropped.
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Pet, error) {
	ids, err := h.liked.List(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read liked set: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Pet{}, nil
	}

	pets, err := h.repo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	return pets, nil
}
