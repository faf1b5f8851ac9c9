package query

import (
	"fmt"

	"pawhaven/internal/pet/domain"
)

// GetProfileStatsQuery represents the profile stats query
type GetProfileStatsQuery struct {
	UserID string
}

// ProfileStats summarizes a user's marketplace activity
type ProfileStats struct {
	Listed  int64 `json:"listed"`
	Adopted int64 `json:"adopted"`
}

// GetProfileStatsHandler handles profile stats queries
type GetProfileStatsHandler struct {
	repo domain.PetRepository
}

// NewGetProfileStatsHandler creates a new profile stats handler
func NewGetProfileStatsHandler(repo domain.PetRepository) *GetProfileStatsHandler {
	return &GetProfileStatsHandler{repo: repo}
}

// Handle executes the profile stats query
func (h *GetProfileStatsHandler) Handle(q GetProfileStatsQuery) (*ProfileStats, error) {
	listed, err := h.repo.CountByOwner(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count listed pets: %w", err)
	}

	adopted, err := h.repo.CountByAdopter(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count adopted pets: %w", err)
	}

	return &ProfileStats{Listed: listed, Adopted: adopted}, nil
}
