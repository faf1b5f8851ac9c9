package query

import (
	"pawhaven/internal/user/domain"
)

// GetUserQuery represents the query to fetch a user by ID
type GetUserQuery struct {
	UserID string
}

// GetUserHandler handles user lookups
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(q.UserID)
}
