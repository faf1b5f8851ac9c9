package command

import (
	"fmt"
	"strings"
	"time"

	"pawhaven/internal/user/domain"
)

// UpdateProfileCommand represents the command to edit the caller's profile
type UpdateProfileCommand struct {
	UserID      string
	DisplayName string
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.User, error) {
	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = displayName
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
