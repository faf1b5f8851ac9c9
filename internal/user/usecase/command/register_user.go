package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/user/domain"
	"pawhaven/pkg/auth"
)

// RegisterUserCommand represents the command to create an account
type RegisterUserCommand struct {
	Email           string
	Password        string
	ConfirmPassword string
	DisplayName     string
}

// RegisterUserHandler handles account registration
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	if cmd.Password != cmd.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}
	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	if existing, err := h.repo.FindByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:          uuid.NewString(),
		Email:       email,
		Password:    hash,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
