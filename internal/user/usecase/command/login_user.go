package command

import (
	"fmt"
	"strings"

	"pawhaven/internal/user/domain"
	"pawhaven/pkg/auth"
)

// LoginUserCommand represents the command to start a session
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse carries the session token and the authenticated account
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles logins
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command. Unknown email and wrong password
// produce the same message so the endpoint does not leak which accounts
// exist.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))

	user, err := h.repo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
