package command

import (
	"context"
	"fmt"
	"time"

	"pawhaven/internal/user/domain"
)

// LogoutUserCommand represents the command to end a session
type LogoutUserCommand struct {
	TokenID   string
	ExpiresAt time.Time
}

// LogoutUserHandler revokes session tokens
type LogoutUserHandler struct {
	sessions domain.SessionStore
}

// NewLogoutUserHandler creates a new logout handler
func NewLogoutUserHandler(sessions domain.SessionStore) *LogoutUserHandler {
	return &LogoutUserHandler{sessions: sessions}
}

// Handle executes the logout command. The token stays revoked until it
// would have expired on its own.
func (h *LogoutUserHandler) Handle(ctx context.Context, cmd LogoutUserCommand) error {
	if cmd.TokenID == "" {
		return fmt.Errorf("missing token id")
	}
	return h.sessions.Revoke(ctx, cmd.TokenID, time.Until(cmd.ExpiresAt))
}
