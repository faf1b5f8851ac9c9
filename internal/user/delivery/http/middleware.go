package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pawhaven/pkg/auth"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	EmailKey       contextKey = "email"
	TokenIDKey     contextKey = "token_id"
	TokenExpiryKey contextKey = "token_expiry"
)

// TokenRevoker reports whether a session token has been logged out
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewAuthMiddleware validates the Bearer token and rejects revoked sessions
func NewAuthMiddleware(sessions TokenRevoker) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromRequest(r)
			if err != nil {
				respondError(w, http.StatusUnauthorized, err.Error())
				return
			}

			if sessions != nil {
				revoked, err := sessions.IsRevoked(r.Context(), claims.ID)
				if err == nil && revoked {
					respondError(w, http.StatusUnauthorized, "Session has been logged out")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		}
	}
}

func claimsFromRequest(r *http.Request) (*auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errAuthRequired
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errAuthFormat
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		return nil, errAuthInvalid
	}
	return claims, nil
}

func contextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	ctx = context.WithValue(ctx, TokenIDKey, claims.ID)
	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	return context.WithValue(ctx, TokenExpiryKey, expiry)
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	errAuthRequired authError = "Authorization header required"
	errAuthFormat   authError = "Invalid authorization header format"
	errAuthInvalid  authError = "Invalid token"
)

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
