package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pawhaven/pkg/auth"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	EmailKey   contextKey = "email"
	TokenIDKey contextKey = "token_id"
)

// TokenRevoker reports whether a session token has been logged out
type TokenRevoker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewAuthMiddleware validates the Bearer token and rejects revoked sessions
func NewAuthMiddleware(sessions TokenRevoker) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r)
			if !ok {
				respondError(w, http.StatusUnauthorized, "Invalid or missing token")
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

// NewOptionalAuthMiddleware attaches the viewer identity when a valid token
// is present and treats everything else as an anonymous request.
func NewOptionalAuthMiddleware(sessions TokenRevoker) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if sessions != nil {
				revoked, err := sessions.IsRevoked(r.Context(), claims.ID)
				if err == nil && revoked {
					next.ServeHTTP(w, r)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
		}
	}
}

func bearerClaims(r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := auth.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func contextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return context.WithValue(ctx, TokenIDKey, claims.ID)
}

// Helper function for error responses
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
