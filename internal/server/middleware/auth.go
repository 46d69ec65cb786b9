// Package middleware provides HTTP middleware for session authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/biocom/careers-api/internal/careers"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionKey is the context key for the authenticated session user.
const sessionKey ContextKey = "sessionUser"

// TokenValidator validates session tokens. The interface keeps this
// package independent of the JWT implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionGetter, error)
}

// SessionGetter exposes the principal carried by validated token claims.
type SessionGetter interface {
	GetUsername() string
	GetRole() string
}

// Auth creates middleware that requires a valid bearer token and adds the
// session user to the request context.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := BearerToken(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			user := careers.SessionUser{
				Username: claims.GetUsername(),
				Role:     claims.GetRole(),
			}
			ctx := context.WithValue(r.Context(), sessionKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the bearer token from the Authorization header.
// The "Bearer" prefix is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// SessionUser extracts the authenticated session user from the request
// context.
func SessionUser(r *http.Request) (careers.SessionUser, error) {
	user, ok := r.Context().Value(sessionKey).(careers.SessionUser)
	if !ok {
		return careers.SessionUser{}, fmt.Errorf("session user not found in request context")
	}
	return user, nil
}
