package server

import (
	"encoding/json"
	"net/http"

	"github.com/biocom/careers-api/internal/careers"
	"github.com/biocom/careers-api/internal/server/middleware"
)

// AuthHandler handles login, logout, and session introspection.
type AuthHandler struct {
	authService *AuthService
	jwtService  *JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService *AuthService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// Login authenticates the admin credential pair and issues a session
// token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req careers.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := h.authService.Authenticate(req.Username, req.Password); err != nil {
		jsonError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username, AdminRole)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, careers.LoginResponse{
		User:  careers.SessionUser{Username: req.Username, Role: AdminRole},
		Token: token,
	})
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy and the token simply ages out.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me returns the authenticated session user. The auth middleware has
// already rejected requests without a valid token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.SessionUser(r)
	if err != nil {
		jsonError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	jsonResponse(w, http.StatusOK, user)
}
