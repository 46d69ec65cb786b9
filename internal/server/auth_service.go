package server

import (
	"crypto/subtle"

	"github.com/biocom/careers-api/internal/config"
)

// AdminRole is the fixed role of the single administrative principal.
const AdminRole = "administrator"

// AuthService is the session gate guarding the admin surface. It checks
// credentials against the one configured admin principal; there is no
// account system behind it.
type AuthService struct {
	admin     *config.AdminConfig
	passwords *config.PasswordConfig
}

// NewAuthService creates a new AuthService with the given configuration.
func NewAuthService(admin *config.AdminConfig, passwords *config.PasswordConfig) *AuthService {
	return &AuthService{admin: admin, passwords: passwords}
}

// Authenticate checks a credential pair. Wrong username and wrong
// password produce the same generic error.
func (s *AuthService) Authenticate(username, password string) error {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passwordOK := s.passwords.VerifyPassword(password, s.admin.PasswordHash)
	if !usernameOK || !passwordOK {
		return &ErrInvalidCredentials{}
	}
	return nil
}

// Username returns the configured admin username.
func (s *AuthService) Username() string {
	return s.admin.Username
}
