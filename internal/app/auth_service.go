package app

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// AuthService checks the single shared admin credential. The stored value is
// a hex SHA-256 digest of the password; the comparison is constant-time so
// the digest check leaks nothing through timing.
type AuthService struct {
	username     string
	passwordHash string
}

func NewAuthService(username, passwordHash string) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
	}
}

// Verify returns true when the supplied credentials match the configured
// admin username and password digest. An empty configured digest denies
// everything.
func (s *AuthService) Verify(username, password string) bool {
	if s.passwordHash == "" {
		return false
	}
	if username != s.username {
		return false
	}

	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(s.passwordHash)) == 1
}

// HashPassword returns the hex SHA-256 digest stored for the admin
// credential. Shared with the portfolioctl hash-password command.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
