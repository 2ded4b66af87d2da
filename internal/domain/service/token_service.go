package service

import (
	"time"

	"canteen/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID string
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session
// tokens. The household app has a single shared secret and no refresh flow;
// a token simply names the logged-in member for the duration of a session.
type TokenService interface {
	// GenerateToken creates a signed session token for the given member.
	GenerateToken(userID string, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured session token lifetime.
	TokenTTL() time.Duration
}
