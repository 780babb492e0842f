package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"suiteprop/internal/domain/entity"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  entity.Role `json:"role"`
	Type  string      `json:"type"`
	jwt.RegisteredClaims
}

// Session returns the identity the claims describe.
func (c *Claims) Session() entity.Session {
	return entity.Session{
		UserID: c.Subject,
		Email:  c.Email,
		Name:   c.Name,
		Role:   c.Role,
	}
}

// TokenService generates and validates signed session tokens.
type TokenService interface {
	// GenerateAccessToken signs an access token for the session.
	GenerateAccessToken(session entity.Session) (string, error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns how long issued access tokens stay valid.
	AccessTokenTTL() time.Duration
}
