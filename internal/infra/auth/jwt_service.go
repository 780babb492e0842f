// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"suiteprop/config"
	"suiteprop/internal/domain/entity"
	"suiteprop/internal/domain/service"
)

const (
	tokenTypeAccess = "access"
	tokenIssuer     = "suiteprop"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenTTL
	}
	if ttl <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an HS256 token whose subject is the session user.
func (s *jwtService) GenerateAccessToken(session entity.Session) (string, error) {
	if session.UserID == "" {
		return "", errors.New("cannot issue a token without a subject")
	}

	now := s.now()
	claims := &service.Claims{
		Email: session.Email,
		Name:  session.Name,
		Role:  session.Role,
		Type:  tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a token, rejecting other signing methods,
// expired tokens and tokens that are not access tokens.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
