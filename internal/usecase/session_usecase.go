package usecase

import (
	"context"

	"suiteprop/internal/domain/entity"
)

// SessionUsecase signs callers in and resolves their sessions.
type SessionUsecase interface {
	// Login issues an access token for the user with the exact email.
	// No password is checked; the demo login is email only.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)

	// Authenticate validates an access token and returns the session of the
	// user it was issued to, as currently stored.
	Authenticate(ctx context.Context, accessToken string) (entity.Session, error)

	// Navigation returns the portal menu for the session's role.
	Navigation(session entity.Session) []entity.NavItem
}

// --- Input DTOs ---

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// LoginResult is returned after a successful sign in.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"` // seconds
	User        *entity.User `json:"user"`
}
