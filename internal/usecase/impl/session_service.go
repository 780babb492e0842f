package impl

import (
	"context"
	"log/slog"

	"suiteprop/internal/domain/entity"
	domainerrors "suiteprop/internal/domain/errors"
	"suiteprop/internal/domain/repository"
	"suiteprop/internal/domain/service"
	"suiteprop/internal/errors"
	"suiteprop/internal/usecase"
)

const tokenTypeBearer = "Bearer"

var (
	adminNavigation = []entity.NavItem{
		{Name: "Dashboard", Href: "/admin"},
		{Name: "Units", Href: "/admin/units"},
		{Name: "Residents", Href: "/admin/residents"},
		{Name: "Bills", Href: "/admin/bills"},
		{Name: "Maintenance", Href: "/admin/maintenance"},
		{Name: "Documents", Href: "/admin/documents"},
		{Name: "Settings", Href: "/admin/settings"},
	}

	residentNavigation = []entity.NavItem{
		{Name: "Dashboard", Href: "/resident"},
		{Name: "My Unit", Href: "/resident/unit"},
		{Name: "Bills & Payments", Href: "/resident/bills"},
		{Name: "Maintenance", Href: "/resident/maintenance"},
		{Name: "My Lease", Href: "/resident/lease"},
	}
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	directory usecase.DirectoryUsecase
	repos     repository.RepositoryFactory
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	directory usecase.DirectoryUsecase,
	repos repository.RepositoryFactory,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		directory: directory,
		repos:     repos,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login signs in by email alone.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	user, err := srv.directory.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up login email")
	}
	if user == nil {
		srv.logger.InfoContext(ctx, "Login rejected for unknown email")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}

	accessToken, err := srv.tokens.GenerateAccessToken(entity.SessionOf(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.logger.InfoContext(ctx, "User logged in",
		slog.String("userID", user.ID),
		slog.String("role", user.Role.String()),
	)

	return &usecase.LoginResult{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokens.AccessTokenTTL().Seconds()),
		User:        user,
	}, nil
}

// Authenticate rebuilds the session from the stored user so a role change or
// removal takes effect before the token expires.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (entity.Session, error) {
	claims, err := srv.tokens.ValidateToken(accessToken)
	if err != nil {
		return entity.Session{}, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	user, err := srv.repos.NewUserRepository().FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Session{}, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		return entity.Session{}, errors.Wrap(err, "failed to resolve token subject")
	}

	return entity.SessionOf(user), nil
}

func (srv *sessionService) Navigation(session entity.Session) []entity.NavItem {
	if session.IsAdmin() {
		return append([]entity.NavItem(nil), adminNavigation...)
	}

	return append([]entity.NavItem(nil), residentNavigation...)
}
