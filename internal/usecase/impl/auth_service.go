package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"turnos/config"
	deliverycontext "turnos/internal/delivery/context"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	"turnos/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	businessRepo      repository.BusinessRepository
	identity          service.IdentityService
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for the auth service, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	BusinessRepo repository.BusinessRepository
	Identity     service.IdentityService
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		businessRepo:      params.BusinessRepo,
		identity:          params.Identity,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials against the identity store and opens a
// session. Wrong email and wrong password are indistinguishable to the
// caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting login", slog.String("email", input.Email))

	account, err := srv.identity.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadCredentials), errors.Is(err, service.ErrAccountNotFound):
			return nil, domainerrors.ErrInvalidCredentials
		case errors.Is(err, service.ErrAccountUnverified):
			return nil, domainerrors.ErrEmailNotVerified
		default:
			return nil, errors.Wrap(err, "failed to authenticate")
		}
	}

	user, err := srv.userRepo.FindByID(ctx, account.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load user profile")
		}

		// Accounts created before profile rows existed can still log in.
		srv.log(ctx).Warn("Account has no profile row", slog.Any("userID", account.ID))
		user = &entity.User{ID: account.ID, Email: account.Email}
	}

	roles, activeBusinessID, err := srv.resolveBusinessContext(ctx, account)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, sessionID, activeBusinessID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	expiresAt := time.Now().Add(srv.tokenService.GetRefreshTokenDuration())
	session := &entity.Session{
		ID:        sessionID,
		UserID:    account.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: expiresAt,
	}
	if activeBusinessID != uuid.Nil {
		session.ActiveBusinessID = activeBusinessID.String()
	}

	if err := srv.persistSession(ctx, session); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login completed",
		slog.Any("userID", account.ID), slog.Any("sessionID", sessionID))

	return &usecase.AuthOutput{
		UserID:           account.ID,
		SessionID:        sessionID,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: expiresAt,
		ActiveBusinessID: activeBusinessID,
		User:             user,
	}, nil
}

// persistSession stores the session row. With a session limit configured
// the count and the insert share one transaction so parallel logins cannot
// both squeeze under the cap.
func (srv *authService) persistSession(ctx context.Context, session *entity.Session) error {
	if srv.maxActiveSessions <= 0 {
		if err := srv.sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		active, err := sessionRepo.CountActiveByUser(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded
		}

		return sessionRepo.Create(ctx, session)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionLimitExceeded) {
			return domainerrors.ErrSessionLimitExceeded
		}

		return errors.Wrap(err, "failed to execute login transaction")
	}

	return nil
}

// resolveBusinessContext derives the token roles and the initial business
// context. A user owning exactly one business starts with it selected; an
// owner of several picks one explicitly via the context switch.
func (srv *authService) resolveBusinessContext(ctx context.Context, account *entity.Account) ([]string, uuid.UUID, error) {
	owned, err := srv.businessRepo.CountByOwner(ctx, account.ID)
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "failed to count owned businesses")
	}

	var roles entity.Roles
	if owned > 0 {
		roles = append(roles, entity.RoleOwner)
	}
	if isAdmin, ok := account.Metadata["admin"].(bool); ok && isAdmin {
		roles = append(roles, entity.RoleAdmin)
	}

	activeBusinessID := uuid.Nil
	if owned == 1 {
		business, err := srv.businessRepo.FindByOwner(ctx, account.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, uuid.Nil, errors.Wrap(err, "failed to load owned business")
			}
		} else {
			activeBusinessID = business.ID
		}
	}

	return roles.ToStrings(), activeBusinessID, nil
}

// Refresh rotates the token pair. The presented refresh token must both
// validate and match a stored session hash; afterwards only the new pair
// works.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	now := time.Now()
	if session.IsExpired(now) {
		return nil, domainerrors.ErrRefreshTokenExpired
	}

	account, err := srv.identity.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	roles, _, err := srv.resolveBusinessContext(ctx, account)
	if err != nil {
		return nil, err
	}

	// The session keeps its business context across refreshes.
	activeBusinessID, _ := session.ActiveBusiness()

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(session.UserID, session.ID, activeBusinessID, roles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session.TokenHash = srv.tokenService.HashToken(newRefreshToken)
	session.ExpiresAt = now.Add(srv.tokenService.GetRefreshTokenDuration())
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to rotate session token")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load user profile")
		}
		user = &entity.User{ID: account.ID, Email: account.Email}
	}

	return &usecase.AuthOutput{
		UserID:           session.UserID,
		SessionID:        session.ID,
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		RefreshExpiresAt: session.ExpiresAt,
		ActiveBusinessID: activeBusinessID,
		User:             user,
	}, nil
}

// Logout ends one session. Logging out an already-gone session succeeds.
func (srv *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// LogoutAll ends every session of the user across devices.
func (srv *authService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete sessions")
	}

	srv.log(ctx).Info("Logged out everywhere", slog.Any("userID", userID))

	return nil
}
