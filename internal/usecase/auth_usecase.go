// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
)

// LoginInput defines the credentials for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput carries a freshly issued token pair and the session it belongs
// to. ActiveBusinessID is uuid.Nil when the session has no business context.
type AuthOutput struct {
	UserID           uuid.UUID
	SessionID        uuid.UUID
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
	ActiveBusinessID uuid.UUID
	User             *entity.User
}

// AuthUsecase defines login, token refresh and logout. Credentials live in
// the identity store; sessions and their tenant context live in the main
// store.
type AuthUsecase interface {
	// Login verifies credentials, opens a session and issues a token pair.
	// When the user owns exactly one business it becomes the session's
	// context immediately, so the dashboard works without an explicit
	// switch.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh rotates the token pair of the session identified by the
	// refresh token. The old refresh token stops working.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout ends one session.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// LogoutAll ends every session of the user.
	LogoutAll(ctx context.Context, userID uuid.UUID) error
}
