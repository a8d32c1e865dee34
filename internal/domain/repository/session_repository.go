// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session's refresh token has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository manages logged-in device sessions. Each session row also
// carries the session's tenant context (the active business id), which the
// context manager reads and writes through the dedicated methods below.
type SessionRepository interface {
	// Create persists a new session, representing a login on one device.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByTokenHash retrieves a session by the stored refresh token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByUser retrieves every session of a user across devices.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// Update rewrites a session row (token rotation on refresh).
	Update(ctx context.Context, session *entity.Session) error

	// UpdateActiveBusiness writes the raw tenant-context value of one
	// session. An empty string clears the context.
	UpdateActiveBusiness(ctx context.Context, sessionID uuid.UUID, businessID string) error

	// Delete removes a session by ID, ending that device's login.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTokenHash removes a session by its token hash.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUser removes every session of a user ("logout everywhere").
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes lapsed sessions. Called periodically.
	DeleteExpired(ctx context.Context) error

	// CountActiveByUser returns the number of non-expired sessions of a
	// user, used to enforce the session limit.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
