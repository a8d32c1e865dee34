// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
	"turnos/internal/domain/repository"
)

// ContextSwitchEvent describes one change of a session's business context.
// From and To are uuid.Nil when the respective side had no context.
type ContextSwitchEvent struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	From      uuid.UUID
	To        uuid.UUID
}

// ContextListener receives context-switch events. Listeners run
// synchronously on the switching goroutine and must not block.
type ContextListener func(event ContextSwitchEvent)

// CurrentContextOutput is the answer to "which business am I operating
// as?". Business is nil when no context is set.
type CurrentContextOutput struct {
	BusinessID uuid.UUID
	Business   *entity.Business
}

// TenantUsecase manages the business context of a session: which tenant the
// session currently operates as, both in the session row (the client-visible
// storage) and in the database session variable that drives row-level
// security.
type TenantUsecase interface {
	// CurrentBusinessID returns the business context stored on the session,
	// or uuid.Nil when none is set. A malformed stored value is cleared and
	// reported as no context rather than as an error.
	CurrentBusinessID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)

	// GetContext resolves the current context including the business row.
	GetContext(ctx context.Context, sessionID uuid.UUID) (*CurrentContextOutput, error)

	// SwitchBusiness moves the session's context to the given business after
	// verifying the user owns it. The session row is written first, then the
	// database context; when the database write fails the session write is
	// rolled back and the switch reports ErrContextSwitchFailed.
	SwitchBusiness(ctx context.Context, sessionID, userID, businessID uuid.UUID) error

	// ClearBusinessContext removes the session's context. The database-side
	// clear is best-effort: its failure is logged but does not fail the
	// operation, because the session row is the authoritative storage.
	ClearBusinessContext(ctx context.Context, sessionID, userID uuid.UUID) error

	// ValidateBusinessAccess reports whether the user may operate as the
	// business. A missing business or foreign owner yields (false, nil);
	// only infrastructure failures yield a non-nil error.
	ValidateBusinessAccess(ctx context.Context, userID, businessID uuid.UUID) (bool, error)

	// Subscribe registers a listener for context switches and returns the
	// function that removes it again.
	Subscribe(listener ContextListener) (unsubscribe func())

	// TestIsolation runs the database isolation self-check for the business
	// and returns per-table visibility counts.
	TestIsolation(ctx context.Context, userID, businessID uuid.UUID) ([]repository.IsolationResult, error)
}
