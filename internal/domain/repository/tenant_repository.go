// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// IsolationResult is one row of the isolation self-check: how many rows of a
// tenant-scoped table the current context can see, and how many belong to
// other tenants. ForeignRows must be zero when row-level security holds.
type IsolationResult struct {
	Table       string
	VisibleRows int64
	ForeignRows int64
}

// TenantContextRepository wraps the database functions that manage the
// row-level-security session variable. The functions live in the database;
// this interface only invokes them. Because the variable is attached to the
// connection, calls that must affect subsequent queries have to run inside
// the same transaction as those queries.
type TenantContextRepository interface {
	// SetCurrentBusiness sets the session variable to the business id.
	SetCurrentBusiness(ctx context.Context, businessID uuid.UUID) error

	// CurrentBusiness reads the session variable. uuid.Nil means no
	// context is set on this connection.
	CurrentBusiness(ctx context.Context) (uuid.UUID, error)

	// SetBusinessContext sets the session variable after the database-side
	// ownership check. It fails when the user does not own the business.
	SetBusinessContext(ctx context.Context, userID, businessID uuid.UUID) error

	// ClearBusinessContext resets the session variable.
	ClearBusinessContext(ctx context.Context) error

	// TestDataIsolation runs the database self-check for one business and
	// reports per-table visibility.
	TestDataIsolation(ctx context.Context, businessID uuid.UUID) ([]IsolationResult, error)

	// Ping verifies the context functions are installed and responding.
	Ping(ctx context.Context) error
}
