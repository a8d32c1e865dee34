package service

import (
	"context"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Identity store errors.
var (
	// ErrAccountNotFound is returned when no account matches.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when the email is already registered.
	ErrAccountExists = errors.New("account already exists")
	// ErrBadCredentials is returned when email/password do not match.
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrAccountUnverified is returned when the email is not yet verified.
	ErrAccountUnverified = errors.New("email not verified")
)

// IdentityService is the client of the identity store, the separate
// subsystem that owns accounts and credentials. It shares no transaction
// with the application repositories: a caller that creates an account and
// then fails elsewhere must compensate with DeleteAccount.
type IdentityService interface {
	// CreateAccount registers a new account and triggers the verification
	// email. No session is issued; the user signs in after verifying.
	CreateAccount(ctx context.Context, email, password string) (*entity.Account, error)

	// DeleteAccount removes an account. This is the compensation path of
	// the registration saga.
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// Authenticate verifies credentials and returns the account. It fails
	// with ErrAccountUnverified for valid credentials on an unverified
	// address.
	Authenticate(ctx context.Context, email, password string) (*entity.Account, error)

	// FindByID retrieves an account by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// EmailExists reports whether the email is registered.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UpdateMetadata merges the given keys into the account metadata.
	UpdateMetadata(ctx context.Context, id uuid.UUID, metadata map[string]any) error

	// Ping verifies the identity store is reachable.
	Ping(ctx context.Context) error
}
