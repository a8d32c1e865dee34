// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateBusinessEmail is returned when the business email is already taken.
	ErrDuplicateBusinessEmail = errors.New("business email already registered")
	// ErrSettingsVersionConflict is returned when a settings write lost the
	// optimistic version race.
	ErrSettingsVersionConflict = errors.New("settings were modified concurrently")
)

// BusinessRepository defines the operations for business (tenant) persistence.
type BusinessRepository interface {
	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByOwner retrieves the business owned by a user, or
	// ErrBusinessNotFound when the user has none.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)

	// EmailExists reports whether a business row already uses the email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// CountByOwner returns how many businesses a user owns.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// IsOwner reports whether the user owns the business. A missing business
	// yields (false, nil), not an error.
	IsOwner(ctx context.Context, userID, businessID uuid.UUID) (bool, error)

	// Update modifies the profile fields of a business. Settings are not
	// touched by this method.
	Update(ctx context.Context, business *entity.Business) error

	// UpdateSettings replaces the settings of a business. The write only
	// applies when the stored settings_version still equals fromVersion;
	// otherwise ErrSettingsVersionConflict is returned and nothing changes.
	UpdateSettings(ctx context.Context, businessID uuid.UUID, settings entity.BusinessSettings, fromVersion int) error

	// UpdateLogoKey records the blob key of the uploaded logo.
	UpdateLogoKey(ctx context.Context, businessID uuid.UUID, logoKey string) error

	// Search finds businesses whose name or email matches the query,
	// newest first, at most limit rows.
	Search(ctx context.Context, query string, limit int) ([]*entity.Business, error)

	// SoftDelete marks a business as deleted without dropping its rows.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
