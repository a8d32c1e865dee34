// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
)

// UpdateProfileInput carries the editable profile fields of a business.
// Settings are updated through UpdateSettingsInput, never here.
type UpdateProfileInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID

	Name           string
	Description    string
	Address        entity.Address
	Phone          string
	WhatsappNumber string
}

// UpdateSettingsInput replaces the settings of a business. FromVersion is
// the settings version the client last read; a concurrent write bumps it
// and this update fails with a conflict instead of silently losing data.
type UpdateSettingsInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID

	Settings    entity.BusinessSettings
	FromVersion int
}

// UploadLogoInput carries an uploaded logo image.
type UploadLogoInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID

	ContentType string
	Data        []byte
}

// LogoOutput is a stored logo image.
type LogoOutput struct {
	ContentType string
	Data        []byte
}

// BusinessUsecase defines profile, settings and asset management for a
// business. Every mutating call verifies the acting user owns the business.
type BusinessUsecase interface {
	// GetProfile returns the business after checking the user may see it.
	GetProfile(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error)

	// UpdateProfile rewrites the profile fields.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Business, error)

	// UpdateSettings validates and replaces the settings, guarded by the
	// optimistic version in the input.
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Business, error)

	// Search finds businesses by name or email.
	Search(ctx context.Context, query string, limit int) ([]*entity.Business, error)

	// Delete soft-deletes a business. Only the owner may do this.
	Delete(ctx context.Context, userID, businessID uuid.UUID) error

	// GetBookingQR renders the QR code pointing at the public booking page.
	GetBookingQR(ctx context.Context, userID, businessID uuid.UUID) ([]byte, error)

	// UploadLogo stores the logo image and records its key on the business.
	UploadLogo(ctx context.Context, input *UploadLogoInput) error

	// GetLogo returns the stored logo of a business. Public: the booking
	// page shows it without a session.
	GetLogo(ctx context.Context, businessID uuid.UUID) (*LogoOutput, error)
}
