// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
)

// RegisterDeviceInput registers or refreshes a push-notification device.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	FCMToken string
	DeviceID string
	Platform entity.DevicePlatform
}

// DeviceUsecase manages the owner's registered devices. The worker pushes
// booking notifications to every active device.
type DeviceUsecase interface {
	// RegisterDevice upserts a device keyed by its client identifier, so a
	// reinstalled app refreshes its token instead of duplicating rows.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error)

	// ListDevices returns all devices of the user, active or not.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// RemoveDevice deletes one device of the user. Removing someone else's
	// device is reported as not found.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
