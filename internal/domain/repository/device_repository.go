// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Upsert persists a device, replacing the FCM token when the same
	// client identifier registers again.
	Upsert(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByUser retrieves all devices of a user, including inactive ones.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// FindActiveByUser retrieves the devices push notifications go to.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// Deactivate marks a device as inactive, e.g. after FCM reports its
	// token is no longer registered.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Delete removes a device registration.
	Delete(ctx context.Context, id uuid.UUID) error
}
