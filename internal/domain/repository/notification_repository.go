// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository stores the delivery log of pushed notifications.
type NotificationRepository interface {
	// Create persists one fan-out log entry.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByBusiness returns the most recent log entries of a business,
	// newest first, at most limit rows.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Notification, error)
}
