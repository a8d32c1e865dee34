// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"turnos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentFilter narrows List queries.
type AppointmentFilter struct {
	From   *time.Time               // Inclusive lower bound on StartsAt.
	To     *time.Time               // Exclusive upper bound on StartsAt.
	Status entity.AppointmentStatus // Empty means any status.
}

// AppointmentRepository defines the operations for appointment persistence.
// All methods are tenant-scoped: row-level security filters by the business
// context set on the connection, so these must run inside a transaction that
// has already applied the context.
type AppointmentRepository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// List returns the appointments of a business matching the filter,
	// ordered by start time.
	List(ctx context.Context, businessID uuid.UUID, filter AppointmentFilter) ([]*entity.Appointment, error)

	// ExistsOverlapping reports whether any non-cancelled appointment of the
	// business intersects [start, end).
	ExistsOverlapping(ctx context.Context, businessID uuid.UUID, start, end time.Time) (bool, error)

	// Update rewrites an appointment row (status changes, notes).
	Update(ctx context.Context, appointment *entity.Appointment) error
}
