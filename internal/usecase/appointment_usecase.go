// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"turnos/internal/domain/entity"
)

// BookAppointmentInput is a booking request from the public page. No
// session: customers identify themselves inline.
type BookAppointmentInput struct {
	BusinessID uuid.UUID

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	StartsAt time.Time
	EndsAt   time.Time
	Notes    string
}

// ListAppointmentsInput narrows the owner's appointment listing.
type ListAppointmentsInput struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID

	From   *time.Time
	To     *time.Time
	Status entity.AppointmentStatus
}

// UpdateAppointmentInput identifies an appointment the owner acts on.
type UpdateAppointmentInput struct {
	UserID        uuid.UUID
	BusinessID    uuid.UUID
	AppointmentID uuid.UUID

	CancelReason string
}

// TimeSlot is one bookable window on the availability grid.
type TimeSlot struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// AvailabilityOutput lists the free slots of one calendar day. Open is
// false on closed weekdays and holidays; Reason then says why in Spanish.
type AvailabilityOutput struct {
	Date   time.Time
	Open   bool
	Reason string
	Slots  []TimeSlot
}

// AppointmentUsecase defines booking and appointment management. Booking is
// public; everything else is owner-facing and tenant-scoped.
type AppointmentUsecase interface {
	// Book validates and creates a booking: the business must be open on
	// that weekday and hour, the date must not be a holiday, the slot must
	// not lie in the past or beyond the booking window, and it must not
	// overlap an existing appointment.
	Book(ctx context.Context, input *BookAppointmentInput) (*entity.Appointment, error)

	// List returns the business's appointments matching the filter.
	List(ctx context.Context, input *ListAppointmentsInput) ([]*entity.Appointment, error)

	// Get returns one appointment of the business.
	Get(ctx context.Context, userID, businessID, appointmentID uuid.UUID) (*entity.Appointment, error)

	// Confirm moves a pending appointment to confirmed.
	Confirm(ctx context.Context, input *UpdateAppointmentInput) (*entity.Appointment, error)

	// Cancel cancels a pending or confirmed appointment.
	Cancel(ctx context.Context, input *UpdateAppointmentInput) (*entity.Appointment, error)

	// Availability computes the free slots of a business on one date.
	// Public: the booking page renders the grid from it.
	Availability(ctx context.Context, businessID uuid.UUID, date time.Time) (*AvailabilityOutput, error)
}
