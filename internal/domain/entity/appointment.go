// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// AppointmentPending indicates a fresh booking not yet confirmed by the owner.
	AppointmentPending AppointmentStatus = "pending"
	// AppointmentConfirmed indicates the owner accepted the booking.
	AppointmentConfirmed AppointmentStatus = "confirmed"
	// AppointmentCancelled indicates the booking was cancelled by either side.
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// String returns the string representation of the status.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next. Cancelled is
// terminal; pending may confirm or cancel; confirmed may only cancel.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCancelled
	default:
		return false
	}
}

// Customer identifies who booked the appointment. Customers do not hold
// accounts; bookings are made from the public page.
type Customer struct {
	Name  string // Customer display name as typed on the booking form.
	Email string // Contact email for confirmations.
	Phone string // Colombian mobile number, bare ten digits.
}

// Appointment is a reserved time slot at a business.
type Appointment struct {
	ID           uuid.UUID         // The unique ID for this appointment.
	BusinessID   uuid.UUID         // The tenant this appointment belongs to.
	Customer     Customer          // Booking contact data.
	StartsAt     time.Time         // Start of the slot, wall clock of the business timezone.
	EndsAt       time.Time         // End of the slot, strictly after StartsAt.
	Status       AppointmentStatus // Lifecycle state.
	Notes        string            // Optional free-form note from the customer.
	CancelReason string            // Why the appointment was cancelled, when it was.
	CancelledAt  *time.Time        // When the appointment was cancelled, nil otherwise.
	CreatedAt    time.Time         // When the booking was made.
	UpdatedAt    time.Time         // Timestamp of the last modification.
}

// Overlaps reports whether two half-open intervals [StartsAt, EndsAt)
// intersect.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && start.Before(a.EndsAt)
}
