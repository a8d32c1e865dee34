// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies what triggered a push notification.
type NotificationKind string

const (
	// NotificationAppointmentCreated is sent when a customer books a slot.
	NotificationAppointmentCreated NotificationKind = "appointment_created"
	// NotificationAppointmentCancelled is sent when a booking is cancelled.
	NotificationAppointmentCancelled NotificationKind = "appointment_cancelled"
	// NotificationAppointmentReminder is sent ahead of an upcoming slot.
	NotificationAppointmentReminder NotificationKind = "appointment_reminder"
)

// String returns the string representation of the kind.
func (k NotificationKind) String() string {
	return string(k)
}

// Notification is the delivery log of one push sent to the owner's devices.
// It records aggregate fan-out counts rather than one row per device.
type Notification struct {
	ID            uuid.UUID        // The unique ID for this log entry.
	BusinessID    uuid.UUID        // The tenant the notification belongs to.
	AppointmentID *uuid.UUID       // The appointment that triggered it, when applicable.
	Kind          NotificationKind // What triggered the push.
	Title         string           // Push title, Spanish.
	Body          string           // Push body, Spanish.
	TotalSent     int              // Devices that accepted the message.
	TotalFailed   int              // Devices that rejected it.
	SentAt        time.Time        // When the fan-out completed.
}
