package service

import (
	"context"
	"time"
)

// AppointmentEvent is published whenever an appointment changes state. The
// worker consumes it to notify the owner's devices.
type AppointmentEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Kind          string    `json:"kind"`                 // created, confirmed, cancelled, reminder
	AppointmentID string    `json:"appointment_id"`
	BusinessID    string    `json:"business_id"`
	OwnerID       string    `json:"owner_id"`
	CustomerName  string    `json:"customer_name"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}

// RegistrationEvent is published when a business finishes registering, so
// downstream systems (analytics, onboarding mails) can react.
type RegistrationEvent struct {
	RequestID    string `json:"request_id,omitempty"`
	UserID       string `json:"user_id"`
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	Department   string `json:"department"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAppointmentEvent publishes an appointment lifecycle event for async processing
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error

	// PublishRegistrationEvent publishes a completed-registration event
	PublishRegistrationEvent(ctx context.Context, event *RegistrationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
