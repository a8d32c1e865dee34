// Package constants defines shared domain-level constants.
package constants

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Environment names accepted in configuration.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderLocal posts events to a local HTTP endpoint, simulating
	// push subscriptions during development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Event type attribute values carried on published messages, used by
// subscription filters.
const (
	EventTypeAppointment  = "appointment"
	EventTypeRegistration = "registration"
)
