// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// Health check statuses.
const (
	HealthOK       = "ok"
	HealthDegraded = "degraded"
)

// HealthOutput aggregates the readiness of the service's dependencies.
// Services maps each dependency name to "ok" or a short error description.
type HealthOutput struct {
	Status    string
	CheckedAt time.Time
	Services  map[string]string
}

// HealthUsecase reports whether the service can do useful work: the main
// store answers, the identity store answers, and the row-level-security
// functions are installed.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthOutput
}
