// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of a business. The identity store keeps the matching
// account and credentials; this entity only carries the profile data the
// application itself needs.
type User struct {
	ID        uuid.UUID // Mirrors the account id in the identity store.
	Email     string    // Login identifier, unique across users.
	Name      string    // Display name shown in the dashboard.
	Phone     string    // Colombian mobile number, stored as bare ten digits.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
