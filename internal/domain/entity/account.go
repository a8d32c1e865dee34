// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity-store record backing a User. Accounts live in a
// separate store with its own pool; nothing in this codebase can join them
// with application tables inside one transaction.
type Account struct {
	ID            uuid.UUID      // Account id; the application User shares it.
	Email         string         // Login email, unique in the identity store.
	PasswordHash  string         // bcrypt hash of the password.
	EmailVerified bool           // Login is refused until the address is verified.
	Metadata      map[string]any // Free-form claims; carries business_id after registration.
	CreatedAt     time.Time      // When the account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification.
}
