// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a logged-in device. Besides the refresh token it
// carries the session's tenant context: the business the user is currently
// operating as.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.

	// ActiveBusinessID mirrors what the frontend keeps in its own storage.
	// It is deliberately a raw string: stale clients have written garbage
	// here before, so every read must format-validate it and clear it when
	// it does not parse as a UUID.
	ActiveBusinessID string

	ExpiresAt time.Time // When the refresh token becomes invalid.
	CreatedAt time.Time // When the user logged in on this device.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// ActiveBusiness parses the stored context value. The second return is
// false when the slot is empty or holds a malformed value.
func (s *Session) ActiveBusiness() (uuid.UUID, bool) {
	if s.ActiveBusinessID == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s.ActiveBusinessID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// IsExpired reports whether the session's refresh token has lapsed.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
