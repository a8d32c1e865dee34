package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. One row per logged-in device.
//
// ActiveBusinessID is deliberately TEXT rather than UUID: the column mirrors
// a value the frontend keeps in browser storage, and old clients have synced
// malformed values into it. The application validates the format on every
// read instead of letting the database reject the write.
type SessionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash        string    `gorm:"type:varchar(255);unique;not null"`
	ActiveBusinessID string    `gorm:"type:text;not null;default:''"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
