package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. The table carries a
// row-level security policy filtering by business_id, so every query against
// it must run on a connection whose tenant context has been set.
type AppointmentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CustomerName  string     `gorm:"type:varchar(100);not null"`
	CustomerEmail string     `gorm:"type:varchar(255);not null"`
	CustomerPhone string     `gorm:"type:varchar(20);not null"`
	StartsAt      time.Time  `gorm:"not null;index"`
	EndsAt        time.Time  `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes         string     `gorm:"type:text"`
	CancelReason  string     `gorm:"type:text"`
	CancelledAt   *time.Time `gorm:"type:timestamptz"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
