package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications'
// table. It logs one push fan-out per row with aggregate delivery counts.
// The table is tenant-scoped by business_id under row-level security.
type NotificationModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AppointmentID *uuid.UUID `gorm:"type:uuid"`
	Kind          string     `gorm:"type:varchar(50);not null"`
	Title         string     `gorm:"type:text;not null"`
	Body          string     `gorm:"type:text;not null"`
	TotalSent     int        `gorm:"not null;default:0"`
	TotalFailed   int        `gorm:"not null;default:0"`
	SentAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
