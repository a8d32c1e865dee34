package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table, the tenant root of the
// schema. Row-level security policies on the tenant-scoped tables key off
// this table's id. Settings are stored as a JSONB document so the shape can
// evolve without migrations; settings_version backs the optimistic lock on
// settings writes.
type BusinessModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Street          string    `gorm:"type:varchar(255);not null"`
	City            string    `gorm:"type:varchar(100);not null"`
	Department      string    `gorm:"type:varchar(100);not null"`
	PostalCode      string    `gorm:"type:varchar(10)"`
	Phone           string    `gorm:"type:varchar(20);not null"`
	WhatsappNumber  string    `gorm:"type:varchar(20)"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Settings        []byte    `gorm:"type:jsonb;not null"`
	SettingsVersion int       `gorm:"not null;default:1"`
	LogoKey         string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
