// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform identifies the client platform of a registered device.
type DevicePlatform string

const (
	// PlatformIOS indicates an Apple device.
	PlatformIOS DevicePlatform = "ios"
	// PlatformAndroid indicates an Android device.
	PlatformAndroid DevicePlatform = "android"
	// PlatformWeb indicates a browser with web push enabled.
	PlatformWeb DevicePlatform = "web"
)

// String returns the string representation of the platform.
func (p DevicePlatform) String() string {
	return string(p)
}

// IsValid checks if the platform is a valid value.
func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// Device is an owner's client registered for push notifications. New
// bookings and cancellations are pushed to every active device of the
// business owner.
type Device struct {
	ID        uuid.UUID      // The unique ID for this device record.
	UserID    uuid.UUID      // The owner this device belongs to.
	FCMToken  string         // Firebase Cloud Messaging registration token.
	DeviceID  string         // Client-provided stable identifier, used for upserts.
	Platform  DevicePlatform // ios, android or web.
	IsActive  bool           // Inactive devices are skipped when pushing.
	CreatedAt time.Time      // When this device registered.
	UpdatedAt time.Time      // Timestamp of the last modification.
}
