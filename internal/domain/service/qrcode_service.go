package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBookingQR renders the QR code customers scan to reach the
	// public booking page of a business. Returns PNG bytes.
	GenerateBookingQR(businessID uuid.UUID) ([]byte, error)

	// ParseBookingQR parses QR payload data and returns the business ID.
	ParseBookingQR(qrData string) (uuid.UUID, error)
}
