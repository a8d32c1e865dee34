// Package qrcode renders the codes businesses print so customers can reach
// their public booking page.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"turnos/config"
	"turnos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// BookingQRData is the payload encoded into booking QR codes. It carries the
// booking URL for camera apps plus the raw business id for the mobile app.
type BookingQRData struct {
	BusinessID string `json:"business_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	correctionLevel := ""
	baseURL := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		correctionLevel = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch correctionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateBookingQR renders the QR code pointing at the public booking page
// of a business. Returns PNG bytes.
func (s *qrcodeService) GenerateBookingQR(businessID uuid.UUID) ([]byte, error) {
	data := BookingQRData{
		BusinessID: businessID.String(),
		Type:       "booking",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/book/%s", s.baseURL, businessID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseBookingQR parses QR payload data and returns the business ID.
func (s *qrcodeService) ParseBookingQR(qrData string) (uuid.UUID, error) {
	var data BookingQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "booking" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	businessID, err := uuid.Parse(data.BusinessID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	return businessID, nil
}
