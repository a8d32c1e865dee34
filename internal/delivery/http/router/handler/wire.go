// Package handler contains the HTTP route handlers. Entities never cross
// the wire directly: each handler maps them to the snake_case payloads the
// frontend consumes.
package handler

import (
	"fmt"
	"time"

	"turnos/internal/domain/entity"
	"turnos/internal/usecase"

	"github.com/google/uuid"
)

// addressPayload is the Colombian address shape shared by registration and
// profile updates.
type addressPayload struct {
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	Department string `json:"department" validate:"required,co_department"`
	PostalCode string `json:"postal_code" validate:"omitempty,len=6,numeric"`
}

func (p addressPayload) toEntity() entity.Address {
	return entity.Address{
		Street:     p.Street,
		City:       p.City,
		Department: p.Department,
		PostalCode: p.PostalCode,
	}
}

func addressToPayload(a entity.Address) addressPayload {
	return addressPayload{
		Street:     a.Street,
		City:       a.City,
		Department: a.Department,
		PostalCode: a.PostalCode,
	}
}

// businessHourPayload mirrors entity.BusinessHour on the wire.
type businessHourPayload struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsOpen    bool   `json:"is_open"`
}

// settingsPayload mirrors entity.BusinessSettings on the wire.
type settingsPayload struct {
	Timezone      string                `json:"timezone" validate:"required"`
	Currency      string                `json:"currency" validate:"required,len=3"`
	BusinessHours []businessHourPayload `json:"business_hours" validate:"required,len=7,dive"`
}

func (p settingsPayload) toEntity() entity.BusinessSettings {
	hours := make([]entity.BusinessHour, 0, len(p.BusinessHours))
	for _, hour := range p.BusinessHours {
		hours = append(hours, entity.BusinessHour{
			DayOfWeek: hour.DayOfWeek,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
			IsOpen:    hour.IsOpen,
		})
	}

	return entity.BusinessSettings{
		Timezone:      p.Timezone,
		Currency:      p.Currency,
		BusinessHours: hours,
	}
}

func settingsToPayload(s entity.BusinessSettings) settingsPayload {
	hours := make([]businessHourPayload, 0, len(s.BusinessHours))
	for _, hour := range s.BusinessHours {
		hours = append(hours, businessHourPayload{
			DayOfWeek: hour.DayOfWeek,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
			IsOpen:    hour.IsOpen,
		})
	}

	return settingsPayload{
		Timezone:      s.Timezone,
		Currency:      s.Currency,
		BusinessHours: hours,
	}
}

// businessResponse is the public JSON shape of a business.
type businessResponse struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Address         addressPayload  `json:"address"`
	Phone           string          `json:"phone"`
	WhatsappNumber  string          `json:"whatsapp_number"`
	Email           string          `json:"email"`
	Settings        settingsPayload `json:"settings"`
	SettingsVersion int             `json:"settings_version"`
	LogoURL         string          `json:"logo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toBusinessResponse(business *entity.Business) businessResponse {
	logoURL := ""
	if business.LogoKey != "" {
		logoURL = fmt.Sprintf("/api/business/%s/logo", business.ID)
	}

	return businessResponse{
		ID:              business.ID,
		OwnerID:         business.OwnerID,
		Name:            business.Name,
		Description:     business.Description,
		Address:         addressToPayload(business.Address),
		Phone:           business.Phone,
		WhatsappNumber:  business.WhatsappNumber,
		Email:           business.Email,
		Settings:        settingsToPayload(business.Settings),
		SettingsVersion: business.SettingsVersion,
		LogoURL:         logoURL,
		CreatedAt:       business.CreatedAt,
		UpdatedAt:       business.UpdatedAt,
	}
}

// userResponse is the JSON shape of the authenticated user's profile.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

// customerPayload is the booking contact on the wire.
type customerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// appointmentResponse is the JSON shape of one appointment.
type appointmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	BusinessID   uuid.UUID       `json:"business_id"`
	Customer     customerPayload `json:"customer"`
	StartsAt     time.Time       `json:"starts_at"`
	EndsAt       time.Time       `json:"ends_at"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	CancelReason string          `json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toAppointmentResponse(appointment *entity.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         appointment.ID,
		BusinessID: appointment.BusinessID,
		Customer: customerPayload{
			Name:  appointment.Customer.Name,
			Email: appointment.Customer.Email,
			Phone: appointment.Customer.Phone,
		},
		StartsAt:     appointment.StartsAt,
		EndsAt:       appointment.EndsAt,
		Status:       appointment.Status.String(),
		Notes:        appointment.Notes,
		CancelReason: appointment.CancelReason,
		CancelledAt:  appointment.CancelledAt,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}
}

func toAppointmentResponses(appointments []*entity.Appointment) []appointmentResponse {
	responses := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		responses = append(responses, toAppointmentResponse(appointment))
	}

	return responses
}

// timeSlotPayload is one free window on the availability grid.
type timeSlotPayload struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// availabilityResponse is the JSON shape of one day's availability.
type availabilityResponse struct {
	Date   string            `json:"date"`
	Open   bool              `json:"open"`
	Reason string            `json:"reason,omitempty"`
	Slots  []timeSlotPayload `json:"slots"`
}

func toAvailabilityResponse(output *usecase.AvailabilityOutput) availabilityResponse {
	slots := make([]timeSlotPayload, 0, len(output.Slots))
	for _, slot := range output.Slots {
		slots = append(slots, timeSlotPayload{StartsAt: slot.StartsAt, EndsAt: slot.EndsAt})
	}

	return availabilityResponse{
		Date:   output.Date.Format("2006-01-02"),
		Open:   output.Open,
		Reason: output.Reason,
		Slots:  slots,
	}
}

// deviceResponse is the JSON shape of one registered device.
type deviceResponse struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"`
	FCMToken  string    `json:"fcm_token"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toDeviceResponse(device *entity.Device) deviceResponse {
	return deviceResponse{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform.String(),
		FCMToken:  device.FCMToken,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
	}
}
