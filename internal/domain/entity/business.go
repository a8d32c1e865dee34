// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	"turnos/internal/colombia"
	domainerrors "turnos/internal/domain/errors"
)

// Business is the tenant unit of the system. Every session operates in the
// context of at most one business, and row-level security filters all
// tenant-scoped tables by its id.
type Business struct {
	ID              uuid.UUID        // The Global Unique Identifier for the business.
	OwnerID         uuid.UUID        // The user who registered and administers the business.
	Name            string           // Trading name shown to customers.
	Description     string           // Free-form description for the public booking page.
	Address         Address          // Physical location, Colombian address shape.
	Phone           string           // Contact mobile number, bare ten digits.
	WhatsappNumber  string           // WhatsApp contact, bare ten digits; often the same as Phone.
	Email           string           // Business contact email, unique across businesses.
	Settings        BusinessSettings // Operational settings: timezone, currency, opening hours.
	SettingsVersion int              // Incremented on every settings write; guards concurrent updates.
	LogoKey         string           // Blob storage key of the uploaded logo, empty when none.
	CreatedAt       time.Time        // Timestamp of registration.
	UpdatedAt       time.Time        // Timestamp of the last modification.
}

// Address is a Colombian street address.
type Address struct {
	Street     string // Street line, e.g. "Cra 7 # 45-10".
	City       string // City or municipality name.
	Department string // One of the 32 departments or "Bogotá D.C.".
	PostalCode string // Optional six-digit postal code.
}

// BusinessSettings carries the per-tenant operational configuration.
type BusinessSettings struct {
	Timezone      string         // IANA zone name, defaults to America/Bogota.
	Currency      string         // ISO 4217 code, defaults to COP.
	BusinessHours []BusinessHour // One entry per weekday, Sunday = 0.
}

// BusinessHour describes the opening window of a single weekday.
type BusinessHour struct {
	DayOfWeek int    // 0 (Sunday) through 6 (Saturday).
	OpenTime  string // "HH:MM", 24h clock. Ignored when IsOpen is false.
	CloseTime string // "HH:MM", must be after OpenTime when IsOpen.
	IsOpen    bool   // Whether the business receives customers that day.
}

// DefaultSettings returns the settings a freshly registered business starts
// with: Bogotá time, pesos, and a typical small-commerce week of Monday to
// Friday 9-18 plus Saturday mornings.
func DefaultSettings() BusinessSettings {
	hours := make([]BusinessHour, 7)
	for day := range hours {
		hour := BusinessHour{DayOfWeek: day, OpenTime: "09:00", CloseTime: "18:00"}
		switch time.Weekday(day) {
		case time.Sunday:
			hour.IsOpen = false
		case time.Saturday:
			hour.IsOpen = true
			hour.CloseTime = "13:00"
		default:
			hour.IsOpen = true
		}
		hours[day] = hour
	}

	return BusinessSettings{
		Timezone:      "America/Bogota",
		Currency:      "COP",
		BusinessHours: hours,
	}
}

// HourFor returns the opening window configured for the weekday, or false
// when the settings carry no entry for it.
func (s BusinessSettings) HourFor(day time.Weekday) (BusinessHour, bool) {
	for _, h := range s.BusinessHours {
		if h.DayOfWeek == int(day) {
			return h, true
		}
	}

	return BusinessHour{}, false
}

// Validate checks the structural invariants of the settings: seven distinct
// weekdays, a parseable timezone, and open days whose close time is after
// the open time.
func (s BusinessSettings) Validate() error {
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return domainerrors.ErrInvalidTimezone
		}
	}

	seen := make(map[int]bool, len(s.BusinessHours))
	for _, h := range s.BusinessHours {
		if h.DayOfWeek < 0 || h.DayOfWeek > 6 {
			return domainerrors.ErrInvalidBusinessHours
		}
		if seen[h.DayOfWeek] {
			return domainerrors.ErrInvalidBusinessHours
		}
		seen[h.DayOfWeek] = true

		if !h.IsOpen {
			continue
		}
		openMin, okOpen := parseClock(h.OpenTime)
		closeMin, okClose := parseClock(h.CloseTime)
		if !okOpen || !okClose || openMin >= closeMin {
			return domainerrors.ErrInvalidBusinessHours
		}
	}

	return nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ClockMinutes exposes parseClock for collaborators that need the numeric
// window, such as availability computation.
func (h BusinessHour) ClockMinutes() (openMin, closeMin int, ok bool) {
	openMin, okOpen := parseClock(h.OpenTime)
	closeMin, okClose := parseClock(h.CloseTime)

	return openMin, closeMin, okOpen && okClose
}

// Location resolves the settings timezone, falling back to Bogotá.
func (s BusinessSettings) Location() *time.Location {
	if s.Timezone != "" {
		if loc, err := time.LoadLocation(s.Timezone); err == nil {
			return loc
		}
	}

	return colombia.Bogota()
}
