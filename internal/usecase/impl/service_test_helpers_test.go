package impl

import (
	"io"
	"log/slog"
	"time"

	"turnos/config"
	"turnos/internal/colombia"
	"turnos/internal/infra/metrics"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

func newTestBookingConfig(maxAdvanceDays, slotMinutes int) *config.Config {
	return &config.Config{
		Booking: &config.BookingConfig{
			MaxAdvanceDays: maxAdvanceDays,
			SlotMinutes:    slotMinutes,
		},
	}
}

// newNoopMetrics returns a disabled collector set; recording into it is a
// no-op.
func newNoopMetrics() *metrics.Metrics {
	return metrics.New(&config.Config{})
}

// nextOpenWeekday returns the first future day (at least one full day ahead)
// that falls on the given weekday and is not a Colombian holiday, at the
// given hour in Bogotá. Keeps booking tests independent of when they run.
func nextOpenWeekday(weekday time.Weekday, hour int) time.Time {
	day := time.Now().In(colombia.Bogota()).AddDate(0, 0, 1)
	day = time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, colombia.Bogota())

	for day.Weekday() != weekday || colombia.IsHoliday(day) {
		day = day.AddDate(0, 0, 1)
	}

	return day
}
