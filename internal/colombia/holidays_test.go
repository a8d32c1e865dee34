package colombia

import (
	"testing"
	"time"
)

func bogotaDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, Bogota())
}

func TestEasterSunday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2027, time.March, 28},
		{2030, time.April, 21},
	}

	for _, tt := range tests {
		got := EasterSunday(tt.year)
		if got.Month() != tt.month || got.Day() != tt.day {
			t.Fatalf("EasterSunday(%d) = %s, want %s %d", tt.year, got.Format("2006-01-02"), tt.month, tt.day)
		}
	}
}

func TestHolidays2025(t *testing.T) {
	t.Parallel()

	holidays := Holidays(2025)
	if len(holidays) != 18 {
		t.Fatalf("Holidays(2025) returned %d entries, want 18", len(holidays))
	}

	byName := make(map[string]time.Time, len(holidays))
	for _, h := range holidays {
		byName[h.Name] = h.Date
	}

	tests := []struct {
		name  string
		month time.Month
		day   int
	}{
		// Jan 6 2025 already falls on Monday, no shift.
		{"Reyes Magos", time.January, 6},
		// Mar 19 2025 is a Wednesday, observed the following Monday.
		{"San José", time.March, 24},
		{"Jueves Santo", time.April, 17},
		{"Viernes Santo", time.April, 18},
		{"Ascensión del Señor", time.June, 2},
		{"Corpus Christi", time.June, 23},
		{"Sagrado Corazón", time.June, 30},
		// Jul 20 2025 is a Sunday but independence day is never moved.
		{"Día de la Independencia", time.July, 20},
		// Oct 12 2025 is a Sunday, observed the following Monday.
		{"Día de la Raza", time.October, 13},
		{"Navidad", time.December, 25},
	}

	for _, tt := range tests {
		date, ok := byName[tt.name]
		if !ok {
			t.Fatalf("holiday %q missing from 2025 calendar", tt.name)
		}
		if date.Month() != tt.month || date.Day() != tt.day {
			t.Fatalf("%s 2025 = %s, want %s %d", tt.name, date.Format("2006-01-02"), tt.month, tt.day)
		}
	}

	for i := 1; i < len(holidays); i++ {
		if holidays[i].Date.Before(holidays[i-1].Date) {
			t.Fatalf("holidays out of order: %s before %s", holidays[i].Name, holidays[i-1].Name)
		}
	}
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		date    time.Time
		holiday bool
	}{
		{name: "christmas", date: bogotaDate(2025, time.December, 25), holiday: true},
		{name: "shifted raza monday", date: bogotaDate(2025, time.October, 13), holiday: true},
		{name: "original raza sunday not observed", date: bogotaDate(2025, time.October, 12), holiday: false},
		{name: "ordinary tuesday", date: bogotaDate(2025, time.August, 26), holiday: false},
		{name: "maundy thursday 2026", date: bogotaDate(2026, time.April, 2), holiday: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsHoliday(tt.date); got != tt.holiday {
				t.Fatalf("IsHoliday(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.holiday)
			}
		})
	}
}

func TestHolidayName(t *testing.T) {
	t.Parallel()

	if got := HolidayName(bogotaDate(2025, time.December, 25)); got != "Navidad" {
		t.Fatalf("HolidayName = %q, want Navidad", got)
	}
	if got := HolidayName(bogotaDate(2025, time.August, 26)); got != "" {
		t.Fatalf("HolidayName on ordinary day = %q, want empty", got)
	}
}

func TestWorkingDays(t *testing.T) {
	t.Parallel()

	// Friday before a plain weekend.
	friday := bogotaDate(2025, time.August, 22)
	if !IsWorkingDay(friday) {
		t.Fatalf("expected %s to be a working day", friday.Format("2006-01-02"))
	}
	if IsWorkingDay(bogotaDate(2025, time.August, 23)) {
		t.Fatal("saturday should not be a working day")
	}

	next := NextWorkingDay(friday)
	if next.Day() != 25 || next.Month() != time.August {
		t.Fatalf("NextWorkingDay(friday) = %s, want 2025-08-25", next.Format("2006-01-02"))
	}

	// Christmas 2025 falls on Thursday; the next working day after
	// Wednesday the 24th is Friday the 26th.
	christmasEve := bogotaDate(2025, time.December, 24)
	if got := NextWorkingDay(christmasEve); got.Day() != 26 {
		t.Fatalf("NextWorkingDay(dec 24) = %s, want 2025-12-26", got.Format("2006-01-02"))
	}

	// Two working days from Christmas Eve skip the holiday and the weekend.
	if got := AddWorkingDays(christmasEve, 2); got.Day() != 29 {
		t.Fatalf("AddWorkingDays(dec 24, 2) = %s, want 2025-12-29", got.Format("2006-01-02"))
	}

	if got := AddWorkingDays(friday, 0); !got.Equal(friday) {
		t.Fatalf("AddWorkingDays(t, 0) should return t, got %s", got.Format("2006-01-02"))
	}
}
