package colombia

import (
	"sync"
	"time"
)

var (
	bogotaOnce sync.Once
	bogotaLoc  *time.Location
)

// Bogota returns the America/Bogota location. Colombia does not observe
// DST, so the UTC-5 fallback is exact even without tzdata.
func Bogota() *time.Location {
	bogotaOnce.Do(func() {
		loc, err := time.LoadLocation("America/Bogota")
		if err != nil {
			loc = time.FixedZone("-05", -5*60*60)
		}
		bogotaLoc = loc
	})

	return bogotaLoc
}

// Holiday is a single observed public holiday.
type Holiday struct {
	Date time.Time
	Name string
}

// EasterSunday computes Easter for a year using the anonymous Gregorian
// computus. All movable Colombian holidays hang off this date.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, Bogota())
}

// nextMonday applies the Ley Emiliani shift: the holiday is observed on the
// following Monday unless it already falls on one.
func nextMonday(t time.Time) time.Time {
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}

	return t
}

// Holidays returns the 18 observed public holidays of a year, in calendar
// order.
func Holidays(year int) []Holiday {
	date := func(month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, Bogota())
	}
	easter := EasterSunday(year)

	days := []Holiday{
		// Fixed dates observed as they fall.
		{date(time.January, 1), "Año Nuevo"},
		{date(time.May, 1), "Día del Trabajo"},
		{date(time.July, 20), "Día de la Independencia"},
		{date(time.August, 7), "Batalla de Boyacá"},
		{date(time.December, 8), "Inmaculada Concepción"},
		{date(time.December, 25), "Navidad"},

		// Fixed dates moved to the next Monday (Ley Emiliani).
		{nextMonday(date(time.January, 6)), "Reyes Magos"},
		{nextMonday(date(time.March, 19)), "San José"},
		{nextMonday(date(time.June, 29)), "San Pedro y San Pablo"},
		{nextMonday(date(time.August, 15)), "Asunción de la Virgen"},
		{nextMonday(date(time.October, 12)), "Día de la Raza"},
		{nextMonday(date(time.November, 1)), "Todos los Santos"},
		{nextMonday(date(time.November, 11)), "Independencia de Cartagena"},

		// Easter-relative, observed as they fall.
		{easter.AddDate(0, 0, -3), "Jueves Santo"},
		{easter.AddDate(0, 0, -2), "Viernes Santo"},

		// Easter-relative, moved to the next Monday.
		{nextMonday(easter.AddDate(0, 0, 39)), "Ascensión del Señor"},
		{nextMonday(easter.AddDate(0, 0, 60)), "Corpus Christi"},
		{nextMonday(easter.AddDate(0, 0, 68)), "Sagrado Corazón"},
	}

	sorted := make([]Holiday, len(days))
	copy(sorted, days)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Date.Before(sorted[j-1].Date); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	return sorted
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// IsHoliday reports whether t (interpreted in Bogotá time) falls on a
// public holiday.
func IsHoliday(t time.Time) bool {
	local := t.In(Bogota())
	for _, h := range Holidays(local.Year()) {
		if sameDate(h.Date, local) {
			return true
		}
	}

	return false
}

// HolidayName returns the holiday observed on t, or "" when t is an
// ordinary day.
func HolidayName(t time.Time) string {
	local := t.In(Bogota())
	for _, h := range Holidays(local.Year()) {
		if sameDate(h.Date, local) {
			return h.Name
		}
	}

	return ""
}

// IsWorkingDay reports whether t is a Monday-to-Friday non-holiday.
func IsWorkingDay(t time.Time) bool {
	local := t.In(Bogota())
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	return !IsHoliday(local)
}

// NextWorkingDay returns the first working day strictly after t.
func NextWorkingDay(t time.Time) time.Time {
	local := t.In(Bogota())
	for {
		local = local.AddDate(0, 0, 1)
		if IsWorkingDay(local) {
			return local
		}
	}
}

// AddWorkingDays advances t by n working days. n must be non-negative;
// zero returns t unchanged.
func AddWorkingDays(t time.Time, n int) time.Time {
	local := t.In(Bogota())
	for ; n > 0; n-- {
		local = NextWorkingDay(local)
	}

	return local
}
