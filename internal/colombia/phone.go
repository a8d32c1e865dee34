package colombia

import (
	"strings"
)

// Colombian mobile numbers are ten digits. The first three digits identify
// the carrier range; only the ranges currently assigned by the CRC are
// accepted.
var mobilePrefixes = map[string]struct{}{
	"301": {}, "302": {}, "303": {}, "304": {}, "305": {},
	"310": {}, "311": {}, "312": {}, "313": {}, "314": {},
	"315": {}, "316": {}, "317": {}, "318": {}, "319": {},
	"320": {}, "321": {},
	"350": {}, "351": {}, "352": {}, "353": {},
}

// NormalizePhone strips formatting characters and the country code from a
// Colombian mobile number and returns the bare ten digits. The second return
// value reports whether the input could be reduced to a plausible local
// number; it does not check the carrier prefix.
func NormalizePhone(phone string) (string, bool) {
	var digits strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.' || r == '+':
			// separators and the plus sign are ignored
		default:
			return "", false
		}
	}

	number := digits.String()
	if strings.HasPrefix(number, "57") && len(number) == 12 {
		number = number[2:]
	}
	if len(number) != 10 {
		return "", false
	}

	return number, true
}

// ValidatePhone reports whether the input is a valid Colombian mobile
// number in any accepted format (local ten digits, with or without the +57
// country code, with or without separators).
func ValidatePhone(phone string) bool {
	number, ok := NormalizePhone(phone)
	if !ok {
		return false
	}

	_, ok = mobilePrefixes[number[:3]]

	return ok
}

// FormatPhone renders a valid mobile number in the national display format
// "+57 3XX XXX XXXX". Invalid input is returned unchanged so callers can
// surface what the user typed.
func FormatPhone(phone string) string {
	number, ok := NormalizePhone(phone)
	if !ok || !ValidatePhone(number) {
		return phone
	}

	return "+57 " + number[:3] + " " + number[3:6] + " " + number[6:]
}

// E164Phone renders a valid mobile number as +573XXXXXXXXX, the form
// WhatsApp and SMS gateways expect. Invalid input is returned unchanged.
func E164Phone(phone string) string {
	number, ok := NormalizePhone(phone)
	if !ok || !ValidatePhone(number) {
		return phone
	}

	return "+57" + number
}
