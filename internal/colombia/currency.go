package colombia

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an integer peso amount with es-CO digit grouping,
// e.g. 1500000 -> "$ 1.500.000". Pesos have no cents in everyday use, so
// amounts are whole numbers.
func FormatCOP(amount int64) string {
	return "$ " + copPrinter.Sprintf("%d", amount)
}

// FormatCOPShort renders an amount in compact form with the K/M/B suffixes
// used across the dashboard: "$ 2,5 M" for 2.500.000. Amounts under one
// thousand come back unabbreviated.
func FormatCOPShort(amount int64) string {
	abs := amount
	sign := ""
	if abs < 0 {
		abs = -abs
		sign = "-"
	}

	var scaled float64
	var suffix string
	switch {
	case abs >= 1_000_000_000:
		scaled, suffix = float64(abs)/1_000_000_000, "B"
	case abs >= 1_000_000:
		scaled, suffix = float64(abs)/1_000_000, "M"
	case abs >= 1_000:
		scaled, suffix = float64(abs)/1_000, "K"
	default:
		return "$ " + sign + strconv.FormatInt(abs, 10)
	}

	value := strconv.FormatFloat(scaled, 'f', 1, 64)
	value = strings.TrimSuffix(value, ".0")
	value = strings.ReplaceAll(value, ".", ",")

	return "$ " + sign + value + " " + suffix
}

// FormatCOPInput groups a string of digits as the user types,
// "1500000" -> "1.500.000". Non-digit characters are dropped first.
func FormatCOPInput(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := strings.TrimLeft(digits.String(), "0")
	if s == "" {
		if digits.Len() > 0 {
			return "0"
		}

		return ""
	}

	var out strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		out.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if out.Len() > 0 {
			out.WriteByte('.')
		}
		out.WriteString(s[i : i+3])
	}

	return out.String()
}

// ParseCOP parses a formatted peso amount back to its integer value. It is
// the inverse of FormatCOP for whole amounts; abbreviated values produced
// by FormatCOPShort are rejected because they lose precision.
func ParseCOP(s string) (int64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSpace(cleaned)

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")

	if cleaned == "" {
		return 0, errors.New("empty amount")
	}

	var digits strings.Builder
	for _, r := range cleaned {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '.' || r == ' ':
			// grouping separators
		default:
			return 0, errors.Errorf("unexpected character %q in amount", r)
		}
	}

	amount, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse amount")
	}
	if negative {
		amount = -amount
	}

	return amount, nil
}
