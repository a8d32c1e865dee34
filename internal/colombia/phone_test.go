package colombia

import "testing"

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "bare ten digits", phone: "3101234567", valid: true},
		{name: "spaced national format", phone: "310 123 4567", valid: true},
		{name: "dashed", phone: "310-123-4567", valid: true},
		{name: "with country code", phone: "573101234567", valid: true},
		{name: "with plus country code", phone: "+57 310 123 4567", valid: true},
		{name: "parenthesized", phone: "(310) 123 4567", valid: true},
		{name: "lowest claro prefix", phone: "3011234567", valid: true},
		{name: "highest tigo prefix", phone: "3211234567", valid: true},
		{name: "virtual operator prefix", phone: "3501234567", valid: true},
		{name: "prefix 300 not assigned", phone: "3001234567", valid: false},
		{name: "prefix 306 not assigned", phone: "3061234567", valid: false},
		{name: "prefix 322 not assigned", phone: "3221234567", valid: false},
		{name: "prefix 354 not assigned", phone: "3541234567", valid: false},
		{name: "landline prefix", phone: "6011234567", valid: false},
		{name: "nine digits", phone: "310123456", valid: false},
		{name: "eleven digits", phone: "31012345678", valid: false},
		{name: "foreign country code", phone: "+1 310 123 4567", valid: false},
		{name: "letters", phone: "310abc4567", valid: false},
		{name: "empty", phone: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ValidatePhone(tt.phone); got != tt.valid {
				t.Fatalf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.valid)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phone  string
		want   string
		wantOK bool
	}{
		{name: "already normal", phone: "3101234567", want: "3101234567", wantOK: true},
		{name: "strips country code", phone: "+573101234567", want: "3101234567", wantOK: true},
		{name: "strips separators", phone: "310.123.4567", want: "3101234567", wantOK: true},
		{name: "too short", phone: "12345", want: "", wantOK: false},
		{name: "rejects letters", phone: "three one zero", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizePhone(tt.phone)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("NormalizePhone(%q) = (%q, %v), want (%q, %v)", tt.phone, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "bare digits", phone: "3101234567", want: "+57 310 123 4567"},
		{name: "already formatted", phone: "+57 310 123 4567", want: "+57 310 123 4567"},
		{name: "with country code", phone: "573151112233", want: "+57 315 111 2233"},
		{name: "invalid returned unchanged", phone: "not-a-phone", want: "not-a-phone"},
		{name: "unassigned prefix unchanged", phone: "3001234567", want: "3001234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPhone(tt.phone); got != tt.want {
				t.Fatalf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestE164Phone(t *testing.T) {
	t.Parallel()

	if got := E164Phone("310 123 4567"); got != "+573101234567" {
		t.Fatalf("E164Phone = %q, want +573101234567", got)
	}
	if got := E164Phone("garbage"); got != "garbage" {
		t.Fatalf("E164Phone should return invalid input unchanged, got %q", got)
	}
}
