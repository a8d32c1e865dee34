package colombia

import "testing"

func TestDepartments(t *testing.T) {
	t.Parallel()

	departments := Departments()
	if len(departments) != 33 {
		t.Fatalf("Departments() returned %d entries, want 33 (32 departments plus Bogotá D.C.)", len(departments))
	}

	for i := 1; i < len(departments); i++ {
		if departments[i] < departments[i-1] {
			t.Fatalf("departments not sorted: %q after %q", departments[i], departments[i-1])
		}
	}
}

func TestIsValidDepartment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain department", input: "Antioquia", valid: true},
		{name: "capital district", input: "Bogotá D.C.", valid: true},
		{name: "multi word", input: "Norte de Santander", valid: true},
		{name: "lowercase rejected", input: "antioquia", valid: false},
		{name: "missing accent rejected", input: "Bogota D.C.", valid: false},
		{name: "unknown", input: "Narnia", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsValidDepartment(tt.input); got != tt.valid {
				t.Fatalf("IsValidDepartment(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestCities(t *testing.T) {
	t.Parallel()

	if cities := CitiesOf("Valle del Cauca"); len(cities) == 0 {
		t.Fatal("expected cities for Valle del Cauca")
	}
	if cities := CitiesOf("Narnia"); cities != nil {
		t.Fatalf("expected nil for unknown department, got %v", cities)
	}

	if !IsValidCity("Valle del Cauca", "Cali") {
		t.Fatal("Cali should belong to Valle del Cauca")
	}
	if IsValidCity("Antioquia", "Cali") {
		t.Fatal("Cali does not belong to Antioquia")
	}
	if IsValidCity("Narnia", "Cali") {
		t.Fatal("unknown department has no cities")
	}
}
