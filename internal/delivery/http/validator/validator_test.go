package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,co_phone"`
	Whatsapp   string `json:"whatsapp_number" validate:"omitempty,co_phone"`
	Department string `json:"department" validate:"required,co_department"`
	Password   string `json:"password" validate:"omitempty,min=8"`
}

func validForm() bookingForm {
	return bookingForm{
		Email:      "laura@example.com",
		Phone:      "3101234567",
		Department: "Antioquia",
	}
}

func TestRequestValidator_ValidInput(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validForm()))
}

func TestRequestValidator_ColombianPhone(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"bare ten digits", "3101234567", true},
		{"with country code", "+57 310 123 4567", true},
		{"landline prefix rejected", "6011234567", false},
		{"too short", "310123", false},
		{"letters rejected", "tres-diez", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Phone = tt.phone

			err := v.Validate(form)
			if tt.valid {
				assert.NoError(t, err)

				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "Debe ser un número de celular colombiano válido", validationErr.Fields["phone"])
		})
	}
}

func TestRequestValidator_ColombianDepartment(t *testing.T) {
	v := New()

	form := validForm()
	form.Department = "Atlantis"

	err := v.Validate(form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Debe ser un departamento de Colombia válido", validationErr.Fields["department"])

	form.Department = "Bogotá D.C."
	assert.NoError(t, v.Validate(form))
}

// Field names in the error map come from the json tag, so they match what
// the client sent.
func TestRequestValidator_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	form := validForm()
	form.Whatsapp = "999"

	err := v.Validate(form)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "whatsapp_number")
	assert.NotContains(t, validationErr.Fields, "Whatsapp")
}

func TestRequestValidator_OmitemptySkipsBlank(t *testing.T) {
	v := New()

	form := validForm()
	form.Whatsapp = ""
	form.Password = ""

	assert.NoError(t, v.Validate(form))
}

func TestRequestValidator_SpanishMessages(t *testing.T) {
	v := New()

	err := v.Validate(bookingForm{Password: "corta"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Este campo es obligatorio", validationErr.Fields["email"])
	assert.Equal(t, "Debe tener al menos 8 caracteres", validationErr.Fields["password"])
}

func TestRequestValidator_CollectsEveryField(t *testing.T) {
	v := New()

	err := v.Validate(bookingForm{
		Email:      "no-es-correo",
		Phone:      "12345",
		Department: "Atlantis",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 3)
	assert.Equal(t, "Debe ser un correo electrónico válido", validationErr.Fields["email"])
	assert.Contains(t, validationErr.Error(), "validation failed on")
}
