// Package validator adapts go-playground/validator to echo's Validator
// interface and adds the Colombian rules request structs rely on:
// co_phone for mobile numbers and co_department for address departments.
// Failed validations surface per-field Spanish messages.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"turnos/internal/colombia"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs. It satisfies
// echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds the validator with the custom rules registered. Field names in
// error messages use the json tag, so they match what the client sent.
func New() *RequestValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Rules never see empty values for optional fields; combine them with
	// omitempty in the struct tag.
	_ = validate.RegisterValidation("co_phone", func(fl playground.FieldLevel) bool {
		return colombia.ValidatePhone(fl.Field().String())
	})
	_ = validate.RegisterValidation("co_department", func(fl playground.FieldLevel) bool {
		return colombia.IsValidDepartment(fl.Field().String())
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the struct and converts rule failures into a
// *ValidationError with one Spanish message per offending field.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return newValidationError(fieldErrs)
	}

	return errors.WithStack(err)
}

// ValidationError carries the per-field messages of one failed validation.
// The error middleware renders it as a 400 with the fields map on the wire.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}

	return fmt.Sprintf("validation failed on: %s", strings.Join(names, ", "))
}

func newValidationError(fieldErrs playground.ValidationErrors) *ValidationError {
	fields := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields[fieldErr.Field()] = spanishMessage(fieldErr)
	}

	return &ValidationError{Fields: fields}
}

func spanishMessage(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Debe ser un correo electrónico válido"
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", fieldErr.Param())
	case "max":
		return fmt.Sprintf("No puede tener más de %s caracteres", fieldErr.Param())
	case "co_phone":
		return "Debe ser un número de celular colombiano válido"
	case "co_department":
		return "Debe ser un departamento de Colombia válido"
	case "uuid":
		return "Debe ser un identificador válido"
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", fieldErr.Param())
	case "gtfield":
		return fmt.Sprintf("Debe ser posterior a %s", fieldErr.Param())
	case "len":
		return fmt.Sprintf("Debe tener exactamente %s caracteres", fieldErr.Param())
	case "numeric":
		return "Debe contener solo dígitos"
	default:
		return "El valor no es válido"
	}
}
