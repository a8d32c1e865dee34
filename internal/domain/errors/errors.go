package errors

import (
	"net/http"

	"turnos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Machine-readable error type, lower_snake, stable wire contract
	Message() string   // User-facing message, Spanish
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the machine-readable error type
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Error codes are part of the wire contract: the
// frontend switches on them, so they never change casing or spelling.
var (
	// User and account errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"user_not_found",
		"No se encontró el usuario",
		"",
	)

	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"email_exists",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"user_creation_failed",
		"No pudimos crear tu cuenta. Intenta de nuevo",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"invalid_credentials",
		"Correo electrónico o contraseña incorrectos",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"email_not_verified",
		"Debes verificar tu correo electrónico antes de iniciar sesión",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"refresh_token_invalid",
		"La sesión no es válida, inicia sesión de nuevo",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"refresh_token_expired",
		"La sesión expiró, inicia sesión de nuevo",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusUnauthorized,
		"session_not_found",
		"No hay una sesión activa",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"session_limit_exceeded",
		"Alcanzaste el número máximo de sesiones activas",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"password_hash_failed",
		"Error procesando la contraseña",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"password_strength",
		"La contraseña no cumple los requisitos de seguridad",
		"",
	)

	// Business errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"business_not_found",
		"No se encontró el negocio",
		"",
	)

	ErrBusinessEmailExists = NewBaseError(
		http.StatusConflict,
		"business_email_exists",
		"Ya existe un negocio registrado con este correo electrónico",
		"",
	)

	ErrBusinessCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"business_creation_failed",
		"No pudimos registrar tu negocio. Intenta de nuevo",
		"",
	)

	ErrBusinessLimitReached = NewBaseError(
		http.StatusConflict,
		"business_limit_reached",
		"Ya tienes un negocio registrado con esta cuenta",
		"",
	)

	ErrSettingsConflict = NewBaseError(
		http.StatusConflict,
		"settings_conflict",
		"La configuración cambió mientras editabas. Recarga e intenta de nuevo",
		"",
	)

	ErrInvalidBusinessHours = NewBaseError(
		http.StatusBadRequest,
		"invalid_business_hours",
		"El horario de atención no es válido: la hora de cierre debe ser posterior a la de apertura",
		"",
	)

	ErrInvalidTimezone = NewBaseError(
		http.StatusBadRequest,
		"invalid_timezone",
		"La zona horaria no es válida",
		"",
	)

	// Tenant context errors
	ErrInvalidBusinessID = NewBaseError(
		http.StatusBadRequest,
		"invalid_business_id",
		"El identificador del negocio no es válido",
		"",
	)

	ErrBusinessAccessDenied = NewBaseError(
		http.StatusForbidden,
		"business_access_denied",
		"No tienes permisos sobre este negocio",
		"",
	)

	ErrContextSwitchFailed = NewBaseError(
		http.StatusInternalServerError,
		"context_switch_failed",
		"No pudimos cambiar de negocio. Intenta de nuevo",
		"",
	)

	// Appointment errors
	ErrAppointmentNotFound = NewBaseError(
		http.StatusNotFound,
		"appointment_not_found",
		"No se encontró la cita",
		"",
	)

	ErrAppointmentOverlap = NewBaseError(
		http.StatusConflict,
		"appointment_overlap",
		"Ya hay una cita reservada en ese horario",
		"",
	)

	ErrOutsideBusinessHours = NewBaseError(
		http.StatusBadRequest,
		"outside_business_hours",
		"El negocio no atiende en el horario solicitado",
		"",
	)

	ErrHolidayClosed = NewBaseError(
		http.StatusBadRequest,
		"holiday_closed",
		"La fecha solicitada es un día festivo",
		"",
	)

	ErrBookingWindowExceeded = NewBaseError(
		http.StatusBadRequest,
		"booking_window_exceeded",
		"La fecha está fuera del rango permitido para reservar",
		"",
	)

	ErrAppointmentInPast = NewBaseError(
		http.StatusBadRequest,
		"appointment_in_past",
		"No se pueden reservar citas en el pasado",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"invalid_status_transition",
		"La cita no admite ese cambio de estado",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"device_not_found",
		"No se encontró el dispositivo",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"validation_error",
		"Los datos enviados no son válidos",
		"",
	)

	// Transaction errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"transaction_failed",
		"La operación no pudo completarse",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"server_error",
		"Ocurrió un error inesperado. Intenta de nuevo en unos minutos",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"unauthorized",
		"Debes iniciar sesión para continuar",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"forbidden",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"No se encontró el recurso",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"conflict",
		"Conflicto con el estado actual del recurso",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the machine-readable error type
func (e *DatabaseExecuteError) ErrorCode() string {
	return "database_execute_failed"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Error consultando la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// RegistrationRollbackError reports the outcome of the compensating cleanup
// that runs when business creation fails after the account was already
// created. CleanupSuccessful tells the frontend whether the orphaned account
// was removed or the user has to contact support.
type RegistrationRollbackError struct {
	cause             error
	CleanupPerformed  bool
	CleanupSuccessful bool
}

// NewRegistrationRollbackError builds the saga outcome error.
func NewRegistrationRollbackError(cause error, cleanupSuccessful bool) *RegistrationRollbackError {
	return &RegistrationRollbackError{
		cause:             cause,
		CleanupPerformed:  true,
		CleanupSuccessful: cleanupSuccessful,
	}
}

// Error implements the error interface
func (e *RegistrationRollbackError) Error() string {
	return errors.Wrap(e.cause, "registration rolled back").Error()
}

// Unwrap exposes the original failure for errors.Is / errors.As chains.
func (e *RegistrationRollbackError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code
func (e *RegistrationRollbackError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the machine-readable error type
func (e *RegistrationRollbackError) ErrorCode() string {
	if !e.CleanupSuccessful {
		return "rollback_failed"
	}

	return "business_creation_failed"
}

// Message returns the user-facing error message
func (e *RegistrationRollbackError) Message() string {
	if !e.CleanupSuccessful {
		return "El registro falló y no pudimos revertirlo completamente. Contacta a soporte"
	}

	return "No pudimos registrar tu negocio. Tu cuenta no fue creada, intenta de nuevo"
}

// Details returns detailed error information
func (e *RegistrationRollbackError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}
