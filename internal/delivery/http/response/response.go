// Package response renders the wire envelope every endpoint answers with.
// The shape is part of the frontend contract: {success, code, message,
// data} on success, {success, code, message, error:{type, details,
// fields}} on failure. Error types are the lower_snake codes of the domain
// error taxonomy.
package response

import (
	"net/http"

	"turnos/internal/delivery/http/validator"
	domainerrors "turnos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response is the envelope common to every endpoint.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo describes one failure. Fields is only present on validation
// errors; the cleanup flags only on registration rollback outcomes.
type ErrorInfo struct {
	Type              string            `json:"type"`
	Details           string            `json:"details,omitempty"`
	Fields            map[string]string `json:"fields,omitempty"`
	CleanupPerformed  *bool             `json:"cleanup_performed,omitempty"`
	CleanupSuccessful *bool             `json:"cleanup_successful,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errType, message, details string) error {
	return ErrorWithInfo(c, statusCode, message, &ErrorInfo{
		Type:    errType,
		Details: details,
	})
}

// ErrorWithInfo returns an error response with a pre-built ErrorInfo.
// Details are stripped from 5xx and authentication errors so internals
// never leak; the rollback cleanup flags survive because the frontend
// needs them to tell the user whether to retry or contact support.
func ErrorWithInfo(c echo.Context, statusCode int, message string, info *ErrorInfo) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		info.Details = ""
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error:   info,
	})
}

// ValidationFailed returns a 400 with per-field Spanish messages.
func ValidationFailed(c echo.Context, fields map[string]string) error {
	return ErrorWithInfo(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.Message(), &ErrorInfo{
		Type:   domainerrors.ErrValidationFailed.ErrorCode(),
		Fields: fields,
	})
}

// BindingError returns a 400 for payloads that did not bind at all.
func BindingError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), details)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errType, message string) error {
	return Error(c, http.StatusBadRequest, errType, message, "")
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errType, message string) error {
	return Error(c, http.StatusUnauthorized, errType, message, "")
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errType, message string) error {
	return Error(c, http.StatusForbidden, errType, message, "")
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errType, message string) error {
	return Error(c, http.StatusNotFound, errType, message, "")
}

// Conflict returns a 409 error
func Conflict(c echo.Context, errType, message string) error {
	return Error(c, http.StatusConflict, errType, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errType, message string) error {
	return Error(c, http.StatusInternalServerError, errType, message, "")
}

// HandleAppError converts known error kinds into their wire shape. Unknown
// errors pass through with a stack so the central HTTPErrorHandler can log
// them and answer a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationFailed(c, validationErr.Fields)
	}

	var rollbackErr *domainerrors.RegistrationRollbackError
	if errors.As(err, &rollbackErr) {
		return ErrorWithInfo(c, rollbackErr.HTTPCode(), rollbackErr.Message(), &ErrorInfo{
			Type:              rollbackErr.ErrorCode(),
			CleanupPerformed:  &rollbackErr.CleanupPerformed,
			CleanupSuccessful: &rollbackErr.CleanupSuccessful,
		})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
