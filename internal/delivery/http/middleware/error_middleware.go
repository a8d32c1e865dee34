package middleware

import (
	"log/slog"

	"turnos/internal/delivery/http/response"
	"turnos/internal/delivery/http/validator"
	domainerrors "turnos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Handlers
// normally map domain errors themselves through response.HandleAppError;
// everything that slips past them lands here.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields)

		return
	}

	var rollbackErr *domainerrors.RegistrationRollbackError
	if errors.As(err, &rollbackErr) {
		_ = response.ErrorWithInfo(c, rollbackErr.HTTPCode(), rollbackErr.Message(), &response.ErrorInfo{
			Type:              rollbackErr.ErrorCode(),
			CleanupPerformed:  &rollbackErr.CleanupPerformed,
			CleanupSuccessful: &rollbackErr.CleanupSuccessful,
		})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Echo's own errors: unknown routes, oversized bodies, bad binds.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "La solicitud no pudo procesarse"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "http_error", message, "")

		return
	}

	// Everything else is an internal failure: log it with its stack and
	// answer a generic 500 without exposing internals.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}
