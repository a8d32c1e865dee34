package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"turnos/internal/delivery/http/validator"
	domainerrors "turnos/internal/domain/errors"
)

func errorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/business/register", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(&validator.ValidationError{Fields: map[string]string{
		"email": "Debe ser un correo electrónico válido",
	}}, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"type":"validation_error"`)
	assert.Contains(t, body, `"email":"Debe ser un correo electrónico válido"`)
}

func TestErrorMiddleware_RollbackError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(domainerrors.NewRegistrationRollbackError(errors.New("insert failed"), true), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"cleanup_performed":true`)
	assert.Contains(t, body, `"cleanup_successful":true`)
	assert.NotContains(t, body, "insert failed")
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(domainerrors.ErrBusinessNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"business_not_found"`)
}

// Wrapped domain errors still map through errors.As.
func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrSessionNotFound, "refreshing session"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"session_not_found"`)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"type":"http_error"`)
	assert.Contains(t, body, "Not Found")
}

// Unknown failures answer a generic 500 without exposing internals.
func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	m.HandleHTTPError(errors.New("pq: deadlock detected"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"type":"server_error"`)
	assert.Contains(t, body, "Ocurrió un error inesperado")
	assert.NotContains(t, body, "deadlock")
}

// Once a handler wrote a response the error handler must not write a second
// one.
func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := errorContext()

	assert.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "server_error")
}
