package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnos/internal/delivery/http/validator"
	domainerrors "turnos/internal/domain/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "abc"}, "Creado"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "Creado", resp.Message)
	assert.Nil(t, resp.Error)
}

func TestError_KeepsDetailsOnClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusBadRequest, "invalid_business_id",
		"El identificador del negocio no es válido", "no hay un negocio activo en la sesión"))

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_business_id", resp.Error.Type)
	assert.Equal(t, "no hay un negocio activo en la sesión", resp.Error.Details)
}

// Internals never leak through 5xx and authentication failures.
func TestError_StripsDetailsOnSensitiveStatuses(t *testing.T) {
	for _, status := range []int{
		http.StatusInternalServerError,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusBadGateway,
	} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "server_error", "Ocurrió un error", "pq: relation does not exist"))

		resp := decode(t, rec)
		require.NotNil(t, resp.Error, status)
		assert.Empty(t, resp.Error.Details, status)
	}
}

// The rollback cleanup flags survive the 500 stripping: the frontend needs
// them to tell the user whether to retry or contact support.
func TestErrorWithInfo_CleanupFlagsSurvive(t *testing.T) {
	c, rec := newContext()

	performed := true
	successful := false
	require.NoError(t, ErrorWithInfo(c, http.StatusInternalServerError, "El registro falló", &ErrorInfo{
		Type:              "rollback_failed",
		Details:           "identity delete timed out",
		CleanupPerformed:  &performed,
		CleanupSuccessful: &successful,
	}))

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Empty(t, resp.Error.Details)
	require.NotNil(t, resp.Error.CleanupPerformed)
	assert.True(t, *resp.Error.CleanupPerformed)
	require.NotNil(t, resp.Error.CleanupSuccessful)
	assert.False(t, *resp.Error.CleanupSuccessful)
}

func TestValidationFailed_FieldsOnWire(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ValidationFailed(c, map[string]string{
		"email": "Debe ser un correo electrónico válido",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Equal(t, "Debe ser un correo electrónico válido", resp.Error.Fields["email"])
}

func TestHandleAppError_MapsKnownKinds(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, &validator.ValidationError{Fields: map[string]string{"phone": "inválido"}})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("app error", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, domainerrors.ErrAppointmentOverlap)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"type":"appointment_overlap"`)
	})

	t.Run("rollback error", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, domainerrors.NewRegistrationRollbackError(errors.New("boom"), true))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cleanup_performed":true`)
	})
}

// Unknown errors pass through unwritten so the central HTTPErrorHandler can
// log them with their stack.
func TestHandleAppError_UnknownPassesThrough(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("pq: deadlock detected"))

	require.Error(t, err)
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}
