package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/delivery/http/middleware"
	domainerrors "turnos/internal/domain/errors"
	mockUC "turnos/internal/mocks/usecase"
	"turnos/internal/usecase"
)

func TestContextHandler_GetContext(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	sessionID := uuid.New()
	business := testBusiness(uuid.New())

	mockTenant.EXPECT().
		GetContext(mock.Anything, sessionID).
		Return(&usecase.CurrentContextOutput{BusinessID: business.ID, Business: business}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/context", "")
	authenticate(c, uuid.New(), sessionID, business.ID)

	require.NoError(t, h.GetContext(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, business.ID.String())
	assert.Contains(t, body, business.Name)
}

func TestContextHandler_GetContext_NoneSet(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	sessionID := uuid.New()
	mockTenant.EXPECT().
		GetContext(mock.Anything, sessionID).
		Return(&usecase.CurrentContextOutput{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/context", "")
	authenticate(c, uuid.New(), sessionID, uuid.Nil)

	require.NoError(t, h.GetContext(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "business_id")
}

func TestContextHandler_SwitchContext_MirrorsCookie(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	sessionID := uuid.New()
	userID := uuid.New()
	businessID := uuid.New()

	mockTenant.EXPECT().SwitchBusiness(mock.Anything, sessionID, userID, businessID).Return(nil)

	body := fmt.Sprintf(`{"business_id": "%s"}`, businessID)
	c, rec := newJSONContext(http.MethodPost, "/api/context/switch", body)
	authenticate(c, userID, sessionID, uuid.Nil)

	require.NoError(t, h.SwitchContext(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), businessID.String())

	mirror := cookieByName(rec, middleware.CookieCurrentBusiness)
	require.NotNil(t, mirror)
	assert.Equal(t, businessID.String(), mirror.Value)
	assert.False(t, mirror.HTTPOnly)
}

// Switching to a business the user does not own leaves the mirror cookie
// untouched.
func TestContextHandler_SwitchContext_ForeignBusiness(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	mockTenant.EXPECT().
		SwitchBusiness(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.ErrBusinessAccessDenied)

	body := fmt.Sprintf(`{"business_id": "%s"}`, uuid.New())
	c, rec := newJSONContext(http.MethodPost, "/api/context/switch", body)
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)

	require.NoError(t, h.SwitchContext(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"business_access_denied"`)
	assert.Nil(t, cookieByName(rec, middleware.CookieCurrentBusiness))
}

func TestContextHandler_SwitchContext_MalformedID(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodPost, "/api/context/switch", `{"business_id": "no-es-uuid"}`)
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)

	require.NoError(t, h.SwitchContext(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Debe ser un identificador válido")
}

func TestContextHandler_SwitchContext_DatabaseWriteFailed(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	mockTenant.EXPECT().
		SwitchBusiness(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.ErrContextSwitchFailed)

	body := fmt.Sprintf(`{"business_id": "%s"}`, uuid.New())
	c, rec := newJSONContext(http.MethodPost, "/api/context/switch", body)
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)

	require.NoError(t, h.SwitchContext(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"context_switch_failed"`)
}

func TestContextHandler_ClearContext(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	sessionID := uuid.New()
	userID := uuid.New()
	mockTenant.EXPECT().ClearBusinessContext(mock.Anything, sessionID, userID).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/context/clear", "")
	authenticate(c, userID, sessionID, uuid.New())

	require.NoError(t, h.ClearContext(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	mirror := cookieByName(rec, middleware.CookieCurrentBusiness)
	require.NotNil(t, mirror)
	assert.Empty(t, mirror.Value)
	assert.Equal(t, -1, mirror.MaxAge)
}

// Unauthenticated context calls fall through to the central error handler.
func TestContextHandler_GetContext_RequiresSession(t *testing.T) {
	mockTenant := mockUC.NewMockTenantUsecase(t)
	h := &ContextHandler{tenantUC: mockTenant, cfg: developConfig(), logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodGet, "/api/context", "")

	err := h.GetContext(c)
	require.Error(t, err)

	renderError(c, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"unauthorized"`)
}
