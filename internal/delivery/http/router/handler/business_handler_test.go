package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/delivery/http/validator"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	mockUC "turnos/internal/mocks/usecase"
	"turnos/internal/usecase"
	"turnos/internal/util"
)

func testBusiness(ownerID uuid.UUID) *entity.Business {
	return &entity.Business{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Barbería El Cafetal",
		Address: entity.Address{
			Street:     "Cra 43A # 1-50",
			City:       "Medellín",
			Department: "Antioquia",
		},
		Phone:           "3109876543",
		WhatsappNumber:  "3109876543",
		Email:           "contacto@cafetal.co",
		Settings:        entity.DefaultSettings(),
		SettingsVersion: 3,
		LogoKey:         "logos/cafetal.png",
		CreatedAt:       time.Now().Add(-24 * time.Hour),
		UpdatedAt:       time.Now(),
	}
}

func TestBusinessHandler_GetProfile(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	business := testBusiness(userID)

	mockBusiness.EXPECT().GetProfile(mock.Anything, userID, business.ID).Return(business, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/business/profile", "")
	authenticate(c, userID, uuid.New(), business.ID)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Barbería El Cafetal")
	assert.Contains(t, body, fmt.Sprintf("/api/business/%s/logo", business.ID))
	assert.Contains(t, body, `"settings_version":3`)
}

// Without an active business the handler returns the domain error for the
// central HTTPErrorHandler to render.
func TestBusinessHandler_GetProfile_NoActiveBusiness(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodGet, "/api/business/profile", "")
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)

	err := h.GetProfile(c)
	require.Error(t, err)

	renderError(c, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"invalid_business_id"`)
}

func TestBusinessHandler_UpdateProfile(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	business := testBusiness(userID)

	mockBusiness.EXPECT().
		UpdateProfile(mock.Anything, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Run(func(_ context.Context, input *usecase.UpdateProfileInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, business.ID, input.BusinessID)
			assert.Equal(t, "Barbería El Cafetal Centro", input.Name)
			assert.Equal(t, "Bogotá D.C.", input.Address.Department)
		}).
		Return(business, nil)

	body := `{
		"name": "Barbería El Cafetal Centro",
		"address": {"street": "Cra 7 # 45-10", "city": "Bogotá", "department": "Bogotá D.C."},
		"phone": "3109876543",
		"whatsapp_number": "3109876543"
	}`

	c, rec := newJSONContext(http.MethodPut, "/api/business/profile", body)
	authenticate(c, userID, uuid.New(), business.ID)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Perfil actualizado")
}

func TestBusinessHandler_UpdateSettings(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	business := testBusiness(userID)

	mockBusiness.EXPECT().
		UpdateSettings(mock.Anything, mock.AnythingOfType("*usecase.UpdateSettingsInput")).
		Run(func(_ context.Context, input *usecase.UpdateSettingsInput) {
			assert.Equal(t, 3, input.FromVersion)
			assert.Equal(t, "America/Bogota", input.Settings.Timezone)
			assert.Len(t, input.Settings.BusinessHours, 7)
		}).
		Return(business, nil)

	payload := UpdateSettingsRequest{
		Settings:    settingsToPayload(entity.DefaultSettings()),
		FromVersion: 3,
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	c, rec := newJSONContext(http.MethodPut, "/api/business/settings", string(raw))
	authenticate(c, userID, uuid.New(), business.ID)

	require.NoError(t, h.UpdateSettings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Configuración actualizada")
}

// A concurrent settings write bumps the version; the stale client gets a
// conflict instead of silently overwriting.
func TestBusinessHandler_UpdateSettings_StaleVersion(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	mockBusiness.EXPECT().
		UpdateSettings(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrSettingsConflict)

	payload := UpdateSettingsRequest{
		Settings:    settingsToPayload(entity.DefaultSettings()),
		FromVersion: 2,
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	c, rec := newJSONContext(http.MethodPut, "/api/business/settings", string(raw))
	authenticate(c, uuid.New(), uuid.New(), uuid.New())

	require.NoError(t, h.UpdateSettings(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"settings_conflict"`)
}

func TestBusinessHandler_Search(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	results := []*entity.Business{testBusiness(uuid.New()), testBusiness(uuid.New())}
	mockBusiness.EXPECT().Search(mock.Anything, "cafetal", 5).Return(results, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/business/search?q=cafetal&limit=5", "")

	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"businesses":[`)
}

func TestBusinessHandler_Search_BadLimit(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodGet, "/api/business/search?q=cafetal&limit=muchos", "")

	require.NoError(t, h.Search(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "El límite debe ser un número")
}

func TestBusinessHandler_Delete(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	businessID := uuid.New()
	mockBusiness.EXPECT().Delete(mock.Anything, userID, businessID).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/business/"+businessID.String(), "")
	authenticate(c, userID, uuid.New(), businessID)
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Negocio eliminado")
}

func TestBusinessHandler_Delete_MalformedID(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodDelete, "/api/business/nope", "")
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"invalid_business_id"`)
}

func TestBusinessHandler_GetBookingQR(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	businessID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	mockBusiness.EXPECT().GetBookingQR(mock.Anything, userID, businessID).Return(png, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/business/qr", "")
	authenticate(c, userID, uuid.New(), businessID)

	require.NoError(t, h.GetBookingQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestBusinessHandler_UploadLogo(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	userID := uuid.New()
	businessID := uuid.New()
	image := []byte{0x89, 'P', 'N', 'G', 0x0d}

	mockBusiness.EXPECT().
		UploadLogo(mock.Anything, mock.AnythingOfType("*usecase.UploadLogoInput")).
		Run(func(_ context.Context, input *usecase.UploadLogoInput) {
			assert.Equal(t, "image/png", input.ContentType)
			assert.Equal(t, image, input.Data)
		}).
		Return(nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/api/business/logo", bytes.NewReader(image))
	req.Header.Set(echo.HeaderContentType, "image/png")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	authenticate(c, userID, uuid.New(), businessID)

	require.NoError(t, h.UploadLogo(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logo actualizado")
}

// The logo is served without a session: the public booking page embeds it.
func TestBusinessHandler_GetLogo_Public(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	businessID := uuid.New()
	mockBusiness.EXPECT().
		GetLogo(mock.Anything, businessID).
		Return(&usecase.LogoOutput{ContentType: "image/png", Data: []byte("logo-bytes")}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/business/"+businessID.String()+"/logo", "")
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())

	require.NoError(t, h.GetLogo(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "logo-bytes", rec.Body.String())
	assert.Equal(t, util.ETag([]byte("logo-bytes")), rec.Header().Get("ETag"))
}

func TestBusinessHandler_GetLogo_NotModified(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	businessID := uuid.New()
	mockBusiness.EXPECT().
		GetLogo(mock.Anything, businessID).
		Return(&usecase.LogoOutput{ContentType: "image/png", Data: []byte("logo-bytes")}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/business/"+businessID.String()+"/logo", "")
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())
	c.Request().Header.Set("If-None-Match", util.ETag([]byte("logo-bytes")))

	require.NoError(t, h.GetLogo(c))

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBusinessHandler_GetLogo_NotFound(t *testing.T) {
	mockBusiness := mockUC.NewMockBusinessUsecase(t)
	h := &BusinessHandler{businessUC: mockBusiness, logger: newDiscardLogger()}

	businessID := uuid.New()
	mockBusiness.EXPECT().GetLogo(mock.Anything, businessID).Return(nil, domainerrors.ErrNotFound)

	c, rec := newJSONContext(http.MethodGet, "/api/business/"+businessID.String()+"/logo", "")
	c.SetParamNames("id")
	c.SetParamValues(businessID.String())

	require.NoError(t, h.GetLogo(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
