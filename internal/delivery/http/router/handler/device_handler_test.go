package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	mockUC "turnos/internal/mocks/usecase"
	"turnos/internal/usecase"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	userID := uuid.New()
	registered := &entity.Device{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  "fcm-token-123",
		DeviceID:  "pixel-8-laura",
		Platform:  entity.PlatformAndroid,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	mockDevice.EXPECT().
		RegisterDevice(mock.Anything, mock.AnythingOfType("*usecase.RegisterDeviceInput")).
		Run(func(_ context.Context, input *usecase.RegisterDeviceInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "fcm-token-123", input.FCMToken)
			assert.Equal(t, entity.PlatformAndroid, input.Platform)
		}).
		Return(registered, nil)

	body := `{"fcm_token": "fcm-token-123", "device_id": "pixel-8-laura", "platform": "android"}`
	c, rec := newJSONContext(http.MethodPost, "/api/devices", body)
	authenticate(c, userID, uuid.New(), uuid.Nil)

	require.NoError(t, h.RegisterDevice(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "Dispositivo registrado")
	assert.Contains(t, responseBody, `"is_active":true`)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	body := `{"fcm_token": "fcm-token-123", "device_id": "bb-9900", "platform": "blackberry"}`
	c, rec := newJSONContext(http.MethodPost, "/api/devices", body)
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)

	require.NoError(t, h.RegisterDevice(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Debe ser uno de: ios android web")
}

func TestDeviceHandler_RegisterDevice_RequiresAuth(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	body := `{"fcm_token": "fcm-token-123", "device_id": "pixel-8", "platform": "android"}`
	c, rec := newJSONContext(http.MethodPost, "/api/devices", body)

	err := h.RegisterDevice(c)
	require.Error(t, err)

	renderError(c, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeviceHandler_ListDevices(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, DeviceID: "pixel-8-laura", Platform: entity.PlatformAndroid, IsActive: true},
		{ID: uuid.New(), UserID: userID, DeviceID: "iphone-15-laura", Platform: entity.PlatformIOS, IsActive: false},
	}
	mockDevice.EXPECT().ListDevices(mock.Anything, userID).Return(devices, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/devices", "")
	authenticate(c, userID, uuid.New(), uuid.Nil)

	require.NoError(t, h.ListDevices(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "pixel-8-laura")
	assert.Contains(t, body, "iphone-15-laura")
}

func TestDeviceHandler_RemoveDevice(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	userID := uuid.New()
	deviceID := uuid.New()
	mockDevice.EXPECT().RemoveDevice(mock.Anything, userID, deviceID).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/devices/"+deviceID.String(), "")
	authenticate(c, userID, uuid.New(), uuid.Nil)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.RemoveDevice(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dispositivo eliminado")
}

// A malformed id reads as not found, same as a foreign device.
func TestDeviceHandler_RemoveDevice_MalformedID(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	c, rec := newJSONContext(http.MethodDelete, "/api/devices/xyz", "")
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)
	c.SetParamNames("id")
	c.SetParamValues("xyz")

	require.NoError(t, h.RemoveDevice(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"device_not_found"`)
}

func TestDeviceHandler_RemoveDevice_NotFound(t *testing.T) {
	mockDevice := mockUC.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: mockDevice, logger: newDiscardLogger()}

	deviceID := uuid.New()
	mockDevice.EXPECT().
		RemoveDevice(mock.Anything, mock.Anything, deviceID).
		Return(domainerrors.ErrDeviceNotFound)

	c, rec := newJSONContext(http.MethodDelete, "/api/devices/"+deviceID.String(), "")
	authenticate(c, uuid.New(), uuid.New(), uuid.Nil)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())

	require.NoError(t, h.RemoveDevice(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
