package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	mockRepo "turnos/internal/mocks/repository"
	"turnos/internal/usecase"
)

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)
	ctx := context.Background()
	userID := uuid.New()

	mockDeviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "fcm-token-123", device.FCMToken)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	device, err := service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		FCMToken: "fcm-token-123",
		DeviceID: "pixel-8-laura",
		Platform: entity.PlatformAndroid,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UnknownPlatform(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)

	device, err := service.RegisterDevice(context.Background(), &usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		FCMToken: "fcm-token-123",
		DeviceID: "blackberry-9900",
		Platform: "blackberry",
	})

	assert.Nil(t, device)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "validation_error", appErr.ErrorCode())
}

func TestDeviceService_ListDevices(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)
	ctx := context.Background()
	userID := uuid.New()

	expected := []*entity.Device{
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformIOS},
		{ID: uuid.New(), UserID: userID, Platform: entity.PlatformWeb},
	}

	mockDeviceRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	devices, err := service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_RemoveDevice_Owner(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	mockDeviceRepo.EXPECT().Delete(ctx, deviceID).Return(nil)

	err := service.RemoveDevice(ctx, userID, deviceID)

	assert.NoError(t, err)
}

// Removing another user's device reads as not found so the endpoint does
// not reveal that the id exists.
func TestDeviceService_RemoveDevice_ForeignDeviceHidden(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)
	ctx := context.Background()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().
		FindByID(ctx, deviceID).
		Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)

	err := service.RemoveDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(mockDeviceRepo)
	ctx := context.Background()
	deviceID := uuid.New()

	mockDeviceRepo.EXPECT().FindByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	err := service.RemoveDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
