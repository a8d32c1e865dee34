package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/colombia"
	"turnos/internal/domain/constants"
	"turnos/internal/domain/entity"
	"turnos/internal/domain/service"
	mockRepo "turnos/internal/mocks/repository"
	mockSvc "turnos/internal/mocks/service"
)

type pushHandlerMocks struct {
	notificationSvc  *mockSvc.MockNotificationService
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func newTestPushHandler(t *testing.T) (*PushHandler, pushHandlerMocks) {
	mocks := pushHandlerMocks{
		notificationSvc:  mockSvc.NewMockNotificationService(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
	}

	h := &PushHandler{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc:  mocks.notificationSvc,
		deviceRepo:       mocks.deviceRepo,
		notificationRepo: mocks.notificationRepo,
	}

	return h, mocks
}

// pushContext wraps a payload in the Pub/Sub push envelope the subscription
// delivers.
func pushContext(t *testing.T, attributes map[string]string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Subscription = "projects/turnos/subscriptions/worker-push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testAppointmentEvent(kind string) *service.AppointmentEvent {
	starts := time.Date(2026, time.May, 12, 10, 0, 0, 0, colombia.Bogota())

	return &service.AppointmentEvent{
		RequestID:     uuid.New().String(),
		Kind:          kind,
		AppointmentID: uuid.New().String(),
		BusinessID:    uuid.New().String(),
		OwnerID:       uuid.New().String(),
		CustomerName:  "Carlos Pérez",
		StartsAt:      starts,
		EndsAt:        starts.Add(30 * time.Minute),
	}
}

func activeDevices(count int) []*entity.Device {
	devices := make([]*entity.Device, 0, count)
	for i := 0; i < count; i++ {
		devices = append(devices, &entity.Device{
			ID:       uuid.New(),
			UserID:   uuid.New(),
			FCMToken: uuid.New().String(),
			Platform: entity.PlatformAndroid,
			IsActive: true,
		})
	}

	return devices
}

func TestPushHandler_AppointmentCreated_FansOut(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	ownerID := uuid.MustParse(event.OwnerID)
	businessID := uuid.MustParse(event.BusinessID)
	devices := activeDevices(2)

	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, ownerID).Return(devices, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{devices[0].FCMToken, devices[1].FCMToken},
			"Nueva cita reservada", mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _ []string, _, body string, data map[string]string) {
			assert.Contains(t, body, "Carlos Pérez reservó una cita para el 12 de mayo a las 10:00")
			assert.Equal(t, "created", data["kind"])
			assert.Equal(t, event.AppointmentID, data["appointment_id"])
			assert.Equal(t, event.BusinessID, data["business_id"])
		}).
		Return(2, 0, nil, nil)

	mocks.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, logEntry *entity.Notification) {
			assert.Equal(t, businessID, logEntry.BusinessID)
			assert.Equal(t, entity.NotificationAppointmentCreated, logEntry.Kind)
			assert.Equal(t, 2, logEntry.TotalSent)
			assert.Equal(t, 0, logEntry.TotalFailed)
			require.NotNil(t, logEntry.AppointmentID)
			assert.Equal(t, event.AppointmentID, logEntry.AppointmentID.String())
		}).
		Return(nil)

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AppointmentCancelled_SpanishBody(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("cancelled")
	devices := activeDevices(1)

	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, mock.Anything).Return(devices, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, "Cita cancelada", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ []string, _, body string, _ map[string]string) {
			assert.Contains(t, body, "La cita de Carlos Pérez del 12 de mayo a las 10:00 fue cancelada")
		}).
		Return(1, 0, nil, nil)

	mocks.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, logEntry *entity.Notification) {
			assert.Equal(t, entity.NotificationAppointmentCancelled, logEntry.Kind)
		}).
		Return(nil)

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Tokens FCM reports as invalid are deactivated so the next fan-out skips
// them.
func TestPushHandler_InvalidTokensDeactivated(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	devices := activeDevices(2)

	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, mock.Anything).Return(devices, nil)

	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{devices[1].FCMToken}, nil)

	mocks.deviceRepo.EXPECT().Deactivate(mock.Anything, devices[1].ID).Return(nil)

	mocks.notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, logEntry *entity.Notification) {
			assert.Equal(t, 1, logEntry.TotalSent)
			assert.Equal(t, 1, logEntry.TotalFailed)
		}).
		Return(nil)

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Confirmations are owner-initiated; pushing them back at the owner would
// only be noise.
func TestPushHandler_ConfirmedKind_NoPush(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := testAppointmentEvent("confirmed")

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_NoActiveDevices_Acked(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, mock.Anything).Return(nil, nil)

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Infrastructure failures answer 503 so Pub/Sub redelivers.
func TestPushHandler_DeviceLookupFailure_Retried(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	mocks.deviceRepo.EXPECT().
		FindActiveByUser(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_SendFailure_Retried(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, mock.Anything).Return(activeDevices(1), nil)
	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// A malformed owner id can never parse on redelivery either: ack it so the
// message does not loop forever.
func TestPushHandler_PoisonedEvent_Acked(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	event.OwnerID = "not-a-uuid"

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// The push already went out; a failed log write is not worth a redelivery.
func TestPushHandler_LogWriteFailure_StillAcked(t *testing.T) {
	h, mocks := newTestPushHandler(t)

	event := testAppointmentEvent("created")
	mocks.deviceRepo.EXPECT().FindActiveByUser(mock.Anything, mock.Anything).Return(activeDevices(1), nil)
	mocks.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	mocks.notificationRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(errors.New("insert failed"))

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RegistrationEvent_LoggedAndAcked(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := &service.RegistrationEvent{
		RequestID:    uuid.New().String(),
		UserID:       uuid.New().String(),
		BusinessID:   uuid.New().String(),
		BusinessName: "Barbería El Cafetal",
		Department:   "Antioquia",
	}

	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeRegistration}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// Retrying an unroutable message never helps.
func TestPushHandler_UnknownEventType_Acked(t *testing.T) {
	h, _ := newTestPushHandler(t)

	c, rec := pushContext(t, map[string]string{"event_type": "billing"}, map[string]string{"noise": "yes"})

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedBase64_Rejected(t *testing.T) {
	h, _ := newTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "%%% not base64 %%%"
	msg.Message.Attributes = map[string]string{"event_type": constants.EventTypeAppointment}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Auth verification only applies outside develop on the google provider;
// without a token such a request is turned away before any parsing.
func TestPushHandler_VerifyAuth_MissingToken(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verifyPushAuth = true

	event := testAppointmentEvent("created")
	c, rec := pushContext(t, map[string]string{"event_type": constants.EventTypeAppointment}, event)

	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
