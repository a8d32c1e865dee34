// Package handler processes Pub/Sub push deliveries for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"turnos/config"
	"turnos/internal/colombia"
	deliverycontext "turnos/internal/delivery/context"
	"turnos/internal/domain/constants"
	"turnos/internal/domain/entity"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes appointment and registration events and fans
// appointment notifications out to the owner's devices over FCM.
type PushHandler struct {
	verifyPushAuth   bool
	logger           *slog.Logger
	notificationSvc  service.NotificationService
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	NotificationSvc  service.NotificationService
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google-signed push tokens only exist on the google provider, and
	// local development posts to /push directly without them.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		logger:           params.Logger,
		notificationSvc:  params.NotificationSvc,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	switch pushMsg.Message.Attributes["event_type"] {
	case constants.EventTypeAppointment:
		return h.handleAppointmentEvent(ctx, c, &pushMsg, data)
	case constants.EventTypeRegistration:
		return h.handleRegistrationEvent(ctx, c, &pushMsg, data)
	default:
		h.logger.Warn("[Worker] Unknown event type, acknowledging",
			slog.String("event_type", pushMsg.Message.Attributes["event_type"]),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		// Acknowledge: retrying an unroutable message never helps.
		return c.NoContent(http.StatusOK)
	}
}

func (h *PushHandler) handleAppointmentEvent(ctx context.Context, c echo.Context, pushMsg *PubSubMessage, data []byte) error {
	var event service.AppointmentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse appointment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := h.scopedLogger(ctx, pushMsg, event.RequestID)

	reqLogger.Info("[Worker] Processing appointment event",
		slog.String("kind", event.Kind),
		slog.String("appointment_id", event.AppointmentID),
		slog.String("business_id", event.BusinessID),
	)

	if err := h.notifyOwner(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process appointment event",
			slog.String("appointment_id", event.AppointmentID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to retry; anything else is acknowledged so a
		// poisoned message cannot loop forever.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) handleRegistrationEvent(ctx context.Context, c echo.Context, pushMsg *PubSubMessage, data []byte) error {
	var event service.RegistrationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse registration event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	_, reqLogger := h.scopedLogger(ctx, pushMsg, event.RequestID)

	// Registrations carry no push fan-out yet: the owner has no devices
	// seconds after signing up. The event is logged for analytics.
	reqLogger.Info("[Worker] Business registered",
		slog.String("user_id", event.UserID),
		slog.String("business_id", event.BusinessID),
		slog.String("business_name", event.BusinessName),
		slog.String("department", event.Department),
	)

	return c.NoContent(http.StatusOK)
}

// scopedLogger resolves the request id (attribute, then event field, then a
// fresh one) and returns a context and logger carrying it.
func (h *PushHandler) scopedLogger(ctx context.Context, pushMsg *PubSubMessage, eventRequestID string) (context.Context, *slog.Logger) {
	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = eventRequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// notifyOwner pushes the event to every active device of the owner and
// records the fan-out in the notification log.
func (h *PushHandler) notifyOwner(ctx context.Context, event *service.AppointmentEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	appointmentID, businessID, ownerID, err := parseEventIDs(event)
	if err != nil {
		return err
	}

	kind, title, body, ok := notificationContent(event)
	if !ok {
		logger.Info("[Worker] Event kind carries no push, skipping",
			slog.String("kind", event.Kind),
		)

		return nil
	}

	devices, err := h.deviceRepo.FindActiveByUser(ctx, ownerID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] Owner has no active devices",
			slog.String("owner_id", event.OwnerID),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	pushData := map[string]string{
		"kind":           event.Kind,
		"appointment_id": event.AppointmentID,
		"business_id":    event.BusinessID,
		"starts_at":      event.StartsAt.Format(time.RFC3339),
	}

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, pushData)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	h.deactivateInvalidTokens(ctx, devices, invalidTokens)

	logEntry := &entity.Notification{
		ID:            uuid.New(),
		BusinessID:    businessID,
		AppointmentID: &appointmentID,
		Kind:          kind,
		Title:         title,
		Body:          body,
		TotalSent:     sent,
		TotalFailed:   failed,
		SentAt:        time.Now(),
	}
	if err := h.notificationRepo.Create(ctx, logEntry); err != nil {
		// The push went out; a missing log row is not worth a redelivery.
		logger.Error("[Worker] Failed to record notification log", slog.Any("error", err))
	}

	logger.Info("[Worker] Notification fan-out completed",
		slog.String("appointment_id", event.AppointmentID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

func (h *PushHandler) deactivateInvalidTokens(ctx context.Context, devices []*entity.Device, invalidTokens []string) {
	for _, device := range devices {
		if !slices.Contains(invalidTokens, device.FCMToken) {
			continue
		}

		if err := h.deviceRepo.Deactivate(ctx, device.ID); err != nil {
			h.logger.Warn("[Worker] Failed to deactivate device with invalid token",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func parseEventIDs(event *service.AppointmentEvent) (appointmentID, businessID, ownerID uuid.UUID, err error) {
	appointmentID, err = uuid.Parse(event.AppointmentID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrap(err, "appointment id")
	}

	businessID, err = uuid.Parse(event.BusinessID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrap(err, "business id")
	}

	ownerID, err = uuid.Parse(event.OwnerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.Wrap(err, "owner id")
	}

	return appointmentID, businessID, ownerID, nil
}

// notificationContent builds the Spanish push for one event kind. Kinds
// without a push (confirmations are owner-initiated) report ok=false.
func notificationContent(event *service.AppointmentEvent) (kind entity.NotificationKind, title, body string, ok bool) {
	when := spanishDateTime(event.StartsAt)

	switch event.Kind {
	case "created":
		return entity.NotificationAppointmentCreated,
			"Nueva cita reservada",
			fmt.Sprintf("%s reservó una cita para el %s", event.CustomerName, when),
			true
	case "cancelled":
		return entity.NotificationAppointmentCancelled,
			"Cita cancelada",
			fmt.Sprintf("La cita de %s del %s fue cancelada", event.CustomerName, when),
			true
	case "reminder":
		return entity.NotificationAppointmentReminder,
			"Recordatorio de cita",
			fmt.Sprintf("Tienes una cita con %s el %s", event.CustomerName, when),
			true
	default:
		return "", "", "", false
	}
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// spanishDateTime renders "12 de mayo a las 10:00" in Bogotá time.
func spanishDateTime(t time.Time) string {
	local := t.In(colombia.Bogota())

	return fmt.Sprintf("%d de %s a las %s", local.Day(), spanishMonths[local.Month()-1], local.Format("15:04"))
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must be the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
