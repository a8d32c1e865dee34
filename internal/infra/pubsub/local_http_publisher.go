package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"turnos/internal/domain/constants"
	"turnos/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishAppointmentEvent publishes an appointment event by posting to the local endpoint
func (p *localHTTPPublisher) PublishAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error {
	attributes := map[string]string{
		"event_type":     constants.EventTypeAppointment,
		"appointment_id": event.AppointmentID,
		"business_id":    event.BusinessID,
		"kind":           event.Kind,
	}

	p.logger.Info("[LocalPubSub] Publishing appointment event",
		slog.String("endpoint", p.endpoint),
		slog.String("appointment_id", event.AppointmentID),
		slog.String("kind", event.Kind),
	)

	return p.publish(ctx, event, event.RequestID, event.AppointmentID, attributes)
}

// PublishRegistrationEvent publishes a registration event by posting to the local endpoint
func (p *localHTTPPublisher) PublishRegistrationEvent(ctx context.Context, event *service.RegistrationEvent) error {
	attributes := map[string]string{
		"event_type":  constants.EventTypeRegistration,
		"business_id": event.BusinessID,
	}

	p.logger.Info("[LocalPubSub] Publishing registration event",
		slog.String("endpoint", p.endpoint),
		slog.String("business_id", event.BusinessID),
	)

	return p.publish(ctx, event, event.RequestID, event.BusinessID, attributes)
}

// publish wraps the payload in the Pub/Sub push envelope and posts it.
func (p *localHTTPPublisher) publish(ctx context.Context, payload any, requestID, messageID string, attributes map[string]string) error {
	eventData, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	if requestID != "" {
		attributes["request_id"] = requestID
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/appointment-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = messageID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_type", attributes["event_type"]),
		slog.String("message_id", messageID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
