package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"turnos/internal/domain/constants"
	"turnos/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishAppointmentEvent publishes an appointment lifecycle event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishAppointmentEvent(ctx context.Context, event *service.AppointmentEvent) error {
	attributes := map[string]string{
		"event_type":     constants.EventTypeAppointment,
		"appointment_id": event.AppointmentID,
		"business_id":    event.BusinessID,
		"kind":           event.Kind,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	p.logger.Info("[GooglePubSub] Publishing appointment event",
		slog.String("appointment_id", event.AppointmentID),
		slog.String("kind", event.Kind),
	)

	return p.publish(ctx, event, attributes)
}

// PublishRegistrationEvent publishes a completed-registration event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishRegistrationEvent(ctx context.Context, event *service.RegistrationEvent) error {
	attributes := map[string]string{
		"event_type":  constants.EventTypeRegistration,
		"business_id": event.BusinessID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	p.logger.Info("[GooglePubSub] Publishing registration event",
		slog.String("business_id", event.BusinessID),
		slog.String("department", event.Department),
	)

	return p.publish(ctx, event, attributes)
}

// publish serializes the payload and waits for the server acknowledgement.
func (p *googlePubSubPublisher) publish(ctx context.Context, payload any, attributes map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("event_type", attributes["event_type"]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
