package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"joinme/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher sends fanout events to a Cloud Pub/Sub topic whose
// push subscription targets the notify worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup fanout topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger.With(slog.String("publisher", "google"), slog.String("topic", topic)),
	}, nil
}

// PublishFanoutEvent blocks until Pub/Sub acknowledges the message.
func (p *googlePubSubPublisher) PublishFanoutEvent(ctx context.Context, event *service.FanoutEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode fanout event")
	}

	messageID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s fanout for event %s", event.Kind, event.EventID)
	}

	p.logger.DebugContext(ctx, "Fanout published",
		slog.String("kind", event.Kind),
		slog.String("event_id", event.EventID),
		slog.String("message_id", messageID),
		slog.Int("recipients", len(event.RecipientIDs)),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
