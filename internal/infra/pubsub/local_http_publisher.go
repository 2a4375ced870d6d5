package pubsub

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"joinme/internal/domain/service"

	"github.com/pkg/errors"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher posts Pub/Sub-shaped push envelopes straight to the
// notify worker. Used for local development without a Pub/Sub emulator.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher targets the worker push endpoint at endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger.With(slog.String("publisher", "local"), slog.String("endpoint", endpoint)),
	}
}

func (p *localHTTPPublisher) PublishFanoutEvent(ctx context.Context, event *service.FanoutEvent) error {
	body, err := EncodePushMessage(event, LocalSubscription)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s fanout for event %s", event.Kind, event.EventID)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("notify worker answered %d for event %s", resp.StatusCode, event.EventID)
	}

	p.logger.DebugContext(ctx, "Fanout pushed to worker",
		slog.String("kind", event.Kind),
		slog.String("event_id", event.EventID),
		slog.Int("recipients", len(event.RecipientIDs)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
