package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"joinme/internal/domain/service"
	"joinme/internal/usecase"

	"github.com/pkg/errors"
)

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// inlinePublisher delivers fanouts in-process on a background goroutine.
// Delivery outlives the request that triggered it.
type inlinePublisher struct {
	fanout usecase.FanoutUsecase
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that runs the fanout in this process
func NewInlinePublisher(fanout usecase.FanoutUsecase, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		fanout: fanout,
		logger: logger,
	}
}

func (p *inlinePublisher) PublishFanoutEvent(ctx context.Context, event *service.FanoutEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.WithStack(ErrPublisherClosed)
	}

	p.logger.Debug("[InlinePubSub] Dispatching fanout",
		slog.String("kind", event.Kind),
		slog.String("event_id", event.EventID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
	)

	detached := context.WithoutCancel(ctx)
	p.wg.Go(func() {
		p.fanout.Deliver(detached, event)
	})

	return nil
}

// Close waits for in-flight fanouts to finish
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
