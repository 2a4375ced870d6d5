package impl

import (
	"context"
	"log/slog"

	"joinme/internal/domain/service"
	"joinme/internal/usecase"

	"github.com/google/uuid"
)

type fanoutService struct {
	notifier service.Notifier
	logger   *slog.Logger
}

// NewFanoutService creates a new fanout service instance
func NewFanoutService(notifier service.Notifier, logger *slog.Logger) usecase.FanoutUsecase {
	return &fanoutService{
		notifier: notifier,
		logger:   logger,
	}
}

// Deliver notifies each recipient once, sequentially and in order.
// A failed recipient is logged and counted; the remaining recipients are still attempted.
func (s *fanoutService) Deliver(ctx context.Context, event *service.FanoutEvent) usecase.FanoutResult {
	logger := requestLogger(ctx, s.logger).With(
		slog.String("kind", event.Kind),
		slog.String("event_id", event.EventID),
	)

	var result usecase.FanoutResult
	for _, raw := range event.RecipientIDs {
		recipientID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Skipping malformed recipient id", slog.String("recipient_id", raw))
			result.Failed++

			continue
		}

		if err := s.notifier.Notify(ctx, recipientID, event.Subject, event.Body); err != nil {
			logger.Error("Failed to notify recipient",
				slog.String("recipient_id", raw),
				slog.Any("error", err),
			)
			result.Failed++

			continue
		}

		result.Sent++
	}

	logger.Info("Fanout delivered",
		slog.Int("recipient_count", len(event.RecipientIDs)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result
}
