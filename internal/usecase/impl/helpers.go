package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "joinme/internal/delivery/context"
	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// globe is the valid lon/lat range for event coordinates.
var globe = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

// requestLogger returns a request-scoped logger if available, otherwise the fallback.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, fallback)
}

func validateLocation(point orb.Point) error {
	if !globe.Contains(point) {
		return errors.WithStack(domainerrors.ErrInvalidLocation)
	}

	return nil
}

func parseEventTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.WithStack(domainerrors.ErrInvalidEventTime.WithDetails("times must be RFC 3339"))
	}

	return parsed, nil
}

func validateEventWindow(start, end time.Time) error {
	if !end.After(start) {
		return errors.WithStack(domainerrors.ErrInvalidEventTime.WithDetails("end time must be after start time"))
	}

	return nil
}

func toRecipientIDs(ids []uuid.UUID) []string {
	recipients := make([]string, 0, len(ids))
	for _, id := range ids {
		recipients = append(recipients, id.String())
	}

	return recipients
}

// publishFanout hands a fanout to the publisher. The triggering write has
// already committed, so failures are logged and never returned.
func publishFanout(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.FanoutEvent) {
	if len(event.RecipientIDs) == 0 {
		logger.Debug("No recipients for fanout", slog.String("kind", event.Kind), slog.String("event_id", event.EventID))

		return
	}

	event.RequestID = deliverycontext.RequestIDFrom(ctx)
	if err := publisher.PublishFanoutEvent(ctx, event); err != nil {
		logger.Error("Failed to publish fanout",
			slog.String("kind", event.Kind),
			slog.String("event_id", event.EventID),
			slog.Int("recipient_count", len(event.RecipientIDs)),
			slog.Any("error", err),
		)
	}
}

// findProfile maps a missing profile to the NotFound kind.
func findProfile(ctx context.Context, profileRepo repository.ProfileRepository, id uuid.UUID) (*entity.Profile, error) {
	profile, err := profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
