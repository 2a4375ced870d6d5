package impl

import (
	"context"
	"log/slog"
	"testing"

	"joinme/internal/domain/constants"
	"joinme/internal/domain/service"
	mockService "joinme/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFanoutService_Deliver(t *testing.T) {
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	newEvent := func(recipients ...string) *service.FanoutEvent {
		return &service.FanoutEvent{
			Kind:         constants.FanoutKindEventCreated,
			EventID:      uuid.NewString(),
			Subject:      "New event from Ada Lovelace",
			Body:         "Ada Lovelace created a new event called Hack night. Check it out at JoinMe.",
			RecipientIDs: recipients,
		}
	}

	t.Run("notifies every recipient in order", func(t *testing.T) {
		notifier := mockService.NewMockNotifier(t)
		svc := NewFanoutService(notifier, slog.New(slog.DiscardHandler))
		event := newEvent(first.String(), second.String())

		var order []uuid.UUID
		notifier.EXPECT().
			Notify(ctx, mock.Anything, event.Subject, event.Body).
			Run(func(_ context.Context, recipientID uuid.UUID, _ string, _ string) {
				order = append(order, recipientID)
			}).
			Return(nil).
			Times(2)

		result := svc.Deliver(ctx, event)
		assert.Equal(t, 2, result.Sent)
		assert.Zero(t, result.Failed)
		assert.Equal(t, []uuid.UUID{first, second}, order)
	})

	t.Run("one failure does not stop the rest", func(t *testing.T) {
		notifier := mockService.NewMockNotifier(t)
		svc := NewFanoutService(notifier, slog.New(slog.DiscardHandler))
		event := newEvent(first.String(), second.String(), third.String())

		notifier.EXPECT().Notify(ctx, first, mock.Anything, mock.Anything).Return(nil)
		notifier.EXPECT().Notify(ctx, second, mock.Anything, mock.Anything).Return(errors.New("smtp unavailable"))
		notifier.EXPECT().Notify(ctx, third, mock.Anything, mock.Anything).Return(nil)

		result := svc.Deliver(ctx, event)
		assert.Equal(t, 2, result.Sent)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("malformed recipient is counted as failed", func(t *testing.T) {
		notifier := mockService.NewMockNotifier(t)
		svc := NewFanoutService(notifier, slog.New(slog.DiscardHandler))

		notifier.EXPECT().Notify(ctx, first, mock.Anything, mock.Anything).Return(nil)

		result := svc.Deliver(ctx, newEvent("not-a-uuid", first.String()))
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("empty recipient list", func(t *testing.T) {
		notifier := mockService.NewMockNotifier(t)
		svc := NewFanoutService(notifier, slog.New(slog.DiscardHandler))

		result := svc.Deliver(ctx, newEvent())
		assert.Zero(t, result.Sent)
		assert.Zero(t, result.Failed)
	})
}
