package pubsub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"joinme/config"
	"joinme/internal/domain/constants"
	"joinme/internal/domain/service"
	mockUsecase "joinme/internal/mocks/usecase"
	"joinme/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newFanoutEvent() *service.FanoutEvent {
	return &service.FanoutEvent{
		RequestID:    "req-1",
		Kind:         constants.FanoutKindEventCreated,
		EventID:      "e1",
		Subject:      "New event from Ada Lovelace",
		Body:         "Ada Lovelace created a new event called Hack night. Check it out at JoinMe.",
		RecipientIDs: []string{"u1", "u2"},
	}
}

func TestInlinePublisher(t *testing.T) {
	t.Run("delivers with a context that outlives the request", func(t *testing.T) {
		fanout := mockUsecase.NewMockFanoutUsecase(t)
		publisher := NewInlinePublisher(fanout, slog.New(slog.DiscardHandler))
		event := newFanoutEvent()

		requestCtx, cancel := context.WithCancel(context.Background())
		delivered := make(chan error, 1)
		fanout.EXPECT().
			Deliver(mock.Anything, event).
			Run(func(ctx context.Context, _ *service.FanoutEvent) {
				delivered <- ctx.Err()
			}).
			Return(usecase.FanoutResult{Sent: 2})

		require.NoError(t, publisher.PublishFanoutEvent(requestCtx, event))
		cancel()
		require.NoError(t, publisher.Close())

		select {
		case err := <-delivered:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("fanout was not delivered")
		}
	})

	t.Run("rejects publish after close", func(t *testing.T) {
		publisher := NewInlinePublisher(mockUsecase.NewMockFanoutUsecase(t), slog.New(slog.DiscardHandler))
		require.NoError(t, publisher.Close())

		err := publisher.PublishFanoutEvent(context.Background(), newFanoutEvent())
		assert.ErrorIs(t, err, ErrPublisherClosed)
	})
}

func TestLocalHTTPPublisher(t *testing.T) {
	t.Run("posts push envelope", func(t *testing.T) {
		event := newFanoutEvent()
		var got *service.FanoutEvent
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			_, got, err = DecodePushMessage(body)
			assert.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		publisher := NewLocalHTTPPublisher(server.URL+"/push", slog.New(slog.DiscardHandler))
		require.NoError(t, publisher.PublishFanoutEvent(context.Background(), event))
		assert.Equal(t, event, got)
	})

	t.Run("worker rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
		assert.Error(t, publisher.PublishFanoutEvent(context.Background(), newFanoutEvent()))
	})
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: slog.New(slog.DiscardHandler),
			Fanout: mockUsecase.NewMockFanoutUsecase(t),
		}
	}

	t.Run("inline by default", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{}))
		require.NoError(t, err)
		assert.IsType(t, &inlinePublisher{}, publisher)
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("local without endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("google without topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}
