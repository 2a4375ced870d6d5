package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"joinme/config"
	"joinme/internal/domain/constants"
	"joinme/internal/domain/service"
	"joinme/internal/infra/pubsub"
	mockUsecase "joinme/internal/mocks/usecase"
	"joinme/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushRequest(t *testing.T, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req, httptest.NewRecorder()
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockFanoutUsecase) {
	t.Helper()

	fanout := mockUsecase.NewMockFanoutUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
		Fanout: fanout,
	}), fanout
}

func TestPushHandler_HandlePush(t *testing.T) {
	e := echo.New()
	event := &service.FanoutEvent{
		RequestID:    "req-42",
		Kind:         constants.FanoutKindEventCreated,
		EventID:      "e1",
		Subject:      "New event from Ada Lovelace",
		Body:         "Ada Lovelace created a new event called Hack night. Check it out at JoinMe.",
		RecipientIDs: []string{"u1"},
	}
	body, err := pubsub.EncodePushMessage(event, pubsub.LocalSubscription)
	require.NoError(t, err)

	t.Run("delivers decoded event", func(t *testing.T) {
		h, fanout := newTestPushHandler(t, &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}})

		fanout.EXPECT().
			Deliver(mock.Anything, event).
			Return(usecase.FanoutResult{Sent: 1})

		req, rec := newPushRequest(t, string(body))
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("acks even when every recipient failed", func(t *testing.T) {
		h, fanout := newTestPushHandler(t, &config.Config{})

		fanout.EXPECT().Deliver(mock.Anything, mock.Anything).Return(usecase.FanoutResult{Failed: 1})

		req, rec := newPushRequest(t, string(body))
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed message", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		req, rec := newPushRequest(t, `{"message":{"data":"!!"}}`)
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google provider requires a token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = "production"
		h, _ := newTestPushHandler(t, cfg)

		req, rec := newPushRequest(t, string(body))
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google provider with valid token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.joinme.test/push"}}
		cfg.Env.Env = "production"
		h, fanout := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			if token != "oidc" || audience != "https://worker.joinme.test/push" {
				return nil, errors.New("bad token")
			}

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}

		fanout.EXPECT().Deliver(mock.Anything, mock.Anything).Return(usecase.FanoutResult{Sent: 1})

		req, rec := newPushRequest(t, string(body))
		req.Header.Set("Authorization", "Bearer oidc")
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token verification skipped in develop", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvDevelop
		h, fanout := newTestPushHandler(t, cfg)

		fanout.EXPECT().Deliver(mock.Anything, mock.Anything).Return(usecase.FanoutResult{Sent: 1})

		req, rec := newPushRequest(t, string(body))
		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
