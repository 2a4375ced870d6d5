package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"joinme/config"
	"joinme/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, baseURL string) service.Mailer {
	t.Helper()

	mailer, err := NewSendGridMailer(&config.MailConfig{
		APIKey:    "SG.test",
		BaseURL:   baseURL,
		FromEmail: "noreply@joinme.test",
		Timeout:   time.Second,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return mailer
}

func TestSendGridMailer_Send(t *testing.T) {
	t.Run("posts mail send payload", func(t *testing.T) {
		var received mailSendRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/mail/send", r.URL.Path)
			assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.Header().Set("X-Message-Id", "msg-1")
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		err := newTestMailer(t, server.URL+"/").Send(context.Background(), &service.Mail{
			To:       "ada@example.com",
			Subject:  "Event Hack night updated",
			HTMLBody: "<p>hi</p>",
			TextBody: "hi",
		})
		require.NoError(t, err)

		require.Len(t, received.Personalizations, 1)
		assert.Equal(t, "ada@example.com", received.Personalizations[0].To[0].Email)
		assert.Equal(t, emailAddress{Email: "noreply@joinme.test", Name: "JoinMe"}, received.From)
		assert.Equal(t, "Event Hack night updated", received.Subject)
		assert.Equal(t, []mailContent{{Type: "text/plain", Value: "hi"}, {Type: "text/html", Value: "<p>hi</p>"}}, received.Content)
	})

	t.Run("surfaces api errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"message":"The from address does not match a verified Sender Identity."}]}`))
		}))
		defer server.Close()

		err := newTestMailer(t, server.URL).Send(context.Background(), &service.Mail{To: "ada@example.com", Subject: "s", TextBody: "b"})
		require.Error(t, err)

		var sgErr *SendGridError
		require.ErrorAs(t, err, &sgErr)
		assert.Equal(t, http.StatusBadRequest, sgErr.StatusCode)
		assert.Contains(t, err.Error(), "verified Sender Identity")
	})

	t.Run("rejects empty message", func(t *testing.T) {
		err := newTestMailer(t, "http://127.0.0.1:0").Send(context.Background(), &service.Mail{To: "ada@example.com", Subject: "s"})
		assert.Error(t, err)
	})
}

func TestNewSendGridMailer(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := NewSendGridMailer(&config.MailConfig{FromEmail: "noreply@joinme.test"}, logger)
	assert.Error(t, err)

	_, err = NewSendGridMailer(&config.MailConfig{APIKey: "SG.test"}, logger)
	assert.Error(t, err)
}
