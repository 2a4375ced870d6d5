package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"joinme/config"
	"joinme/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSendGridBaseURL = "https://api.sendgrid.com"

// sendgridMailer implements service.Mailer on top of the SendGrid v3 mail send API
type sendgridMailer struct {
	apiKey     string
	baseURL    string
	from       emailAddress
	httpClient *http.Client
	logger     *slog.Logger
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

type sendgridErrorItem struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// SendGridError is returned when the API answers with a non-2xx status.
type SendGridError struct {
	StatusCode int
	Body       string
	Messages   []string
}

func (e *SendGridError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}

	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = "<empty body>"
	}

	return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, body)
}

// NewSendGridMailer creates a mailer from the mail configuration
func NewSendGridMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg == nil || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("sendgrid api key is required")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, errors.New("sendgrid from email is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultSendGridBaseURL
	}

	fromName := strings.TrimSpace(cfg.FromName)
	if fromName == "" {
		fromName = "JoinMe"
	}

	return &sendgridMailer{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		from:       emailAddress{Email: strings.TrimSpace(cfg.FromEmail), Name: fromName},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(slog.String("client", "sendgrid")),
	}, nil
}

// Send posts a single message to /v3/mail/send
func (m *sendgridMailer) Send(ctx context.Context, mail *service.Mail) error {
	to := strings.TrimSpace(mail.To)
	if to == "" {
		return errors.New("mail recipient is required")
	}

	contents := make([]mailContent, 0, 2)
	if text := strings.TrimSpace(mail.TextBody); text != "" {
		contents = append(contents, mailContent{Type: "text/plain", Value: text})
	}
	if html := strings.TrimSpace(mail.HTMLBody); html != "" {
		contents = append(contents, mailContent{Type: "text/html", Value: html})
	}
	if len(contents) == 0 {
		return errors.New("mail body is required")
	}

	payload, err := json.Marshal(mailSendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: to}}}},
		From:             m.from,
		Subject:          mail.Subject,
		Content:          contents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v3/mail/send", bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		sgErr := &SendGridError{StatusCode: resp.StatusCode, Body: string(raw)}

		var decoded struct {
			Errors []sendgridErrorItem `json:"errors"`
		}
		if json.Unmarshal(raw, &decoded) == nil {
			for _, item := range decoded.Errors {
				sgErr.Messages = append(sgErr.Messages, item.Message)
			}
		}

		return errors.WithStack(sgErr)
	}

	m.logger.Debug("Mail accepted",
		slog.Int("status", resp.StatusCode),
		slog.String("message_id", resp.Header.Get("X-Message-Id")),
	)

	return nil
}
