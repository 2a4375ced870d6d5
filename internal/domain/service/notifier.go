package service

import (
	"context"

	"github.com/google/uuid"
)

// Notifier delivers one message to one user over some channel.
type Notifier interface {
	Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error
}

// PushSender defines the interface for push notification services
type PushSender interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}

// Mail is a single outgoing email.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
