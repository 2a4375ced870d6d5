package notification

import (
	"context"
	stderrors "errors"
	"log/slog"

	"joinme/internal/domain/service"

	"github.com/google/uuid"
)

// multiNotifier fans one message out to every channel. Every channel is
// attempted; the joined error reports the ones that failed.
type multiNotifier struct {
	channels []service.Notifier
}

// NewMultiNotifier combines channels into one notifier
func NewMultiNotifier(channels ...service.Notifier) service.Notifier {
	return &multiNotifier{channels: channels}
}

func (n *multiNotifier) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	var errs []error
	for _, channel := range n.channels {
		if err := channel.Notify(ctx, recipientID, subject, body); err != nil {
			errs = append(errs, err)
		}
	}

	return stderrors.Join(errs...)
}

// logNotifier writes the message to the log. Used when no channel is configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	n.logger.InfoContext(ctx, "Notification",
		slog.String("recipient_id", recipientID.String()),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
