package notification

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"

	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var mailTemplate = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif;">
    <h2>{{.Subject}}</h2>
    <p>{{.Body}}</p>
    <p style="color: #888;">You receive this email because of your activity on JoinMe.</p>
  </body>
</html>`))

// emailNotifier resolves the recipient's address and sends a plain + HTML email
type emailNotifier struct {
	userRepo repository.UserRepository
	mailer   service.Mailer
	logger   *slog.Logger
}

// NewEmailNotifier creates a notifier that delivers over email
func NewEmailNotifier(userRepo repository.UserRepository, mailer service.Mailer, logger *slog.Logger) service.Notifier {
	return &emailNotifier{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func (n *emailNotifier) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	user, err := n.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve email for user %s", recipientID)
	}

	var html bytes.Buffer
	if err := mailTemplate.Execute(&html, struct{ Subject, Body string }{subject, body}); err != nil {
		return errors.WithStack(err)
	}

	if err := n.mailer.Send(ctx, &service.Mail{
		To:       user.Email,
		Subject:  subject,
		HTMLBody: html.String(),
		TextBody: body,
	}); err != nil {
		return errors.Wrapf(err, "failed to email user %s", recipientID)
	}

	n.logger.Debug("Email notification sent", slog.String("recipient_id", recipientID.String()))

	return nil
}
