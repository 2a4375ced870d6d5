package notification

import (
	"context"
	"log/slog"

	"joinme/config"
	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
}

// NewNotifier builds the notifier from the configured channels.
// Email is enabled by mail.apiKey, push by firebase.projectId.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	logger := params.Logger.With(slog.String("component", "notifier"))
	channels := make([]service.Notifier, 0, 2)

	if params.Config.Mail != nil && params.Config.Mail.APIKey != "" {
		mailer, err := NewSendGridMailer(params.Config.Mail, logger)
		if err != nil {
			return nil, err
		}
		channels = append(channels, NewEmailNotifier(params.UserRepo, mailer, logger))
		logger.Info("Email notifications enabled", slog.String("from", params.Config.Mail.FromEmail))
	}

	if params.Config.Firebase != nil && params.Config.Firebase.ProjectID != "" {
		sender, err := NewFirebasePushSender(params.Ctx, params.Config.Firebase)
		if err != nil {
			return nil, err
		}
		channels = append(channels, NewPushNotifier(params.DeviceRepo, sender, logger))
		logger.Info("Push notifications enabled", slog.String("project_id", params.Config.Firebase.ProjectID))
	}

	switch len(channels) {
	case 0:
		logger.Warn("No notification channel configured, notifications are only logged")

		return NewLogNotifier(logger), nil
	case 1:
		return channels[0], nil
	default:
		return NewMultiNotifier(channels...), nil
	}
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
