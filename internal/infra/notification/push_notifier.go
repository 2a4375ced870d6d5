package notification

import (
	"context"
	"log/slog"

	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pushNotifier sends to every active device of the recipient
type pushNotifier struct {
	deviceRepo repository.DeviceRepository
	sender     service.PushSender
	logger     *slog.Logger
}

// NewPushNotifier creates a notifier that delivers over push
func NewPushNotifier(deviceRepo repository.DeviceRepository, sender service.PushSender, logger *slog.Logger) service.Notifier {
	return &pushNotifier{
		deviceRepo: deviceRepo,
		sender:     sender,
		logger:     logger,
	}
}

func (n *pushNotifier) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	devices, err := n.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return errors.Wrapf(err, "failed to load devices for user %s", recipientID)
	}
	if len(devices) == 0 {
		n.logger.Debug("No active devices", slog.String("recipient_id", recipientID.String()))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	sent, failed, invalidTokens, err := n.sender.SendBatchNotification(ctx, tokens, subject, body, map[string]string{
		"recipient_id": recipientID.String(),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to push to user %s", recipientID)
	}

	if len(invalidTokens) > 0 {
		if err := n.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			n.logger.Warn("Failed to deactivate invalid tokens",
				slog.Int("token_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	n.logger.Debug("Push notification sent",
		slog.String("recipient_id", recipientID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	if sent == 0 && failed > 0 {
		return errors.Errorf("push to user %s failed on all %d devices", recipientID, failed)
	}

	return nil
}
