package usecase

import (
	"context"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client reports when it registers for push notifications.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages the push targets of the acting user.
type DeviceUsecase interface {
	// RegisterDevice is keyed by DeviceInfo.DeviceID: a known device gets its
	// token refreshed and is reactivated, an unknown one is created.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	// GetUserDevices lists active devices only.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
