package repository

import (
	"context"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice means the user already registered this device id or the token is taken.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores push targets. Deleted devices are soft-deleted and
// invisible to every query.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices, newest first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// UpdateFCMToken also reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	// DeactivateByTokens is a no-op for an empty token list.
	DeactivateByTokens(ctx context.Context, tokens []string) error
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
