package impl

import (
	"context"
	"testing"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	mockRepo "joinme/internal/mocks/repository"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{FCMToken: "token-new", DeviceID: "pixel-8", Platform: "android"}

	t.Run("creates unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{}, nil)
		fx.deviceRepo.EXPECT().
			CreateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
				return d.UserID == userID && d.DeviceID == "pixel-8" && d.IsActive
			})).
			Return(nil)

		device, err := fx.service.RegisterDevice(ctx, userID, info)
		require.NoError(t, err)
		assert.Equal(t, "token-new", device.FCMToken)
		assert.Equal(t, "android", device.Platform)
	})

	t.Run("refreshes token of known device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		known := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "pixel-8", FCMToken: "token-old"}
		refreshed := &entity.UserDevice{ID: known.ID, UserID: userID, DeviceID: "pixel-8", FCMToken: "token-new", IsActive: true}

		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{known}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, known.ID, "token-new").Return(nil)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, known.ID).Return(refreshed, nil)

		device, err := fx.service.RegisterDevice(ctx, userID, info)
		require.NoError(t, err)
		assert.Same(t, refreshed, device)
	})

	t.Run("unknown platform", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("lookup failure", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, errors.New("connection reset"))

		device, err := fx.service.RegisterDevice(ctx, userID, info)
		require.Error(t, err)
		assert.Nil(t, device)
		assert.Contains(t, err.Error(), "failed to find devices by user")
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner updates token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "rotated").Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "rotated"))
	})

	t.Run("unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "rotated")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "rotated")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	active := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(active, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, active, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("owner removes device", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(ctx, userID, deviceID)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
	})
}
