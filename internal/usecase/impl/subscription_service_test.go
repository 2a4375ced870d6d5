package impl

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	mockRepo "joinme/internal/mocks/repository"
	mockService "joinme/internal/mocks/service"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service     usecase.SubscriptionUsecase
	profileRepo *mockRepo.MockProfileRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)

	return subscriptionServiceFixtures{
		service: NewSubscriptionService(SubscriptionServiceParams{
			ProfileRepo:   profileRepo,
			QRCodeService: qrcode,
			Logger:        slog.New(slog.DiscardHandler),
		}),
		profileRepo: profileRepo,
		qrcode:      qrcode,
	}
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	fanID := uuid.New()
	fan := entity.Principal{UserID: fanID}

	t.Run("adds subscriber", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		before := &entity.Profile{ID: ownerID, UserID: ownerID}
		after := &entity.Profile{ID: ownerID, UserID: ownerID, Subscribers: []uuid.UUID{fanID}}

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(before, nil).Once()
		fx.profileRepo.EXPECT().AddSubscriber(ctx, ownerID, fanID).Return(nil)
		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(after, nil).Once()

		profile, err := fx.service.Subscribe(ctx, ownerID, fan)
		require.NoError(t, err)
		assert.True(t, profile.HasSubscriber(fanID))
	})

	t.Run("self subscribe is forbidden", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil)

		_, err := fx.service.Subscribe(ctx, ownerID, entity.Principal{UserID: ownerID})
		assert.ErrorIs(t, err, domainerrors.ErrSelfSubscribe)
		assertHTTPStatus(t, err, http.StatusForbidden)
	})

	t.Run("self subscribe is forbidden even when already listed", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID, Subscribers: []uuid.UUID{ownerID}}, nil)

		_, err := fx.service.Subscribe(ctx, ownerID, entity.Principal{UserID: ownerID})
		assert.ErrorIs(t, err, domainerrors.ErrSelfSubscribe)
		assertHTTPStatus(t, err, http.StatusForbidden)
	})

	t.Run("duplicate subscribe is forbidden", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID, Subscribers: []uuid.UUID{fanID}}, nil)

		_, err := fx.service.Subscribe(ctx, ownerID, fan)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadySubscribed)
		assertHTTPStatus(t, err, http.StatusForbidden)
	})

	t.Run("racing subscribe rejected by storage", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil)
		fx.profileRepo.EXPECT().AddSubscriber(ctx, ownerID, fanID).Return(repository.ErrAlreadySubscribed)

		_, err := fx.service.Subscribe(ctx, ownerID, fan)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadySubscribed)
	})

	t.Run("subscriber account gone", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		profile := &entity.Profile{ID: ownerID, UserID: ownerID}

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil).Twice()
		fx.profileRepo.EXPECT().AddSubscriber(ctx, ownerID, fanID).Return(repository.ErrDanglingMember)

		_, err := fx.service.Subscribe(ctx, ownerID, fan)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assertHTTPStatus(t, err, http.StatusNotFound)
	})

	t.Run("profile deleted during subscribe", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil).Once()
		fx.profileRepo.EXPECT().AddSubscriber(ctx, ownerID, fanID).Return(repository.ErrDanglingMember)
		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, repository.ErrProfileNotFound).Once()

		_, err := fx.service.Subscribe(ctx, ownerID, fan)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("missing profile", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.Subscribe(ctx, ownerID, fan)
		assertHTTPStatus(t, err, http.StatusNotFound)
	})
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	fanID := uuid.New()

	t.Run("absent subscriber is a no-op", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		profile := &entity.Profile{ID: ownerID, UserID: ownerID}

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		fx.profileRepo.EXPECT().RemoveSubscriber(ctx, ownerID, fanID).Return(nil)

		got, err := fx.service.Unsubscribe(ctx, ownerID, entity.Principal{UserID: fanID})
		require.NoError(t, err)
		assert.Empty(t, got.Subscribers)
	})

	t.Run("self unsubscribe is forbidden", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil)

		_, err := fx.service.Unsubscribe(ctx, ownerID, entity.Principal{UserID: ownerID})
		assert.ErrorIs(t, err, domainerrors.ErrSelfUnsubscribe)
	})
}

func TestSubscriptionService_QR(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	fanID := uuid.New()

	t.Run("generate for existing profile", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil)
		fx.qrcode.EXPECT().GenerateSubscriptionQR(ownerID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.GenerateSubscriptionQR(ctx, ownerID)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("generate for missing profile", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GenerateSubscriptionQR(ctx, ownerID)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})

	t.Run("scan subscribes", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		payload := `{"profile_id":"` + ownerID.String() + `","type":"profile_subscription"}`

		fx.qrcode.EXPECT().ParseSubscriptionQR(payload).Return(ownerID, nil)
		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.Profile{ID: ownerID, UserID: ownerID}, nil)
		fx.profileRepo.EXPECT().AddSubscriber(ctx, ownerID, fanID).Return(nil)

		_, err := fx.service.SubscribeByQR(ctx, payload, entity.Principal{UserID: fanID})
		require.NoError(t, err)
	})

	t.Run("scan rejects malformed payload", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.qrcode.EXPECT().ParseSubscriptionQR("garbage").Return(uuid.Nil, errors.New("invalid QR code format"))

		_, err := fx.service.SubscribeByQR(ctx, "garbage", entity.Principal{UserID: fanID})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
		assertHTTPStatus(t, err, http.StatusBadRequest)
	})
}
