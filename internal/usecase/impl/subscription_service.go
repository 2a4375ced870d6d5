package impl

import (
	"context"
	"log/slog"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/domain/service"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	profileRepo   repository.ProfileRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		profileRepo:   params.ProfileRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// Subscribe adds the principal to the profile's subscriber set.
// Subscribing to oneself or subscribing twice is rejected.
func (s *subscriptionService) Subscribe(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Profile, error) {
	profile, err := findProfile(ctx, s.profileRepo, id)
	if err != nil {
		return nil, err
	}

	if profile.IsOwnedBy(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrSelfSubscribe)
	}
	if profile.HasSubscriber(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrAlreadySubscribed)
	}

	if err := s.profileRepo.AddSubscriber(ctx, id, principal.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadySubscribed):
			return nil, errors.WithStack(domainerrors.ErrAlreadySubscribed)
		case errors.Is(err, repository.ErrDanglingMember):
			// Profile still present means the principal's user row is the missing one.
			if _, err := findProfile(ctx, s.profileRepo, id); err != nil {
				return nil, err
			}

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		default:
			return nil, errors.Wrap(err, "failed to add subscriber")
		}
	}

	requestLogger(ctx, s.logger).Debug("Subscriber added",
		slog.String("profile_id", id.String()),
		slog.String("user_id", principal.UserID.String()),
	)

	return findProfile(ctx, s.profileRepo, id)
}

// Unsubscribe removes the principal from the subscriber set. Removing an absent member is a no-op.
func (s *subscriptionService) Unsubscribe(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Profile, error) {
	profile, err := findProfile(ctx, s.profileRepo, id)
	if err != nil {
		return nil, err
	}

	if profile.IsOwnedBy(principal.UserID) {
		return nil, errors.WithStack(domainerrors.ErrSelfUnsubscribe)
	}

	if err := s.profileRepo.RemoveSubscriber(ctx, id, principal.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to remove subscriber")
	}

	return findProfile(ctx, s.profileRepo, id)
}

// GenerateSubscriptionQR renders a PNG QR code that subscribes the scanner to the profile
func (s *subscriptionService) GenerateSubscriptionQR(ctx context.Context, profileID uuid.UUID) ([]byte, error) {
	if _, err := findProfile(ctx, s.profileRepo, profileID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateSubscriptionQR(profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate subscription QR code")
	}

	return png, nil
}

// SubscribeByQR subscribes the principal to the profile encoded in a scanned QR payload
func (s *subscriptionService) SubscribeByQR(ctx context.Context, qrData string, principal entity.Principal) (*entity.Profile, error) {
	profileID, err := s.qrcodeService.ParseSubscriptionQR(qrData)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidQRCode.WithDetails(err.Error()))
	}

	return s.Subscribe(ctx, profileID, principal)
}
