package usecase

import (
	"context"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	FirstName      string
	LastName       string
	ProfilePicture string
	Description    string
	ContactInfo    string
}

// UpdateProfileInput is a partial update; nil fields keep their stored value.
type UpdateProfileInput struct {
	FirstName      *string
	LastName       *string
	ProfilePicture *string
	Description    *string
	ContactInfo    *string
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// FindOne returns (nil, nil) when the profile does not exist.
	FindOne(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Get is FindOne that fails NotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindAll(ctx context.Context) ([]*entity.Profile, error)
	CreateProfile(ctx context.Context, input *CreateProfileInput, principal entity.Principal) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput, id uuid.UUID, principal entity.Principal) (*entity.Profile, error)
	// DeleteProfile removes the profile and its owning user.
	DeleteProfile(ctx context.Context, id uuid.UUID, principal entity.Principal) error
}

// SubscriptionUsecase manages the subscriber set of profiles.
type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Profile, error)
	Unsubscribe(ctx context.Context, id uuid.UUID, principal entity.Principal) (*entity.Profile, error)
	GenerateSubscriptionQR(ctx context.Context, profileID uuid.UUID) ([]byte, error)
	SubscribeByQR(ctx context.Context, qrData string, principal entity.Principal) (*entity.Profile, error)
}
