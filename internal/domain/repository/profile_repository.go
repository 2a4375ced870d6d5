package repository

import (
	"context"
	"errors"

	"joinme/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when no profile matches the given ID.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the user already owns a profile.
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrProfileVersionConflict is returned when an update lost a race with another writer.
	ErrProfileVersionConflict = errors.New("profile was modified concurrently")
	// ErrAlreadySubscribed is returned when the subscriber row already exists.
	ErrAlreadySubscribed = errors.New("user already subscribed")
)

// ProfileRepository persists profiles and their subscriber sets.
// Every read returns profiles with Subscribers populated.
type ProfileRepository interface {
	// FindAll returns every profile.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// FindByID returns ErrProfileNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Create inserts the profile; ErrDuplicateProfile when the user already owns one.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update writes scalar fields when profile.Version still matches storage and bumps Version.
	Update(ctx context.Context, profile *entity.Profile) error

	// AddSubscriber inserts the membership row; ErrAlreadySubscribed when it exists,
	// ErrDanglingMember when the profile or the user is gone.
	AddSubscriber(ctx context.Context, profileID, userID uuid.UUID) error

	// RemoveSubscriber deletes the membership row. Absence is not an error.
	RemoveSubscriber(ctx context.Context, profileID, userID uuid.UUID) error

	// DeleteByID hard-deletes the profile together with its subscriber rows.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
