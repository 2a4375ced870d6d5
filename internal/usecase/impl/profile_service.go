package impl

import (
	"context"
	"log/slog"
	"time"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/repository"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// FindOne loads a profile with its subscribers. A missing profile is not an error.
func (srv *profileService) FindOne(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// Get loads a profile and fails NotFound when absent.
func (srv *profileService) Get(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return findProfile(ctx, srv.profileRepo, id)
}

// FindAll returns every profile.
func (srv *profileService) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	return profiles, nil
}

// CreateProfile creates the principal's profile. A user may create only one.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput, principal entity.Principal) (*entity.Profile, error) {
	existing, err := srv.FindOne(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.WithStack(domainerrors.ErrProfileAlreadyExists)
	}

	profile := &entity.Profile{
		ID:             principal.UserID,
		UserID:         principal.UserID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		ProfilePicture: input.ProfilePicture,
		Description:    input.Description,
		ContactInfo:    input.ContactInfo,
		CreationDate:   time.Now(),
		Subscribers:    []uuid.UUID{},
	}

	// Storage rejects a concurrent second create through the primary key.
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, errors.WithStack(domainerrors.ErrProfileAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("user_id", principal.UserID.String()))

	return profile, nil
}

// UpdateProfile merges the supplied fields. Allowed for the owner or an admin.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput, id uuid.UUID, principal entity.Principal) (*entity.Profile, error) {
	profile, err := findProfile(ctx, srv.profileRepo, id)
	if err != nil {
		return nil, err
	}

	if !canManageProfile(profile, principal) {
		return nil, errors.WithStack(domainerrors.ErrNotProfileOwner)
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.ProfilePicture != nil {
		profile.ProfilePicture = *input.ProfilePicture
	}
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.ContactInfo != nil {
		profile.ContactInfo = *input.ContactInfo
	}
	now := time.Now()
	profile.UpdateDate = &now

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileVersionConflict):
			return nil, errors.Wrap(domainerrors.ErrConflict, "profile update lost a concurrent write")
		case errors.Is(err, repository.ErrProfileNotFound):
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		default:
			return nil, errors.Wrap(err, "failed to update profile")
		}
	}

	return profile, nil
}

// DeleteProfile removes the profile and then its owning user in one transaction.
func (srv *profileService) DeleteProfile(ctx context.Context, id uuid.UUID, principal entity.Principal) error {
	profile, err := findProfile(ctx, srv.profileRepo, id)
	if err != nil {
		return err
	}

	if !canManageProfile(profile, principal) {
		return errors.WithStack(domainerrors.ErrNotProfileOwner)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().DeleteByID(ctx, profile.ID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		if err := repoFactory.NewUserRepository().Delete(ctx, profile.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete profile and user")
	}

	srv.log(ctx).Info("Profile and user deleted",
		slog.String("profile_id", profile.ID.String()),
		slog.String("deleted_by", principal.UserID.String()),
	)

	return nil
}

func canManageProfile(profile *entity.Profile, principal entity.Principal) bool {
	return profile.IsOwnedBy(principal.UserID) || principal.IsAdmin()
}
