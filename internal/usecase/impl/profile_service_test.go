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
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			TxManager:   txManager,
			ProfileRepo: profileRepo,
			Logger:      slog.New(slog.DiscardHandler),
		}),
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

// expectTransaction runs the transactional callback against the given factory.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestProfileService_FindOne(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("absent profile is not an error", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

		profile, err := fx.service.FindOne(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("get fails not found", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.Get(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
		assertHTTPStatus(t, err, http.StatusNotFound)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, id).Return(nil, errors.New("timeout"))

		_, err := fx.service.FindOne(ctx, id)
		require.Error(t, err)
	})
}

func TestProfileService_CreateProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	principal := entity.Principal{UserID: userID}
	input := &usecase.CreateProfileInput{FirstName: "Ada", LastName: "Lovelace", ContactInfo: "ada@example.com"}

	t.Run("profile id equals user id", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
		fx.profileRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
				return p.ID == userID && p.UserID == userID && len(p.Subscribers) == 0
			})).
			Return(nil)

		profile, err := fx.service.CreateProfile(ctx, input, principal)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", profile.FullName())
		assert.False(t, profile.CreationDate.IsZero())
		assert.Nil(t, profile.UpdateDate)
	})

	t.Run("second profile rejected", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(&entity.Profile{ID: userID, UserID: userID}, nil)

		_, err := fx.service.CreateProfile(ctx, input, principal)
		assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
		assert.Contains(t, err.Error(), "You have already created a profile")
		assertHTTPStatus(t, err, http.StatusBadRequest)
	})

	t.Run("racing create rejected by storage", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
		fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProfile)

		_, err := fx.service.CreateProfile(ctx, input, principal)
		assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	description := "Organiser of things"

	existing := func() *entity.Profile {
		return &entity.Profile{ID: ownerID, UserID: ownerID, FirstName: "Ada", LastName: "Lovelace"}
	}

	t.Run("owner merges supplied fields", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := existing()

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		fx.profileRepo.EXPECT().Update(ctx, profile).Return(nil)

		updated, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{Description: &description}, ownerID, entity.Principal{UserID: ownerID})
		require.NoError(t, err)
		assert.Equal(t, description, updated.Description)
		assert.Equal(t, "Ada", updated.FirstName)
		require.NotNil(t, updated.UpdateDate)
	})

	t.Run("admin may update any profile", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := existing()

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		fx.profileRepo.EXPECT().Update(ctx, profile).Return(nil)

		admin := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
		_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{Description: &description}, ownerID, admin)
		require.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(existing(), nil)

		_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{}, ownerID, entity.Principal{UserID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrNotProfileOwner)
		assertHTTPStatus(t, err, http.StatusForbidden)
	})

	t.Run("concurrent write", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := existing()

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		fx.profileRepo.EXPECT().Update(ctx, profile).Return(repository.ErrProfileVersionConflict)

		_, err := fx.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{}, ownerID, entity.Principal{UserID: ownerID})
		assertHTTPStatus(t, err, http.StatusConflict)
	})
}

func TestProfileService_DeleteProfile(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.Profile{ID: ownerID, UserID: ownerID}

	t.Run("removes profile then user in one transaction", func(t *testing.T) {
		fx := createTestProfileService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txProfiles := mockRepo.NewMockProfileRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		expectTransaction(t, fx.txManager, factory)
		factory.EXPECT().NewProfileRepository().Return(txProfiles)
		factory.EXPECT().NewUserRepository().Return(txUsers)
		txProfiles.EXPECT().DeleteByID(ctx, ownerID).Return(nil)
		txUsers.EXPECT().Delete(ctx, ownerID).Return(nil)

		require.NoError(t, fx.service.DeleteProfile(ctx, ownerID, entity.Principal{UserID: ownerID}))
	})

	t.Run("user delete failure rolls back", func(t *testing.T) {
		fx := createTestProfileService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txProfiles := mockRepo.NewMockProfileRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)
		expectTransaction(t, fx.txManager, factory)
		factory.EXPECT().NewProfileRepository().Return(txProfiles)
		factory.EXPECT().NewUserRepository().Return(txUsers)
		txProfiles.EXPECT().DeleteByID(ctx, ownerID).Return(nil)
		txUsers.EXPECT().Delete(ctx, ownerID).Return(repository.ErrUserNotFound)

		err := fx.service.DeleteProfile(ctx, ownerID, entity.Principal{UserID: ownerID})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		fx := createTestProfileService(t)

		fx.profileRepo.EXPECT().FindByID(ctx, ownerID).Return(profile, nil)

		err := fx.service.DeleteProfile(ctx, ownerID, entity.Principal{UserID: uuid.New()})
		assert.ErrorIs(t, err, domainerrors.ErrNotProfileOwner)
	})
}
