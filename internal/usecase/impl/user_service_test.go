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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       slog.New(slog.DiscardHandler),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email and grants user role", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		fx.userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Email == "ada@example.com" && u.PasswordHash == "hashed"
			})).
			Return(nil)

		user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "  Ada@Example.com ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "ada@example.com", Password: "s3cret-pass"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		assertHTTPStatus(t, err, http.StatusConflict)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

	t.Run("issues token with roles", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"user", "admin"}).Return("signed.jwt.token", nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ADA@example.com", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.AccessToken)
		assert.Same(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
