package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"joinme/internal/domain/entity"
	"joinme/internal/domain/repository"
	"joinme/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the persistence schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.ProfileSubscriberModel{},
		&model.EventModel{},
		&model.EventAttendeeModel{},
		&model.UserDeviceModel{},
	))

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash", Roles: entity.Roles{entity.RoleUser}}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func createProfile(t *testing.T, repo repository.ProfileRepository, owner uuid.UUID, first string) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:           owner,
		UserID:       owner,
		FirstName:    first,
		LastName:     "Lovelace",
		CreationDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), profile))

	return profile
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "ada@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: "ada@example.com", PasswordHash: "x", Roles: entity.Roles{entity.RoleUser}})
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})

	t.Run("find by email keeps roles", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, entity.Roles{entity.RoleUser}, got.Roles)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, user.ID))
		assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewProfileRepository(db)

	owner := createUser(t, users, "owner@example.com")
	fan := createUser(t, users, "fan@example.com")
	other := createUser(t, users, "other@example.com")
	profile := createProfile(t, repo, owner.ID, "Ada")
	assert.EqualValues(t, 1, profile.Version)

	t.Run("second profile for same user", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Profile{ID: owner.ID, UserID: owner.ID, FirstName: "Again", CreationDate: time.Now()})
		assert.ErrorIs(t, err, repository.ErrDuplicateProfile)
	})

	t.Run("subscriber set has no duplicates", func(t *testing.T) {
		require.NoError(t, repo.AddSubscriber(ctx, owner.ID, fan.ID))
		require.NoError(t, repo.AddSubscriber(ctx, owner.ID, other.ID))
		assert.ErrorIs(t, repo.AddSubscriber(ctx, owner.ID, fan.ID), repository.ErrAlreadySubscribed)

		got, err := repo.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{fan.ID, other.ID}, got.Subscribers)
	})

	t.Run("removing an absent subscriber is fine", func(t *testing.T) {
		require.NoError(t, repo.RemoveSubscriber(ctx, owner.ID, uuid.New()))
		require.NoError(t, repo.RemoveSubscriber(ctx, owner.ID, other.ID))

		got, err := repo.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{fan.ID}, got.Subscribers)
	})

	t.Run("update bumps version and rejects stale writes", func(t *testing.T) {
		current, err := repo.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		stale := *current

		now := time.Now().UTC()
		current.Description = "Organiser of hack nights"
		current.UpdateDate = &now
		require.NoError(t, repo.Update(ctx, current))
		assert.EqualValues(t, 2, current.Version)

		stale.FirstName = "Lost"
		assert.ErrorIs(t, repo.Update(ctx, &stale), repository.ErrProfileVersionConflict)

		got, err := repo.FindByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "Organiser of hack nights", got.Description)
		require.NotNil(t, got.UpdateDate)
	})

	t.Run("update of missing profile", func(t *testing.T) {
		missing := &entity.Profile{ID: uuid.New(), Version: 1}
		assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrProfileNotFound)
	})

	t.Run("delete drops subscriber rows", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, owner.ID))

		_, err := repo.FindByID(ctx, owner.ID)
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)

		var count int64
		require.NoError(t, db.Model(&model.ProfileSubscriberModel{}).Where("profile_id = ?", owner.ID).Count(&count).Error)
		assert.Zero(t, count)

		assert.ErrorIs(t, repo.DeleteByID(ctx, owner.ID), repository.ErrProfileNotFound)
	})
}

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	repo := NewEventRepository(db)

	owner := createUser(t, users, "owner@example.com")
	guest := createUser(t, users, "guest@example.com")
	createProfile(t, profiles, owner.ID, "Ada")

	newEvent := func(name string, category entity.Category, userID uuid.UUID) *entity.Event {
		start := time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC)
		event := &entity.Event{
			Lat:       52.52,
			Lng:       13.4,
			StartTime: start,
			EndTime:   start.Add(3 * time.Hour),
			Name:      name,
			Category:  category,
			UserID:    userID,
		}
		require.NoError(t, repo.Create(ctx, event))

		return event
	}

	hack := newEvent("Hack night", entity.CategoryTechnology, owner.ID)
	jam := newEvent("Jam", entity.CategoryMusic, guest.ID)
	assert.NotEqual(t, uuid.Nil, hack.ID)
	assert.EqualValues(t, 1, hack.Version)

	t.Run("filters", func(t *testing.T) {
		all, err := repo.FindAll(ctx, entity.EventFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		music, err := repo.FindAll(ctx, entity.EventFilter{Category: entity.CategoryMusic})
		require.NoError(t, err)
		require.Len(t, music, 1)
		assert.Equal(t, jam.ID, music[0].ID)

		byName, err := repo.FindAll(ctx, entity.EventFilter{Name: "Hack night"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, hack.ID, byName[0].ID)

		none, err := repo.FindAll(ctx, entity.EventFilter{Name: "hack night"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("owner profile is attached when present", func(t *testing.T) {
		got, err := repo.FindByID(ctx, hack.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "Ada", got.Owner.FirstName)
		assert.True(t, got.StartTime.Equal(hack.StartTime))

		got, err = repo.FindByID(ctx, jam.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Owner)
	})

	t.Run("attendee set has no duplicates", func(t *testing.T) {
		require.NoError(t, repo.AddAttendee(ctx, hack.ID, guest.ID))
		require.NoError(t, repo.AddAttendee(ctx, hack.ID, owner.ID))
		assert.ErrorIs(t, repo.AddAttendee(ctx, hack.ID, guest.ID), repository.ErrAlreadyAttending)

		require.NoError(t, repo.RemoveAttendee(ctx, hack.ID, owner.ID))
		require.NoError(t, repo.RemoveAttendee(ctx, hack.ID, owner.ID))

		got, err := repo.FindByID(ctx, hack.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{guest.ID}, got.Attendees)
	})

	t.Run("update is guarded by version", func(t *testing.T) {
		current, err := repo.FindByID(ctx, jam.ID)
		require.NoError(t, err)
		stale := *current

		current.Name = "Jam session"
		require.NoError(t, repo.Update(ctx, current))
		assert.ErrorIs(t, repo.Update(ctx, &stale), repository.ErrEventVersionConflict)
		assert.ErrorIs(t, repo.Update(ctx, &entity.Event{ID: uuid.New(), Version: 1}), repository.ErrEventNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, hack.ID))

		_, err := repo.FindByID(ctx, hack.ID)
		assert.ErrorIs(t, err, repository.ErrEventNotFound)
		assert.ErrorIs(t, repo.DeleteByID(ctx, hack.ID), repository.ErrEventNotFound)
	})
}

func TestDeviceRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createUser(t, NewUserRepository(db), "ada@example.com")
	repo := NewDeviceRepository(db)

	phone := &entity.UserDevice{UserID: user.ID, FCMToken: "tok-phone", DeviceID: "phone", Platform: "ios", IsActive: true}
	tablet := &entity.UserDevice{UserID: user.ID, FCMToken: "tok-tablet", DeviceID: "tablet", Platform: "android", IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, phone))
	require.NoError(t, repo.CreateDevice(ctx, tablet))

	t.Run("deactivate by token", func(t *testing.T) {
		require.NoError(t, repo.DeactivateByTokens(ctx, []string{"tok-phone", "unknown"}))
		require.NoError(t, repo.DeactivateByTokens(ctx, nil))

		active, err := repo.FindActiveDevicesByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, tablet.ID, active[0].ID)

		all, err := repo.FindDevicesByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("new token reactivates", func(t *testing.T) {
		require.NoError(t, repo.UpdateFCMToken(ctx, phone.ID, "tok-phone-2"))

		got, err := repo.FindDeviceByID(ctx, phone.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		assert.Equal(t, "tok-phone-2", got.FCMToken)

		assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "x"), repository.ErrDeviceNotFound)
	})

	t.Run("soft delete hides device", func(t *testing.T) {
		require.NoError(t, repo.DeleteDevice(ctx, tablet.ID))

		_, err := repo.FindDeviceByID(ctx, tablet.ID)
		assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
		assert.ErrorIs(t, repo.DeleteDevice(ctx, tablet.ID), repository.ErrDeviceNotFound)
	})
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	profiles := NewProfileRepository(db)
	tm := NewTransactionManager(db)

	t.Run("commit", func(t *testing.T) {
		user := createUser(t, users, "commit@example.com")
		createProfile(t, profiles, user.ID, "Ada")

		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewProfileRepository().DeleteByID(ctx, user.ID); err != nil {
				return err
			}

			return f.NewUserRepository().Delete(ctx, user.ID)
		})
		require.NoError(t, err)

		_, err = users.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("rollback", func(t *testing.T) {
		user := createUser(t, users, "rollback@example.com")
		createProfile(t, profiles, user.ID, "Ada")
		boom := errors.New("boom")

		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.NewProfileRepository().DeleteByID(ctx, user.ID); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = profiles.FindByID(ctx, user.ID)
		assert.NoError(t, err)
	})
}
