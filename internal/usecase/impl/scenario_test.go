package impl_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/infra/persistence/model"
	"joinme/internal/infra/persistence/postgres"
	"joinme/internal/infra/pubsub"
	mockService "joinme/internal/mocks/service"
	"joinme/internal/usecase"
	"joinme/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openScenarioDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Discard})
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
	))

	return db
}

// Fanout goes to subscribers on create and to attendees on update; subscribing notifies nobody.
func TestScenario_FanoutAudience(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.DiscardHandler)
	db := openScenarioDB(t)

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	notifier := mockService.NewMockNotifier(t)
	publisher := pubsub.NewInlinePublisher(impl.NewFanoutService(notifier, log), log)

	profiles := impl.NewProfileService(impl.ProfileServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		ProfileRepo: profileRepo,
		Logger:      log,
	})
	subscriptions := impl.NewSubscriptionService(impl.SubscriptionServiceParams{
		ProfileRepo:   profileRepo,
		QRCodeService: mockService.NewMockQRCodeService(t),
		Logger:        log,
	})
	events := impl.NewEventService(impl.EventServiceParams{
		EventRepo:   eventRepo,
		ProfileRepo: profileRepo,
		Publisher:   publisher,
		Logger:      log,
	})
	attendance := impl.NewAttendanceService(eventRepo, log)

	ann := &entity.User{Email: "ann@example.com", PasswordHash: "hash", Roles: entity.Roles{entity.RoleUser}}
	ben := &entity.User{Email: "ben@example.com", PasswordHash: "hash", Roles: entity.Roles{entity.RoleUser}}
	require.NoError(t, userRepo.Create(ctx, ann))
	require.NoError(t, userRepo.Create(ctx, ben))
	asAnn := entity.Principal{UserID: ann.ID, Roles: ann.Roles}
	asBen := entity.Principal{UserID: ben.ID, Roles: ben.Roles}

	profile, err := profiles.CreateProfile(ctx, &usecase.CreateProfileInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		Description: "Runs the monthly rooftop music nights",
		ContactInfo: "ann@example.com",
	}, asAnn)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, profile.ID)

	// No subscribers yet, so nobody is notified
	event, err := events.Create(ctx, &usecase.CreateEventInput{
		Lat:       52.52,
		Lng:       13.4,
		StartTime: "2026-11-01T18:00:00Z",
		EndTime:   "2026-11-01T23:00:00Z",
		Name:      "Rooftop jam",
		Category:  "MUSIC",
	}, asAnn)
	require.NoError(t, err)

	subscribed, err := subscriptions.Subscribe(ctx, ann.ID, asBen)
	require.NoError(t, err)
	assert.True(t, subscribed.HasSubscriber(ben.ID))

	// Audience is the attendee set, which is still empty
	renamed := "Rooftop jam vol. 2"
	_, err = events.Update(ctx, &usecase.UpdateEventInput{Name: &renamed}, event.ID, asAnn)
	require.NoError(t, err)

	_, err = attendance.Attend(ctx, event.ID, asBen)
	require.NoError(t, err)

	notifier.EXPECT().
		Notify(mock.Anything, ben.ID, "Event Rooftop jam vol. 2 updated", mock.Anything).
		Return(nil).
		Once()

	final := "Rooftop jam finale"
	updated, err := events.Update(ctx, &usecase.UpdateEventInput{Name: &final}, event.ID, asAnn)
	require.NoError(t, err)
	assert.Equal(t, final, updated.Name)
	require.NotNil(t, updated.Owner)
	assert.Equal(t, "Ann Lee", updated.Owner.FullName())

	music, err := events.FindByCategory(ctx, "MUSIC")
	require.NoError(t, err)
	require.Len(t, music, 1)
	assert.Equal(t, event.ID, music[0].ID)

	_, err = events.FindByCategory(ctx, "not-a-category")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	// Close waits for in-flight deliveries before the mock is checked
	require.NoError(t, publisher.Close())
}
