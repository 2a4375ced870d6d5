package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"joinme/config"
	apimiddleware "joinme/internal/delivery/api/middleware"
	"joinme/internal/delivery/api/response"
	"joinme/internal/delivery/api/router"
	"joinme/internal/delivery/api/router/handler"
	deliverycontext "joinme/internal/delivery/context"
	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/service"
	mockService "joinme/internal/mocks/service"
	mockUsecase "joinme/internal/mocks/usecase"
	"joinme/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo         *echo.Echo
	tokens       *mockService.MockTokenService
	users        *mockUsecase.MockUserUsecase
	events       *mockUsecase.MockEventUsecase
	attendance   *mockUsecase.MockAttendanceUsecase
	profiles     *mockUsecase.MockProfileUsecase
	subscription *mockUsecase.MockSubscriptionUsecase
	devices      *mockUsecase.MockDeviceUsecase
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	fx := apiFixtures{
		tokens:       mockService.NewMockTokenService(t),
		users:        mockUsecase.NewMockUserUsecase(t),
		events:       mockUsecase.NewMockEventUsecase(t),
		attendance:   mockUsecase.NewMockAttendanceUsecase(t),
		profiles:     mockUsecase.NewMockProfileUsecase(t),
		subscription: mockUsecase.NewMockSubscriptionUsecase(t),
		devices:      mockUsecase.NewMockDeviceUsecase(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx.echo = newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.users, Logger: logger}),
			EventHandler:   handler.NewEventHandler(handler.EventHandlerParams{EventUC: fx.events, AttendanceUC: fx.attendance, Logger: logger}),
			ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: fx.profiles, SubscriptionUC: fx.subscription, Logger: logger}),
			DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: fx.devices, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.tokens),
		},
	})

	return fx
}

func (fx apiFixtures) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

// authenticate makes "good-token" resolve to principal
func (fx apiFixtures) authenticate(principal entity.Principal) {
	fx.tokens.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: principal.UserID, Roles: principal.Roles.ToStrings(), Type: "access"}, nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAPI_PublicRoutes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("categories in envelope with request id", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.events.EXPECT().ListCategories().Return(entity.Categories())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
		rec := httptest.NewRecorder()
		fx.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data []string         `json:"data"`
			Meta response.MetaInfo `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 10)
		assert.Equal(t, "req-7", body.Meta.RequestID)
		assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("unknown category carries details", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.events.EXPECT().
			FindByCategory(mock.Anything, "games").
			Return(nil, errors.WithStack(domainerrors.ErrCategoryNotFound.WithDetails("Event with category 'games' not found")))

		rec := fx.do(http.MethodGet, "/api/v1/events/category/games", "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "CATEGORY_NOT_FOUND", info.Code)
		assert.Equal(t, "Event with category 'games' not found", info.Details)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/api/v1/events/42", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("qr code is a png", func(t *testing.T) {
		fx := newAPIFixtures(t)
		id := uuid.New()
		fx.subscription.EXPECT().GenerateSubscriptionQR(mock.Anything, id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		rec := fx.do(http.MethodGet, "/api/v1/profiles/"+id.String()+"/qr", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.profiles.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("pq: connection refused"))

		rec := fx.do(http.MethodGet, "/api/v1/profiles", "", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", info.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestAPI_Authentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/api/v1/events", `{}`, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.tokens.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("expired"))

		rec := fx.do(http.MethodPut, "/api/v1/profiles/subscribe/"+uuid.NewString(), "", "bad-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAPI_Events(t *testing.T) {
	caller := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}

	t.Run("create", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)
		created := &entity.Event{ID: uuid.New(), Name: "Hack night", UserID: caller.UserID}

		fx.events.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateEventInput) bool {
				return in.Name == "Hack night" && in.Lat == 0 && in.Lng == 13.4 && in.Category == "TECHNOLOGY"
			}), caller).
			Return(created, nil)

		body := `{"lat":0,"lng":13.4,"start_time":"2026-11-01T18:00:00Z","end_time":"2026-11-01T22:00:00Z",
			"name":"Hack night","description":"Bring a laptop","address":"Main St 1","category":"TECHNOLOGY"}`
		rec := fx.do(http.MethodPost, "/api/v1/events", body, "good-token")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID.String())
	})

	t.Run("create rejects invalid body", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)

		body := `{"lng":13.4,"start_time":"2026-11-01T18:00:00Z","end_time":"2026-11-01T22:00:00Z","name":"","description":"d","category":"ART"}`
		rec := fx.do(http.MethodPost, "/api/v1/events", body, "good-token")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		assert.Contains(t, info.Details, "lat is required")
		assert.Contains(t, info.Details, "name is required")
	})

	t.Run("update conflict", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)
		id := uuid.New()

		fx.events.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateEventInput) bool {
				return in.Name != nil && *in.Name == "Jam" && in.Category == nil
			}), id, caller).
			Return(nil, errors.WithStack(domainerrors.ErrConflict))

		rec := fx.do(http.MethodPatch, "/api/v1/events/"+id.String(), `{"name":"Jam"}`, "good-token")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
	})

	t.Run("second attend is forbidden", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)
		id := uuid.New()

		fx.attendance.EXPECT().Attend(mock.Anything, id, caller).Return(nil, errors.WithStack(domainerrors.ErrAlreadyAttending))

		rec := fx.do(http.MethodPut, "/api/v1/events/attend/"+id.String(), "", "good-token")
		require.Equal(t, http.StatusForbidden, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "ALREADY_ATTENDING", info.Code)
		assert.Equal(t, "You are already attending this event.", info.Message)
	})

	t.Run("delete", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)
		id := uuid.New()

		fx.events.EXPECT().Delete(mock.Anything, id, caller).Return(nil)

		rec := fx.do(http.MethodDelete, "/api/v1/events/"+id.String(), "", "good-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAPI_Profiles(t *testing.T) {
	caller := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}}

	t.Run("create validates lengths", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)

		body := `{"first_name":"A","last_name":"Lovelace","description":"short","contact_info":"ada@example.com"}`
		rec := fx.do(http.MethodPost, "/api/v1/profiles", body, "good-token")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Contains(t, info.Details, "first_name must be at least 2 characters")
		assert.Contains(t, info.Details, "description must be at least 25 characters")
	})

	t.Run("create", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)

		fx.profiles.EXPECT().
			CreateProfile(mock.Anything, mock.Anything, caller).
			Return(&entity.Profile{ID: caller.UserID, UserID: caller.UserID, FirstName: "Ada"}, nil)

		body := `{"first_name":"Ada","last_name":"Lovelace","description":"Organiser of hack nights and jam sessions","contact_info":"ada@example.com"}`
		rec := fx.do(http.MethodPost, "/api/v1/profiles", body, "good-token")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("subscribe by qr", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)
		owner := uuid.New()

		fx.subscription.EXPECT().
			SubscribeByQR(mock.Anything, "payload", caller).
			Return(&entity.Profile{ID: owner, UserID: owner, Subscribers: []uuid.UUID{caller.UserID}}, nil)

		rec := fx.do(http.MethodPost, "/api/v1/profiles/subscribe/qr", `{"qr_data":"payload"}`, "good-token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("self subscribe", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authenticate(caller)

		fx.subscription.EXPECT().
			Subscribe(mock.Anything, caller.UserID, caller).
			Return(nil, errors.WithStack(domainerrors.ErrSelfSubscribe))

		rec := fx.do(http.MethodPut, "/api/v1/profiles/subscribe/"+caller.UserID.String(), "", "good-token")
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You cannot subscribe to your own profile", decodeError(t, rec).Message)
	})
}

func TestAPI_Auth(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.users.EXPECT().
			Register(mock.Anything, usecase.RegisterInput{Email: "ada@example.com", Password: "s3cret-pass"}).
			Return(&entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"}, nil)

		rec := fx.do(http.MethodPost, "/auth/register", `{"email":"ada@example.com","password":"s3cret-pass"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("register rejects short password", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodPost, "/auth/register", `{"email":"ada@example.com","password":"short"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login", func(t *testing.T) {
		fx := newAPIFixtures(t)

		fx.users.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret-pass"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt"}, nil)

		rec := fx.do(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"s3cret-pass"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"jwt"`)
	})
}
