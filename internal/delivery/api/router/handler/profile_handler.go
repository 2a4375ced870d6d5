package handler

import (
	"log/slog"
	"net/http"

	"joinme/internal/delivery/api/response"
	"joinme/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC      usecase.ProfileUsecase
	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// ProfileHandler serves profile lifecycle and subscription routes
type ProfileHandler struct {
	profileUC      usecase.ProfileUsecase
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:      params.ProfileUC,
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateProfileRequest is the body of POST /profiles
type CreateProfileRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=2,max=25"`
	LastName       string `json:"last_name" validate:"required,min=3,max=25"`
	ProfilePicture string `json:"profile_picture"`
	Description    string `json:"description" validate:"required,min=25,max=300"`
	ContactInfo    string `json:"contact_info" validate:"required,min=8,max=50"`
}

// UpdateProfileRequest is the body of PATCH /profiles/:id. Absent fields are kept.
type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name" validate:"omitnil,min=2,max=25"`
	LastName       *string `json:"last_name" validate:"omitnil,min=3,max=25"`
	ProfilePicture *string `json:"profile_picture"`
	Description    *string `json:"description" validate:"omitnil,min=25,max=300"`
	ContactInfo    *string `json:"contact_info" validate:"omitnil,min=8,max=50"`
}

// SubscribeQRRequest carries the scanned QR payload
type SubscribeQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// FindAll lists every profile
func (h *ProfileHandler) FindAll(c echo.Context) error {
	profiles, err := h.profileUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, profiles)
}

// FindOne returns one profile
func (h *ProfileHandler) FindOne(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}

// Create creates the caller's profile
func (h *ProfileHandler) Create(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), &usecase.CreateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
		Description:    req.Description,
		ContactInfo:    req.ContactInfo,
	}, caller)
	if err != nil {
		return err
	}

	return response.Created(c, profile)
}

// Update applies a partial update; owner or admin only
func (h *ProfileHandler) Update(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
		Description:    req.Description,
		ContactInfo:    req.ContactInfo,
	}, id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}

// Delete removes the profile and its user; owner or admin only
func (h *ProfileHandler) Delete(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.profileUC.DeleteProfile(c.Request().Context(), id, caller); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Subscribe adds the caller to the profile's subscribers
func (h *ProfileHandler) Subscribe(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.subscriptionUC.Subscribe(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}

// Unsubscribe removes the caller from the profile's subscribers
func (h *ProfileHandler) Unsubscribe(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.subscriptionUC.Unsubscribe(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}

// SubscriptionQR renders the profile's subscription QR code as PNG
func (h *ProfileHandler) SubscriptionQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.subscriptionUC.GenerateSubscriptionQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// SubscribeByQR subscribes the caller to the profile encoded in a scanned QR code
func (h *ProfileHandler) SubscribeByQR(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var req SubscribeQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.subscriptionUC.SubscribeByQR(c.Request().Context(), req.QRData, caller)
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}
