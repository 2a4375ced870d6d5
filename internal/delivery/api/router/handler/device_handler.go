package handler

import (
	"log/slog"
	"net/http"

	"joinme/internal/delivery/api/response"
	"joinme/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers a push target for the caller
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), caller.UserID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return err
	}

	return response.Created(c, device)
}

// GetUserDevices lists the caller's active devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), caller.UserID)
	if err != nil {
		return err
	}

	return response.OK(c, devices)
}

// UpdateFCMToken replaces the token of one of the caller's devices
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), caller.UserID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice removes one of the caller's devices
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), caller.UserID, deviceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
