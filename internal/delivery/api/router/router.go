// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"joinme/internal/delivery/api/middleware"
	"joinme/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	EventHandler   *handler.EventHandler
	ProfileHandler *handler.ProfileHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	eventHandler   *handler.EventHandler
	profileHandler *handler.ProfileHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		eventHandler:   params.EventHandler,
		profileHandler: params.ProfileHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate

	apiV1.GET("/categories", r.eventHandler.ListCategories)

	// Static segments are registered beside :id; echo prefers them on match.
	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.GET("", r.eventHandler.FindAll)
		eventsGroup.GET("/category/:category", r.eventHandler.FindByCategory)
		eventsGroup.GET("/name/:name", r.eventHandler.FindByName)
		eventsGroup.GET("/:id", r.eventHandler.FindByID)

		eventsGroup.POST("", r.eventHandler.Create, authenticated)
		eventsGroup.PATCH("/:id", r.eventHandler.Update, authenticated)
		eventsGroup.DELETE("/:id", r.eventHandler.Delete, authenticated)
		eventsGroup.PUT("/attend/:id", r.eventHandler.Attend, authenticated)
		eventsGroup.PUT("/unattend/:id", r.eventHandler.Unattend, authenticated)
	}

	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("", r.profileHandler.FindAll)
		profilesGroup.GET("/:id", r.profileHandler.FindOne)
		profilesGroup.GET("/:id/qr", r.profileHandler.SubscriptionQR)

		profilesGroup.POST("", r.profileHandler.Create, authenticated)
		profilesGroup.PATCH("/:id", r.profileHandler.Update, authenticated)
		profilesGroup.DELETE("/:id", r.profileHandler.Delete, authenticated)
		profilesGroup.PUT("/subscribe/:id", r.profileHandler.Subscribe, authenticated)
		profilesGroup.PUT("/unsubscribe/:id", r.profileHandler.Unsubscribe, authenticated)
		profilesGroup.POST("/subscribe/qr", r.profileHandler.SubscribeByQR, authenticated)
	}

	devicesGroup := apiV1.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
