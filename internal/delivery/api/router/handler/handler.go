// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	"joinme/internal/delivery/api/middleware"
	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the API process is up
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and runs its validation tags
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrBadRequest.WithDetails("invalid request body"))
	}

	return c.Validate(req)
}

// pathID parses a uuid path parameter
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrBadRequest.WithDetails("invalid " + name))
	}

	return id, nil
}

// principal returns the authenticated caller
func principal(c echo.Context) (entity.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return p, nil
}
