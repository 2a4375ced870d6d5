package middleware

import (
	"strings"

	"joinme/internal/domain/entity"
	domainerrors "joinme/internal/domain/errors"
	"joinme/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const principalKey = "principal"

// AuthMiddleware authenticates bearer access tokens. Role checks happen in the usecases.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the Principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("must be a bearer token"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))
		}

		c.Set(principalKey, entity.Principal{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// GetPrincipal returns the authenticated user set by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok
}
