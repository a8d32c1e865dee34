package middleware

import (
	"strings"

	"turnos/internal/delivery/http/response"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Echo context keys populated by Authenticate.
const (
	keyUserID     = "userID"
	keySessionID  = "sessionID"
	keyBusinessID = "businessID"
	keyRoles      = "roles"
)

// AuthMiddleware validates access tokens and exposes their claims to the
// handlers. Both the Authorization header and the session cookie are
// accepted, so the API serves browser sessions and bearer clients alike.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc}
}

// Authenticate verifies the access token and stores user id, session id,
// active business id and roles in the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "invalid_token", "La sesión no es válida, inicia sesión de nuevo")
		}

		if claims.Type != "access" {
			return response.Unauthorized(c, "invalid_token", "El token no es un token de acceso")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keySessionID, claims.SessionID)
		c.Set(keyBusinessID, claims.BusinessID)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// RequireBusinessContext rejects requests whose session has no active
// business. Tenant-scoped endpoints mount it after Authenticate.
func (m *AuthMiddleware) RequireBusinessContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		businessID, ok := GetBusinessID(c)
		if !ok || businessID == uuid.Nil {
			return response.BadRequest(c, domainerrors.ErrInvalidBusinessID.ErrorCode(),
				"No hay un negocio activo en la sesión")
		}

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(CookieAccessToken); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// GetUserID extracts the authenticated user id from the echo context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok
}

// GetSessionID extracts the session id from the echo context.
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keySessionID).(uuid.UUID)

	return id, ok
}

// GetBusinessID extracts the active business id from the echo context.
// A nil id means the session has no business context.
func GetBusinessID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyBusinessID).(uuid.UUID)

	return id, ok
}

// GetRoles extracts the role list from the echo context.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(keyRoles).([]string)

	return roles, ok
}
