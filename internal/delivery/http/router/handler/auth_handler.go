package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"turnos/config"
	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/response"
	"turnos/internal/domain/constants"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultAccessCookieTTL  = 15 * time.Minute
	defaultRefreshCookieTTL = 7 * 24 * time.Hour
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves login, refresh and logout. Tokens travel both in the
// response body (bearer clients) and in HttpOnly cookies (the browser
// frontend); the active business id is mirrored in a readable cookie.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the payload of POST /auth/refresh. The token is
// optional: the cookie takes precedence when present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	UserID           uuid.UUID     `json:"user_id"`
	SessionID        uuid.UUID     `json:"session_id"`
	AccessToken      string        `json:"access_token"`
	RefreshToken     string        `json:"refresh_token"`
	RefreshExpiresAt time.Time     `json:"refresh_expires_at"`
	ActiveBusinessID string        `json:"active_business_id,omitempty"`
	User             *userResponse `json:"user,omitempty"`
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, h.toAuthResponse(output), "Sesión iniciada")
}

// Refresh rotates the token pair. The old refresh token stops working.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.refreshTokenFrom(c)
	if refreshToken == "" {
		return response.Unauthorized(c, domainerrors.ErrRefreshTokenInvalid.ErrorCode(), domainerrors.ErrRefreshTokenInvalid.Message())
	}

	output, err := h.authUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, h.toAuthResponse(output), "Sesión renovada")
}

// Logout ends the calling session and expires its cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	if err := h.authUC.Logout(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}

// LogoutAll ends every session of the calling user.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	if err := h.authUC.LogoutAll(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Se cerraron todas las sesiones")
}

func (h *AuthHandler) refreshTokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(middleware.CookieRefreshToken); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req RefreshRequest
	if err := c.Bind(&req); err == nil {
		return req.RefreshToken
	}

	return ""
}

func (h *AuthHandler) toAuthResponse(output *usecase.AuthOutput) authResponse {
	resp := authResponse{
		UserID:           output.UserID,
		SessionID:        output.SessionID,
		AccessToken:      output.AccessToken,
		RefreshToken:     output.RefreshToken,
		RefreshExpiresAt: output.RefreshExpiresAt,
	}

	if output.ActiveBusinessID != uuid.Nil {
		resp.ActiveBusinessID = output.ActiveBusinessID.String()
	}

	if output.User != nil {
		user := toUserResponse(output.User)
		resp.User = &user
	}

	return resp
}

func (h *AuthHandler) setSessionCookies(c echo.Context, output *usecase.AuthOutput) {
	secure := h.secureCookies()
	accessTTL, refreshTTL := h.cookieTTLs()

	middleware.SetAuthCookies(c, output.AccessToken, output.RefreshToken, accessTTL, refreshTTL, secure)
	middleware.SetBusinessCookie(c, output.ActiveBusinessID, refreshTTL, secure)
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	secure := h.secureCookies()

	middleware.ClearAuthCookies(c, secure)
	middleware.SetBusinessCookie(c, uuid.Nil, 0, secure)
}

func (h *AuthHandler) secureCookies() bool {
	return !strings.EqualFold(h.cfg.Env.Env, constants.EnvDevelop)
}

func (h *AuthHandler) cookieTTLs() (access, refresh time.Duration) {
	access = defaultAccessCookieTTL
	refresh = defaultRefreshCookieTTL
	if h.cfg.Auth != nil {
		if h.cfg.Auth.AccessTokenTTL > 0 {
			access = h.cfg.Auth.AccessTokenTTL
		}
		if h.cfg.Auth.RefreshTokenTTL > 0 {
			refresh = h.cfg.Auth.RefreshTokenTTL
		}
	}

	return access, refresh
}
