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

// ContextHandlerParams holds dependencies for ContextHandler, injected by Fx.
type ContextHandlerParams struct {
	fx.In

	TenantUC usecase.TenantUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// ContextHandler serves the business-context surface: which tenant the
// session operates as, switching it and clearing it. Switch and clear keep
// the current_business_id mirror cookie in sync; the token pair itself is
// renewed by the client through /auth/refresh afterwards.
type ContextHandler struct {
	tenantUC usecase.TenantUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewContextHandler is the constructor for ContextHandler
func NewContextHandler(params ContextHandlerParams) *ContextHandler {
	return &ContextHandler{
		tenantUC: params.TenantUC,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

// SwitchContextRequest is the payload of POST /api/context/switch.
type SwitchContextRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

type contextResponse struct {
	BusinessID string            `json:"business_id,omitempty"`
	Business   *businessResponse `json:"business,omitempty"`
}

// GetContext returns the session's current business context.
func (h *ContextHandler) GetContext(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	output, err := h.tenantUC.GetContext(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := contextResponse{}
	if output.BusinessID != uuid.Nil {
		resp.BusinessID = output.BusinessID.String()
	}
	if output.Business != nil {
		business := toBusinessResponse(output.Business)
		resp.Business = &business
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// SwitchContext moves the session to another business the user owns.
func (h *ContextHandler) SwitchContext(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req SwitchContextRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidBusinessID)
	}

	if err := h.tenantUC.SwitchBusiness(c.Request().Context(), sessionID, userID, businessID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.mirrorBusinessCookie(c, businessID)

	return response.Success(c, http.StatusOK, contextResponse{BusinessID: businessID.String()},
		"Contexto de negocio actualizado. Renueva la sesión para que el token lo refleje")
}

// ClearContext removes the session's business context.
func (h *ContextHandler) ClearContext(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.tenantUC.ClearBusinessContext(c.Request().Context(), sessionID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.mirrorBusinessCookie(c, uuid.Nil)

	return response.Success(c, http.StatusOK, contextResponse{}, "Contexto de negocio limpiado")
}

func (h *ContextHandler) mirrorBusinessCookie(c echo.Context, businessID uuid.UUID) {
	secure := !strings.EqualFold(h.cfg.Env.Env, constants.EnvDevelop)

	ttl := 7 * 24 * time.Hour
	if h.cfg.Auth != nil && h.cfg.Auth.RefreshTokenTTL > 0 {
		ttl = h.cfg.Auth.RefreshTokenTTL
	}

	middleware.SetBusinessCookie(c, businessID, ttl, secure)
}
