package handler

import (
	"log/slog"
	"net/http"

	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/response"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler serves the two registration flows: a business for an
// existing account and the unified account-plus-business saga.
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

type businessPayload struct {
	Name           string         `json:"name" validate:"required,min=2,max=100"`
	Description    string         `json:"description" validate:"omitempty,max=500"`
	Address        addressPayload `json:"address"`
	Phone          string         `json:"phone" validate:"required,co_phone"`
	WhatsappNumber string         `json:"whatsapp_number" validate:"omitempty,co_phone"`
	Email          string         `json:"email" validate:"required,email"`
}

// RegisterBusinessRequest is the payload of POST /api/business/register.
type RegisterBusinessRequest struct {
	Business businessPayload `json:"business"`
}

// RegisterCompleteRequest is the payload of POST /api/business/register-complete.
type RegisterCompleteRequest struct {
	User struct {
		Name     string `json:"name" validate:"required,min=2,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
		Phone    string `json:"phone" validate:"omitempty,co_phone"`
	} `json:"user"`
	Business businessPayload `json:"business"`
}

// RegisterBusiness creates a business owned by the authenticated user.
func (h *RegistrationHandler) RegisterBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	var req RegisterBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.registrationUC.RegisterBusiness(c.Request().Context(), &usecase.RegisterBusinessInput{
		OwnerID:        userID,
		Name:           req.Business.Name,
		Description:    req.Business.Description,
		Address:        req.Business.Address.toEntity(),
		Phone:          req.Business.Phone,
		WhatsappNumber: req.Business.WhatsappNumber,
		Email:          req.Business.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"business": toBusinessResponse(output.Business),
	}, "Negocio registrado correctamente")
}

// RegisterComplete runs the unified registration saga: identity account
// first, business second, compensating account delete when the business
// cannot be created.
func (h *RegistrationHandler) RegisterComplete(c echo.Context) error {
	var req RegisterCompleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.registrationUC.RegisterComplete(c.Request().Context(), &usecase.RegisterCompleteInput{
		UserName:       req.User.Name,
		UserEmail:      req.User.Email,
		Password:       req.User.Password,
		UserPhone:      req.User.Phone,
		BusinessName:   req.Business.Name,
		Description:    req.Business.Description,
		Address:        req.Business.Address.toEntity(),
		BusinessPhone:  req.Business.Phone,
		WhatsappNumber: req.Business.WhatsappNumber,
		BusinessEmail:  req.Business.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registerCompleteResponse{
		UserID:                output.UserID,
		BusinessID:            output.BusinessID,
		EmailVerificationSent: output.EmailVerificationSent,
	}, "Registro completado. Revisa tu correo para verificar la cuenta")
}

type registerCompleteResponse struct {
	UserID                uuid.UUID `json:"user_id"`
	BusinessID            uuid.UUID `json:"business_id"`
	EmailVerificationSent bool      `json:"email_verification_sent"`
}
