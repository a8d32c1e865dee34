package handler

import (
	"log/slog"
	"net/http"
	"time"

	"turnos/internal/colombia"
	"turnos/internal/delivery/http/response"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AppointmentHandlerParams holds dependencies for AppointmentHandler, injected by Fx.
type AppointmentHandlerParams struct {
	fx.In

	AppointmentUC usecase.AppointmentUsecase
	Logger        *slog.Logger
}

// AppointmentHandler serves booking and appointment management. Book and
// Availability are public, everything else acts on the session's active
// business.
type AppointmentHandler struct {
	appointmentUC usecase.AppointmentUsecase
	logger        *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler
func NewAppointmentHandler(params AppointmentHandlerParams) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUC: params.AppointmentUC,
		logger:        params.Logger,
	}
}

// BookAppointmentRequest is the payload of the public POST /api/appointments.
type BookAppointmentRequest struct {
	BusinessID    string    `json:"business_id" validate:"required,uuid"`
	CustomerName  string    `json:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone" validate:"required,co_phone"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	EndsAt        time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Notes         string    `json:"notes" validate:"omitempty,max=500"`
}

// CancelAppointmentRequest is the payload of PATCH /api/appointments/:id/cancel.
type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Book creates an appointment from the public booking page.
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req BookAppointmentRequest
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

	appointment, err := h.appointmentUC.Book(c.Request().Context(), &usecase.BookAppointmentInput{
		BusinessID:    businessID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Notes:         req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAppointmentResponse(appointment), "Cita reservada")
}

// List returns the active business's appointments, optionally filtered by
// date range and status.
func (h *AppointmentHandler) List(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	input := &usecase.ListAppointmentsInput{
		UserID:     userID,
		BusinessID: businessID,
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, parseErr := parseDateParam(raw)
		if parseErr != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El parámetro from no es una fecha válida")
		}
		input.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, parseErr := parseDateParam(raw)
		if parseErr != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El parámetro to no es una fecha válida")
		}
		input.To = &to
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.AppointmentStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El estado solicitado no existe")
		}
		input.Status = status
	}

	appointments, err := h.appointmentUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"appointments": toAppointmentResponses(appointments),
	}, "")
}

// Get returns one appointment of the active business.
func (h *AppointmentHandler) Get(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrAppointmentNotFound)
	}

	appointment, err := h.appointmentUC.Get(c.Request().Context(), userID, businessID, appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment), "")
}

// Confirm moves a pending appointment to confirmed.
func (h *AppointmentHandler) Confirm(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrAppointmentNotFound)
	}

	appointment, err := h.appointmentUC.Confirm(c.Request().Context(), &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: appointmentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment), "Cita confirmada")
}

// Cancel cancels a pending or confirmed appointment.
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrAppointmentNotFound)
	}

	var req CancelAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	appointment, err := h.appointmentUC.Cancel(c.Request().Context(), &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: appointmentID,
		CancelReason:  req.Reason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAppointmentResponse(appointment), "Cita cancelada")
}

// Availability returns the free slots of a business on one date. Public:
// the booking page renders its grid from this.
func (h *AppointmentHandler) Availability(c echo.Context) error {
	businessID, err := uuid.Parse(c.QueryParam("business_id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidBusinessID)
	}

	raw := c.QueryParam("date")
	if raw == "" {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El parámetro date es obligatorio")
	}

	date, err := time.ParseInLocation("2006-01-02", raw, colombia.Bogota())
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El parámetro date no es una fecha válida (AAAA-MM-DD)")
	}

	output, err := h.appointmentUC.Availability(c.Request().Context(), businessID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAvailabilityResponse(output), "")
}

// parseDateParam accepts either a plain date or a full RFC 3339 timestamp.
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, colombia.Bogota()); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, raw)
}
