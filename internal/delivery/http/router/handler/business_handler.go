package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/response"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/usecase"
	"turnos/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves the owner-facing business surface: profile,
// settings, search, QR code and logo. The acting business comes from the
// session's active context, never from the payload.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// UpdateProfileRequest is the payload of PUT /api/business/profile.
type UpdateProfileRequest struct {
	Name           string         `json:"name" validate:"required,min=2,max=100"`
	Description    string         `json:"description" validate:"omitempty,max=500"`
	Address        addressPayload `json:"address"`
	Phone          string         `json:"phone" validate:"required,co_phone"`
	WhatsappNumber string         `json:"whatsapp_number" validate:"omitempty,co_phone"`
}

// UpdateSettingsRequest is the payload of PUT /api/business/settings.
// FromVersion is the settings version the client last read; a concurrent
// write bumps it on the server and this update answers 409.
type UpdateSettingsRequest struct {
	Settings    settingsPayload `json:"settings"`
	FromVersion int             `json:"from_version" validate:"min=0"`
}

// GetProfile returns the active business.
func (h *BusinessHandler) GetProfile(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	business, err := h.businessUC.GetProfile(c.Request().Context(), userID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessResponse(business), "")
}

// UpdateProfile rewrites the editable profile fields.
func (h *BusinessHandler) UpdateProfile(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:         userID,
		BusinessID:     businessID,
		Name:           req.Name,
		Description:    req.Description,
		Address:        req.Address.toEntity(),
		Phone:          req.Phone,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessResponse(business), "Perfil actualizado")
}

// UpdateSettings replaces the business settings under the optimistic
// version guard.
func (h *BusinessHandler) UpdateSettings(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "El cuerpo de la solicitud no es válido")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	business, err := h.businessUC.UpdateSettings(c.Request().Context(), &usecase.UpdateSettingsInput{
		UserID:      userID,
		BusinessID:  businessID,
		Settings:    req.Settings.toEntity(),
		FromVersion: req.FromVersion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessResponse(business), "Configuración actualizada")
}

// Search finds businesses by name or email.
func (h *BusinessHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "El límite debe ser un número")
		}
		limit = parsed
	}

	businesses, err := h.businessUC.Search(c.Request().Context(), query, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]businessResponse, 0, len(businesses))
	for _, business := range businesses {
		results = append(results, toBusinessResponse(business))
	}

	return response.Success(c, http.StatusOK, map[string]any{"businesses": results}, "")
}

// Delete soft-deletes a business owned by the caller.
func (h *BusinessHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidBusinessID.ErrorCode(), domainerrors.ErrInvalidBusinessID.Message())
	}

	if err := h.businessUC.Delete(c.Request().Context(), userID, businessID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Negocio eliminado")
}

// GetBookingQR renders the QR code that points customers at the public
// booking page of the active business.
func (h *BusinessHandler) GetBookingQR(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	png, err := h.businessUC.GetBookingQR(c.Request().Context(), userID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return blobWithETag(c, "image/png", png)
}

// UploadLogo stores the raw request body as the business logo. The route
// carries its own body limit; the content type header decides the format.
func (h *BusinessHandler) UploadLogo(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "No se pudo leer la imagen")
	}

	uploadErr := h.businessUC.UploadLogo(c.Request().Context(), &usecase.UploadLogoInput{
		UserID:      userID,
		BusinessID:  businessID,
		ContentType: c.Request().Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if uploadErr != nil {
		return response.HandleAppError(c, uploadErr)
	}

	return response.Success(c, http.StatusOK, nil, "Logo actualizado")
}

// GetLogo serves a business logo. Public: the booking page shows it
// without a session, so the business id comes from the path.
func (h *BusinessHandler) GetLogo(c echo.Context) error {
	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidBusinessID.ErrorCode(), domainerrors.ErrInvalidBusinessID.Message())
	}

	logo, err := h.businessUC.GetLogo(c.Request().Context(), businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return blobWithETag(c, logo.ContentType, logo.Data)
}

// blobWithETag writes a binary body with a strong ETag. Logos and QR codes
// rarely change, so revalidation saves the download on repeat visits.
func blobWithETag(c echo.Context, contentType string, data []byte) error {
	etag := util.ETag(data)
	c.Response().Header().Set("ETag", etag)

	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// actingBusiness resolves the caller and the session's active business.
// The middleware already rejected sessions without a context; the double
// check here keeps handlers safe when mounted without it. Failures are
// domain errors for response.HandleAppError to render.
func actingBusiness(c echo.Context) (userID, businessID uuid.UUID, err error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	businessID, ok = middleware.GetBusinessID(c)
	if !ok || businessID == uuid.Nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidBusinessID.WithDetails("no hay un negocio activo en la sesión")
	}

	return userID, businessID, nil
}
