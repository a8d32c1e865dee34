package handler

import (
	"net/http"

	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/response"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	TenantUC usecase.TenantUsecase
}

// TestHandler serves the config-gated verification endpoints used by
// integration tests and manual checks of the tenant isolation setup.
type TestHandler struct {
	tenantUC usecase.TenantUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{tenantUC: params.TenantUC}
}

// TestPublicEndpoint answers without authentication.
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	}, "Public endpoint test successful")
}

// TestAuthMiddleware echoes the claims the auth middleware extracted.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	payload := map[string]any{
		"status":  "authenticated",
		"user_id": userID,
		"roles":   roles,
	}

	if businessID, ok := middleware.GetBusinessID(c); ok {
		payload["business_id"] = businessID
	}

	return response.Success(c, http.StatusOK, payload, "Authentication middleware test successful")
}

// TestIsolation runs the row-level-security self-check for the session's
// active business and reports per-table visibility counts.
func (h *TestHandler) TestIsolation(c echo.Context) error {
	userID, businessID, err := actingBusiness(c)
	if err != nil {
		return err
	}

	results, err := h.tenantUC.TestIsolation(c.Request().Context(), userID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	type isolationRow struct {
		Table       string `json:"table"`
		VisibleRows int64  `json:"visible_rows"`
		ForeignRows int64  `json:"foreign_rows"`
	}

	rows := make([]isolationRow, 0, len(results))
	isolated := true
	for _, result := range results {
		rows = append(rows, isolationRow{
			Table:       result.Table,
			VisibleRows: result.VisibleRows,
			ForeignRows: result.ForeignRows,
		})
		if result.ForeignRows > 0 {
			isolated = false
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"isolated": isolated,
		"tables":   rows,
	}, "")
}
