package handler

import (
	"net/http"
	"time"

	"turnos/config"
	"turnos/internal/domain/constants"
	"turnos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

// HealthHandler reports readiness of the service's dependencies.
type HealthHandler struct {
	healthUC usecase.HealthUsecase
	cfg      *config.Config
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		healthUC: params.HealthUC,
		cfg:      params.Config,
	}
}

type healthResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Services    map[string]string `json:"services"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
}

// Check pings the main store, the identity store and the row-level
// security functions. Degraded dependencies answer 503 so load balancers
// stop routing here.
func (h *HealthHandler) Check(c echo.Context) error {
	output := h.healthUC.Check(c.Request().Context())

	resp := healthResponse{
		Status:      output.Status,
		Timestamp:   output.CheckedAt,
		Services:    output.Services,
		Version:     constants.Version,
		Environment: h.cfg.Env.Env,
	}

	// Plain body, no envelope: load balancers and uptime checks read this.
	statusCode := http.StatusOK
	if output.Status != usecase.HealthOK {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, resp)
}
