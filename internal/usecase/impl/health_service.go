package impl

import (
	"context"
	"time"

	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	"turnos/internal/usecase"
)

// healthCheckTimeout bounds each dependency ping so a hung store cannot
// stall the health endpoint.
const healthCheckTimeout = 2 * time.Second

type healthService struct {
	store      repository.StoreHealth
	identity   service.IdentityService
	tenantRepo repository.TenantContextRepository
}

// NewHealthService creates a new health service instance
func NewHealthService(store repository.StoreHealth, identity service.IdentityService, tenantRepo repository.TenantContextRepository) usecase.HealthUsecase {
	return &healthService{
		store:      store,
		identity:   identity,
		tenantRepo: tenantRepo,
	}
}

// Check pings the main store, the identity store and the row-level-security
// functions. Any failing dependency degrades the overall status; the check
// itself never errors.
func (s *healthService) Check(ctx context.Context) *usecase.HealthOutput {
	out := &usecase.HealthOutput{
		Status:    usecase.HealthOK,
		CheckedAt: time.Now(),
		Services:  make(map[string]string, 3),
	}

	checks := []struct {
		name string
		ping func(context.Context) error
	}{
		{"database", s.store.Ping},
		{"identity", s.identity.Ping},
		{"rls", s.tenantRepo.Ping},
	}

	for _, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := check.ping(checkCtx)
		cancel()

		if err != nil {
			out.Services[check.name] = "error: " + err.Error()
			out.Status = usecase.HealthDegraded

			continue
		}
		out.Services[check.name] = "ok"
	}

	return out
}
