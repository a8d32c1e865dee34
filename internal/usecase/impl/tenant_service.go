package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "turnos/internal/delivery/context"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/infra/metrics"
	"turnos/internal/usecase"
)

// tenantService implements the TenantUsecase interface. The session row is
// the authoritative storage of a session's business context; the database
// session variable mirrors it for row-level security.
type tenantService struct {
	txManager    repository.TransactionManager
	sessionRepo  repository.SessionRepository
	businessRepo repository.BusinessRepository
	tenantRepo   repository.TenantContextRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger

	mu        sync.Mutex
	listeners map[int]usecase.ContextListener
	nextID    int
}

// TenantServiceParams holds dependencies for the tenant service, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SessionRepo  repository.SessionRepository
	BusinessRepo repository.BusinessRepository
	TenantRepo   repository.TenantContextRepository
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		txManager:    params.TxManager,
		sessionRepo:  params.SessionRepo,
		businessRepo: params.BusinessRepo,
		tenantRepo:   params.TenantRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
		listeners:    make(map[int]usecase.ContextListener),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentBusinessID reads the context stored on the session. Stale clients
// have written garbage into this slot before, so a value that does not
// parse as a UUID is treated as no context: the slot is cleared and the
// caller sees uuid.Nil without an error.
func (srv *tenantService) CurrentBusinessID(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return uuid.Nil, domainerrors.ErrSessionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	if session.ActiveBusinessID == "" {
		return uuid.Nil, nil
	}

	businessID, ok := session.ActiveBusiness()
	if !ok {
		srv.log(ctx).Warn("Clearing malformed business context",
			slog.Any("sessionID", sessionID), slog.String("stored", session.ActiveBusinessID))

		if err := srv.sessionRepo.UpdateActiveBusiness(ctx, sessionID, ""); err != nil {
			srv.log(ctx).Error("Failed to clear malformed business context",
				slog.Any("sessionID", sessionID), slog.Any("error", err))
		}

		return uuid.Nil, nil
	}

	return businessID, nil
}

// GetContext resolves the stored context into the business row. A context
// pointing at a business that no longer exists is cleared like a malformed
// one.
func (srv *tenantService) GetContext(ctx context.Context, sessionID uuid.UUID) (*usecase.CurrentContextOutput, error) {
	businessID, err := srv.CurrentBusinessID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if businessID == uuid.Nil {
		return &usecase.CurrentContextOutput{}, nil
	}

	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			if clearErr := srv.sessionRepo.UpdateActiveBusiness(ctx, sessionID, ""); clearErr != nil {
				srv.log(ctx).Error("Failed to clear dangling business context",
					slog.Any("sessionID", sessionID), slog.Any("error", clearErr))
			}

			return &usecase.CurrentContextOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	return &usecase.CurrentContextOutput{BusinessID: businessID, Business: business}, nil
}

// SwitchBusiness moves the session to another business. The session row is
// written first and the database context second; a database failure rolls
// the session write back so both sides stay aligned. The rollback is
// best-effort, which is acceptable because every tenant-scoped query
// re-applies the context inside its own transaction anyway.
func (srv *tenantService) SwitchBusiness(ctx context.Context, sessionID, userID, businessID uuid.UUID) error {
	if businessID == uuid.Nil {
		return domainerrors.ErrInvalidBusinessID
	}

	allowed, err := srv.ValidateBusinessAccess(ctx, userID, businessID)
	if err != nil {
		srv.metrics.RecordContextSwitch(metrics.OutcomeFailed)

		return errors.Wrap(err, "failed to validate business access")
	}
	if !allowed {
		srv.metrics.RecordContextSwitch(metrics.OutcomeDenied)

		return domainerrors.ErrBusinessAccessDenied
	}

	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		srv.metrics.RecordContextSwitch(metrics.OutcomeFailed)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return errors.Wrap(err, "failed to load session")
	}

	previous := session.ActiveBusinessID
	from, _ := session.ActiveBusiness()

	if err := srv.sessionRepo.UpdateActiveBusiness(ctx, sessionID, businessID.String()); err != nil {
		srv.metrics.RecordContextSwitch(metrics.OutcomeFailed)
		srv.log(ctx).Error("Failed to store business context",
			slog.Any("sessionID", sessionID), slog.Any("error", err))

		return domainerrors.ErrContextSwitchFailed.WithDetails(err.Error())
	}

	if err := srv.tenantRepo.SetBusinessContext(ctx, userID, businessID); err != nil {
		if rollbackErr := srv.sessionRepo.UpdateActiveBusiness(ctx, sessionID, previous); rollbackErr != nil {
			srv.log(ctx).Error("Failed to roll back stored business context",
				slog.Any("sessionID", sessionID), slog.Any("error", rollbackErr))
		}

		if errors.Is(err, domainerrors.ErrBusinessAccessDenied) {
			srv.metrics.RecordContextSwitch(metrics.OutcomeDenied)

			return domainerrors.ErrBusinessAccessDenied
		}

		srv.metrics.RecordContextSwitch(metrics.OutcomeFailed)
		srv.log(ctx).Error("Failed to set database business context",
			slog.Any("sessionID", sessionID), slog.Any("businessID", businessID), slog.Any("error", err))

		return domainerrors.ErrContextSwitchFailed.WithDetails(err.Error())
	}

	srv.notify(usecase.ContextSwitchEvent{
		SessionID: sessionID,
		UserID:    userID,
		From:      from,
		To:        businessID,
	})

	return nil
}

// ClearBusinessContext removes the session's context. The database-side
// clear is best-effort: the session row is what every later read consults,
// so a failed RPC only earns a log line.
func (srv *tenantService) ClearBusinessContext(ctx context.Context, sessionID, userID uuid.UUID) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrSessionNotFound
		}

		return errors.Wrap(err, "failed to load session")
	}

	from, hadContext := session.ActiveBusiness()

	if err := srv.sessionRepo.UpdateActiveBusiness(ctx, sessionID, ""); err != nil {
		srv.metrics.RecordContextSwitch(metrics.OutcomeFailed)

		return domainerrors.ErrContextSwitchFailed.WithDetails(err.Error())
	}

	if err := srv.tenantRepo.ClearBusinessContext(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear database business context",
			slog.Any("sessionID", sessionID), slog.Any("error", err))
	}

	// Clearing an already-empty context changes nothing worth announcing.
	if hadContext {
		srv.notify(usecase.ContextSwitchEvent{
			SessionID: sessionID,
			UserID:    userID,
			From:      from,
			To:        uuid.Nil,
		})
	}

	return nil
}

// ValidateBusinessAccess reports whether the user owns the business. A
// missing business is an ordinary "no", never an error.
func (srv *tenantService) ValidateBusinessAccess(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	owns, err := srv.businessRepo.IsOwner(ctx, userID, businessID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check business ownership")
	}

	return owns, nil
}

// Subscribe registers a listener and returns its removal function. Both
// directions are safe to call from any goroutine.
func (srv *tenantService) Subscribe(listener usecase.ContextListener) func() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := srv.nextID
	srv.nextID++
	srv.listeners[id] = listener

	return func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		delete(srv.listeners, id)
	}
}

// notify calls every listener with the event. The listener set is copied
// under the lock; the calls run outside it so a listener may unsubscribe
// itself.
func (srv *tenantService) notify(event usecase.ContextSwitchEvent) {
	srv.mu.Lock()
	snapshot := make([]usecase.ContextListener, 0, len(srv.listeners))
	for _, listener := range srv.listeners {
		snapshot = append(snapshot, listener)
	}
	srv.mu.Unlock()

	for _, listener := range snapshot {
		listener(event)
	}
}

// TestIsolation runs the database's row-visibility self-check as the given
// business. The context RPC and the check share one transaction so they
// observe the same connection-local session variable.
func (srv *tenantService) TestIsolation(ctx context.Context, userID, businessID uuid.UUID) ([]repository.IsolationResult, error) {
	allowed, err := srv.ValidateBusinessAccess(ctx, userID, businessID)
	if err != nil {
		srv.metrics.RecordIsolationCheck(metrics.OutcomeFailed)

		return nil, errors.Wrap(err, "failed to validate business access")
	}
	if !allowed {
		srv.metrics.RecordIsolationCheck(metrics.OutcomeDenied)

		return nil, domainerrors.ErrBusinessAccessDenied
	}

	var results []repository.IsolationResult
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.NewTenantContextRepository()

		if err := tenantRepo.SetBusinessContext(ctx, userID, businessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		rows, err := tenantRepo.TestDataIsolation(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to run isolation check")
		}
		results = rows

		return nil
	})
	if err != nil {
		srv.metrics.RecordIsolationCheck(metrics.OutcomeFailed)

		return nil, err
	}

	outcome := metrics.OutcomeOK
	for _, row := range results {
		if row.ForeignRows > 0 {
			outcome = metrics.OutcomeFailed
			srv.log(ctx).Error("Isolation check found foreign rows",
				slog.Any("businessID", businessID), slog.String("table", row.Table),
				slog.Int64("foreignRows", row.ForeignRows))
		}
	}
	srv.metrics.RecordIsolationCheck(outcome)

	return results, nil
}
