package main

import (
	"context"
	"log/slog"
	"os"

	"turnos/config"
	"turnos/internal/delivery"
	"turnos/internal/delivery/http"
	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/router/handler"
	"turnos/internal/infra/auth"
	"turnos/internal/infra/identity"
	logs "turnos/internal/infra/log"
	"turnos/internal/infra/metrics"
	"turnos/internal/infra/notification"
	"turnos/internal/infra/persistence/postgres"
	"turnos/internal/infra/pubsub"
	"turnos/internal/infra/qrcode"
	"turnos/internal/infra/storage"
	"turnos/internal/usecase"
	"turnos/internal/usecase/impl"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			registerContextAudit,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		identity.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewBusinessRepository,
			postgres.NewAppointmentRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewTenantContextRepository,
			postgres.NewStoreHealth,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.New,
			pubsub.NewEventPublisher,
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewAuthService,
			impl.NewTenantService,
			impl.NewBusinessService,
			impl.NewAppointmentService,
			impl.NewDeviceService,
			impl.NewHealthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewAuthHandler,
			handler.NewBusinessHandler,
			handler.NewContextHandler,
			handler.NewAppointmentHandler,
			handler.NewDeviceHandler,
			handler.NewHealthHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerContextAudit writes one audit line per business-context switch.
// Counter metrics live inside the tenant service; the log adds who and what.
func registerContextAudit(tenantUC usecase.TenantUsecase, logger *slog.Logger) {
	tenantUC.Subscribe(func(event usecase.ContextSwitchEvent) {
		logger.Info("Business context switched",
			slog.String("session_id", event.SessionID.String()),
			slog.String("user_id", event.UserID.String()),
			slog.String("from", formatContextID(event.From)),
			slog.String("to", formatContextID(event.To)),
		)
	})
}

func formatContextID(id uuid.UUID) string {
	if id == uuid.Nil {
		return "none"
	}

	return id.String()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
