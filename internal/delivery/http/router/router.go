// Package router wires the HTTP routes to their handlers.
package router

import (
	"turnos/config"
	"turnos/internal/delivery/http/middleware"
	"turnos/internal/delivery/http/router/handler"
	"turnos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// Uploaded logos may exceed the global request body cap.
const logoBodyLimit = "2M"

// RouterParams holds route dependencies, injected by Fx.
type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	AuthHandler         *handler.AuthHandler
	BusinessHandler     *handler.BusinessHandler
	ContextHandler      *handler.ContextHandler
	AppointmentHandler  *handler.AppointmentHandler
	DeviceHandler       *handler.DeviceHandler
	HealthHandler       *handler.HealthHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	authHandler         *handler.AuthHandler
	businessHandler     *handler.BusinessHandler
	contextHandler      *handler.ContextHandler
	appointmentHandler  *handler.AppointmentHandler
	deviceHandler       *handler.DeviceHandler
	healthHandler       *handler.HealthHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		authHandler:         params.AuthHandler,
		businessHandler:     params.BusinessHandler,
		contextHandler:      params.ContextHandler,
		appointmentHandler:  params.AppointmentHandler,
		deviceHandler:       params.DeviceHandler,
		healthHandler:       params.HealthHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health and metrics
	e.GET("/api/health", r.healthHandler.Check)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Auth routes. Logout needs a valid session; login and refresh do not.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// Public booking surface: no session, the business id travels in the
	// request.
	e.POST("/api/business/register-complete", r.registrationHandler.RegisterComplete)
	e.POST("/api/appointments", r.appointmentHandler.Book)
	e.GET("/api/appointments/availability", r.appointmentHandler.Availability)
	e.GET("/api/business/:id/logo", r.businessHandler.GetLogo)

	// Owner surface: everything below requires a session.
	businessGroup := e.Group("/api/business", r.authMiddleware.Authenticate)
	{
		businessGroup.POST("/register", r.registrationHandler.RegisterBusiness)
		businessGroup.GET("/search", r.businessHandler.Search)
		businessGroup.DELETE("/:id", r.businessHandler.Delete)

		// Tenant-scoped: these act on the session's active business.
		tenantScoped := businessGroup.Group("", r.authMiddleware.RequireBusinessContext)
		tenantScoped.GET("/profile", r.businessHandler.GetProfile)
		tenantScoped.PUT("/profile", r.businessHandler.UpdateProfile)
		tenantScoped.PUT("/settings", r.businessHandler.UpdateSettings)
		tenantScoped.GET("/qr", r.businessHandler.GetBookingQR)
		tenantScoped.PUT("/logo", r.businessHandler.UploadLogo, echomiddleware.BodyLimit(logoBodyLimit))
	}

	contextGroup := e.Group("/api/context", r.authMiddleware.Authenticate)
	{
		contextGroup.GET("", r.contextHandler.GetContext)
		contextGroup.POST("/switch", r.contextHandler.SwitchContext)
		contextGroup.POST("/clear", r.contextHandler.ClearContext)
	}

	appointmentsGroup := e.Group("/api/appointments", r.authMiddleware.Authenticate, r.authMiddleware.RequireBusinessContext)
	{
		appointmentsGroup.GET("", r.appointmentHandler.List)
		appointmentsGroup.GET("/:id", r.appointmentHandler.Get)
		appointmentsGroup.PATCH("/:id/confirm", r.appointmentHandler.Confirm)
		appointmentsGroup.PATCH("/:id/cancel", r.appointmentHandler.Cancel)
	}

	devicesGroup := e.Group("/api/devices", r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}

// RegisterTestRoutes mounts the verification endpoints. Only enabled when
// configured; production configs leave them off.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

	authed := testGroup.Group("", r.authMiddleware.Authenticate)
	authed.GET("/auth", r.testHandler.TestAuthMiddleware)
	authed.GET("/isolation", r.testHandler.TestIsolation, r.authMiddleware.RequireBusinessContext)
}
