package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/buildservice/build-service/docs"
	"github.com/buildservice/build-service/internal/api/handler"
	"github.com/buildservice/build-service/internal/api/middleware"
	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Auth         ports.AuthService
	Audit        ports.LoginAuditService
	Users        ports.UserService
	Contractors  ports.ContractorService
	Comments     ports.CommentService
	WorkingSites ports.WorkingSiteService
}

// RouterConfig holds everything NewRouter needs to assemble the API.
type RouterConfig struct {
	Services Services
	Verifier ports.TokenVerifier
	// Realm is advertised in the WWW-Authenticate challenge of 401 responses.
	Realm  string
	Logger zerolog.Logger
	Checks []handler.HealthCheck
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger, cfg.Realm)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "build_service",
		Subsystem:  "http",
		Registerer: cfg.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Services.Auth)
	auditHandler := handler.NewAuditHandler(cfg.Services.Audit)
	userHandler := handler.NewUserHandler(cfg.Services.Users)
	contractorHandler := handler.NewContractorHandler(cfg.Services.Contractors)
	commentHandler := handler.NewCommentHandler(cfg.Services.Comments)
	siteHandler := handler.NewWorkingSiteHandler(cfg.Services.WorkingSites)
	healthHandler := handler.NewHealthHandler(cfg.Checks...)

	auth := middleware.Auth(cfg.Verifier)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, auth)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List)
	e.GET("/users/:userId", userHandler.Get, auth)
	e.PUT("/users/:userId", userHandler.Update, auth)
	e.DELETE("/users/:userId", userHandler.Delete, auth)

	// --- Contractors ---
	e.POST("/contractors", contractorHandler.Register)
	e.GET("/contractors", contractorHandler.List)
	e.POST("/contractors/for-user", contractorHandler.CreateForUser, auth, middleware.RBAC(domain.RoleUser))
	e.GET("/contractors/:contractorId", contractorHandler.Get, auth)
	e.PUT("/contractors/:contractorId", contractorHandler.Update, auth)
	e.DELETE("/contractors/:contractorId", contractorHandler.Delete, auth)

	// --- Comments ---
	comments := e.Group("/comments")
	comments.POST("/contractors/:contractorId", commentHandler.Create, auth, middleware.RBAC(domain.RoleUser))
	comments.GET("/contractors/:contractorId", commentHandler.ListForContractor)
	comments.GET("/users/:userId", commentHandler.ListForUser)
	comments.PUT("/:commentId", commentHandler.Update, auth)
	comments.DELETE("/:commentId", commentHandler.Delete, auth)

	// --- Working sites ---
	e.POST("/working-sites", siteHandler.Create, auth)
	e.GET("/working-sites", siteHandler.List)
	e.GET("/working-sites/:siteId", siteHandler.Get)
	e.PUT("/working-sites/:siteId", siteHandler.Update, auth)
	e.DELETE("/working-sites/:siteId", siteHandler.Delete, auth)

	// --- Audit (administrators only) ---
	e.GET("/audit/logins", auditHandler.RecentLogins, auth, middleware.RBAC(domain.RoleAdmin))

	// --- Health checks, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: cfg.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
