package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/vpclogistics/dispatch-widget/docs"
	"github.com/vpclogistics/dispatch-widget/internal/api/handler"
	"github.com/vpclogistics/dispatch-widget/internal/api/middleware"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/internal/infrastructure/http/handlers"
)

// RouterDeps carries everything the HTTP layer needs. Mongo and Redis are
// nil when the service runs without them.
type RouterDeps struct {
	Widgets     ports.WidgetService
	Tokens      ports.SessionTokenIssuer
	RateLimiter *middleware.IPRateLimiter
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. The default
	// Prometheus registry is used when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "dispatch_http",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public API ---
	widgetHandler := handler.NewWidgetHandler(deps.Widgets)
	estimateHandler := handler.NewEstimateHandler(deps.Widgets)

	v1 := e.Group("/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	v1.GET("/options", estimateHandler.Options)
	v1.GET("/estimate", estimateHandler.Quote)
	v1.POST("/sessions", widgetHandler.StartSession)

	// --- Session-scoped routes (bearer session token) ---
	session := v1.Group("/session", middleware.SessionAuth(deps.Tokens, handler.ContextKeySessionID))
	session.GET("", widgetHandler.GetView)
	session.DELETE("", widgetHandler.EndSession)
	session.PATCH("/input", widgetHandler.UpdateInput)
	session.POST("/dispatch", widgetHandler.RequestDispatch)
	session.POST("/stage", widgetHandler.JumpToStage)
	session.POST("/track", widgetHandler.StartTracking)
	session.POST("/reset", widgetHandler.Reset)
	session.POST("/cta", widgetHandler.ClickCTA)

	return e
}
