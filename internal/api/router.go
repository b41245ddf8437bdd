package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/chemba/waste-platform/docs"
	"github.com/chemba/waste-platform/internal/api/handler"
	"github.com/chemba/waste-platform/internal/api/middleware"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/service"
	mongodb "github.com/chemba/waste-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/chemba/waste-platform/internal/infrastructure/db/redis"
	"github.com/chemba/waste-platform/internal/pkg/config"
	"github.com/chemba/waste-platform/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is constructed by the caller because its worker lifecycle is
// bound to the process context.
func NewRouter(
	client *mongo.Client,
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	audit service.AuditSink,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("chemba"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.JWTRefreshSecret)
	denylist := redisdb.NewTokenDenylist(rdb)

	userRepo := mongodb.NewUserRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(client, db)
	eventRepo := mongodb.NewEventRepository(db)

	authService := service.NewAuthService(userRepo, codec, denylist, service.AuthTTLs{
		Access:        cfg.Auth.AccessTokenTTL,
		RefreshAccess: cfg.Auth.RefreshAccessTTL,
		Refresh:       cfg.Auth.RefreshTokenTTL,
	}, log)
	wasteService := service.NewWasteService(reportRepo, scheduleRepo, userRepo, audit, log)
	eventService := service.NewEventService(eventRepo, log)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	wasteHandler := handler.NewWasteHandler(wasteService)
	eventHandler := handler.NewEventHandler(eventService)
	userHandler := handler.NewUserHandler(userService)

	authenticate := middleware.Authenticate(codec, userRepo, denylist)
	freshToken := middleware.RequireFreshToken(cfg.Auth.TokenMaxAge)

	api := e.Group("/api")

	// --- Auth routes (rate limited, except in test mode) ---
	auth := api.Group("/auth")
	if !cfg.IsTest() {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxAttempts)
		auth.Use(limiter.Middleware())
	}
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authenticate)

	// --- User routes ---
	users := api.Group("/users", authenticate)
	users.GET("/me", userHandler.Me)
	users.GET("/role/:role", userHandler.ByRole)

	// --- Waste routes ---
	waste := api.Group("/waste", authenticate)
	waste.POST("/report", wasteHandler.Report)
	waste.GET("/my-reports", wasteHandler.MyReports)
	waste.GET("/reports", wasteHandler.ListReports,
		middleware.RequireRoles(domain.RoleCollector, domain.RoleGovernment))
	waste.PATCH("/reports/:id/status", wasteHandler.UpdateStatus,
		middleware.RequireRoles(domain.RoleCollector, domain.RoleGovernment))
	// Spending points is sensitive: require a recently issued token.
	waste.POST("/schedule", wasteHandler.SchedulePickup, freshToken)

	// --- Event routes ---
	api.POST("/events", eventHandler.Create, authenticate,
		middleware.RequireRoles(domain.RoleGovernment, domain.RoleStartup))
	api.GET("/events", eventHandler.List)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
