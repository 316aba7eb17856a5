package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/maiunguwa377/caseflow/internal/api/handler"
	"github.com/maiunguwa377/caseflow/internal/api/middleware"
	"github.com/maiunguwa377/caseflow/internal/core/domain"
	"github.com/maiunguwa377/caseflow/internal/core/service"
	"github.com/maiunguwa377/caseflow/internal/infrastructure/config"
	"github.com/maiunguwa377/caseflow/internal/infrastructure/db/postgres"
	"github.com/maiunguwa377/caseflow/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("caseflow"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	caseRepo := postgres.NewCaseRepository(pool)
	caseCache := redis.NewCaseCache(rdb, cfg.Redis.CacheTTL)

	tokenService := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService, log)
	caseService := service.NewCaseService(caseRepo, caseCache, log)

	authHandler := handler.NewAuthHandler(authService)
	caseHandler := handler.NewCaseHandler(caseService)

	authGuard := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Case routes ---
	cases := e.Group("/cases", authGuard)
	cases.GET("", caseHandler.List)
	cases.POST("", caseHandler.Create, adminOnly)
	cases.PUT("/:id", caseHandler.Update)
	cases.DELETE("/:id", caseHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
